// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// testObserver records the log lines mirrored to the session observer.
type testObserver struct {
	levels []log.Level
	lines  []string
}

func (o *testObserver) LogLine(level log.Level, message string) {
	o.levels = append(o.levels, level)
	o.lines = append(o.lines, message)
}

var _ = Describe("plugin file loader", func() {

	var tmp string

	BeforeEach(func() {
		var err error
		tmp, err = os.MkdirTemp("", "edgesh-plugins-")
		Expect(err).ShouldNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, tmp)
	})

	// plant creates an empty file inside the temporary plugin folder tree,
	// creating intermediate folders as needed.
	plant := func(elements ...string) string {
		path := filepath.Join(append([]string{tmp}, elements...)...)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).Should(Succeed())
		Expect(os.WriteFile(path, []byte("not really ELF"), 0644)).Should(Succeed())
		return path
	}

	It("enables plugin folders based on the role flags", func() {
		l := newFileLoader("tester", true, false, true)
		Expect(l.folders).Should(Equal([]string{
			DistroPluginFolder, HomePluginFolder,
		}))
		Expect(newFileLoader("tester", false, true, false).folders).
			Should(Equal([]string{GlobalPluginFolder}))
		Expect(newFileLoader("tester", false, false, false).folders).
			Should(BeEmpty())
	})

	It("discovers plugin files in scan order", func() {
		apath := plant("one", "a.so")
		plant("one", "noise.txt")
		plant("one", "sub", "b.so")
		Expect(os.MkdirAll(filepath.Join(tmp, "one", "dir.so"), 0755)).
			Should(Succeed())
		plant("two", "c.so")

		l := &fileLoader{folders: []string{
			filepath.Join(tmp, "one"),
			filepath.Join(tmp, "missing"),
			filepath.Join(tmp, "two"),
		}}
		eps := l.entryPoints()
		names := []string{}
		for _, ep := range eps {
			names = append(names, ep.Name())
			Expect(ep.Module()).Should(Equal(DefaultModule))
		}
		Expect(names).Should(Equal([]string{"a", "b", "c"}))
		Expect(eps[0].String()).Should(Equal("a = " + apath + ":" + PluginSymbol))
	})

	It("mirrors plugin file discovery to the session observer", func() {
		path := plant("mirrored.so")
		obs := &testObserver{}
		SetObserver(obs)
		DeferCleanup(func() { SetObserver(nil) })

		l := &fileLoader{folders: []string{tmp}}
		Expect(l.entryPoints()).Should(HaveLen(1))
		Expect(obs.lines).Should(ConsistOf("loading custom plugin from: " + path))
		Expect(obs.levels).Should(ConsistOf(log.InfoLevel))
	})

	It("expands home and environment references", func() {
		l := &fileLoader{}
		me, err := user.Current()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(l.expand("~/cli/plugins")).Should(Equal(
			filepath.Join(me.HomeDir, "cli/plugins")))

		Expect(os.Setenv("EDGESH_TEST_FOLDER", "/opt/testing")).Should(Succeed())
		DeferCleanup(os.Unsetenv, "EDGESH_TEST_FOLDER")
		Expect(l.expand("$EDGESH_TEST_FOLDER/plugins")).Should(Equal(
			"/opt/testing/plugins"))

		Expect(l.expand(DistroPluginFolder)).Should(Equal(DistroPluginFolder))
	})

	It("disables the home folder of an unknown user", func() {
		l := &fileLoader{
			username: "edgesh-nobody-xyzzy",
			folders:  []string{HomePluginFolder},
		}
		Expect(l.expand(HomePluginFolder)).Should(Equal(""))
		Expect(l.entryPoints()).Should(BeEmpty())
	})

	It("classifies unloadable plugin files as missing modules", func() {
		ep := newFileEntryPoint(filepath.Join(tmp, "ghost.so"))
		Expect(ep.Name()).Should(Equal("ghost"))
		factory, err := ep.Load()
		Expect(factory).Should(BeNil())
		Expect(err).Should(HaveOccurred())
		Expect(errors.Is(err, ErrMissingModule)).Should(BeTrue())

		// A present file that isn't a loadable shared object fails the
		// same way.
		ep = newFileEntryPoint(plant("junk.so"))
		_, err = ep.Load()
		Expect(errors.Is(err, ErrMissingModule)).Should(BeTrue())
	})

})
