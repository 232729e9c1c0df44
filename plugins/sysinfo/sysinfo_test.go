// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sysinfo

import (
	"bytes"
	"errors"
	"strings"

	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeStore is a canned state store for driving the sysinfo commands
// without a management service connection.
type fakeStore struct {
	values map[string]string
}

func (s *fakeStore) Get(path string) (string, error) {
	value, ok := s.values[path]
	if !ok {
		return "", errors.New("unknown state path")
	}
	return value, nil
}

// invoke loads the plugin into a fresh surface and invokes the named
// command in the given mode, returning the printed lines.
func invoke(state *cli.State, mode, name string) []string {
	surface := cli.NewSurface()
	Expect(New().Load(surface, nil)).Should(Succeed())
	m := surface.ShowMode()
	if mode == "tools" {
		m = surface.ToolsMode()
	}
	var buff bytes.Buffer
	Expect(m.Invoke(name, state, cli.NewOutput(&buff))).Should(Succeed())
	return strings.Split(strings.TrimSuffix(buff.String(), "\n"), "\n")
}

var _ = Describe("sysinfo plugin", func() {

	rule := strings.Repeat("-", 70)

	It("builds on the uptime and tools_mode plugins", func() {
		Expect(New().RequiredPlugins()).Should(Equal([]edgesh.RequiredPlugin{
			{Name: "uptime"},
			{Name: edgesh.ToolsModePluginName},
		}))
	})

	It("hangs its system container onto the tools mode schema", func() {
		state := cli.NewState("tester", nil)
		plug := New().(*Plugin)
		Expect(plug.OnToolsLoad(state)).Should(HaveOccurred())

		state.SetToolsSchema(cli.NewSchema())
		Expect(plug.OnToolsLoad(state)).Should(Succeed())
		node, ok := state.ToolsSchema().Child("system")
		Expect(ok).Should(BeTrue())
		Expect(node.Fields()).Should(Equal([]string{"State Service"}))
	})

	It("shows the system information", func() {
		state := cli.NewState("tester", &fakeStore{values: map[string]string{
			"/system/name/host-name":      "edgy",
			"/system/information/version": "v24.7.1",
		}})
		Expect(invoke(state, "show", "system")).Should(Equal([]string{
			rule,
			"Host Name       : edgy",
			"Software Version: v24.7.1",
			"CLI Version     : " + edgesh.SemVersion,
			rule,
		}))
	})

	It("shows unknown system information without a management connection", func() {
		Expect(invoke(cli.NewState("tester", nil), "show", "system")).
			Should(Equal([]string{
				rule,
				"Host Name       : <Unknown>",
				"Software Version: <Unknown>",
				"CLI Version     : " + edgesh.SemVersion,
				rule,
			}))
	})

	It("checks state service reachability", func() {
		state := cli.NewState("tester", &fakeStore{values: map[string]string{
			"/system/name/host-name": "edgy",
		}})
		Expect(invoke(state, "tools", "check")).Should(Equal([]string{
			rule, "State Service: reachable", rule,
		}))

		Expect(invoke(cli.NewState("tester", &fakeStore{}), "tools", "check")).
			Should(Equal([]string{
				rule, "State Service: unreachable", rule,
			}))
		Expect(invoke(cli.NewState("tester", nil), "tools", "check")).
			Should(Equal([]string{
				rule, "State Service: unreachable", rule,
			}))
	})

})
