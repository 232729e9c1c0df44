// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"errors"
	"fmt"

	"github.com/siemens/edgesh/cli"
	"github.com/spf13/pflag"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// loggedErrors returns the messages of all error-level log entries captured
// by the given hook.
func loggedErrors(hook *logtest.Hook) []string {
	msgs := []string{}
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.ErrorLevel {
			msgs = append(msgs, entry.Message)
		}
	}
	return msgs
}

var _ = Describe("plugin loader", func() {

	var hook *logtest.Hook

	BeforeEach(func() {
		hook = logtest.NewGlobal()
	})

	It("isolates plugin construction failures", func() {
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("alpha", &testPlugin{name: "alpha"}),
			&testEntryPoint{
				module:  DefaultModule,
				name:    "void",
				factory: func() Plugin { return nil },
			},
			pluginEntryPoint("bravo", &testPlugin{name: "bravo"}),
		}, false)

		Expect(recordNames(l.records)).Should(Equal([]string{
			"edgesh.alpha", "edgesh.bravo",
		}))
		errs := loggedErrors(hook)
		Expect(errs).Should(HaveLen(1))
		Expect(errs[0]).Should(ContainSubstring(
			"error: importing plugin 'void = test/void:Plugin'"))
		Expect(errs[0]).Should(ContainSubstring("*edgesh.PluginError"))
	})

	It("ignores missing plugins only when told so", func() {
		missing := &testEntryPoint{
			module: DefaultModule,
			name:   "optional",
			err:    fmt.Errorf("no such file: %w", ErrMissingModule),
		}

		l := newPluginLoader([]EntryPoint{
			missing,
			pluginEntryPoint("alpha", &testPlugin{name: "alpha"}),
		}, true)
		Expect(recordNames(l.records)).Should(Equal([]string{"edgesh.alpha"}))
		Expect(loggedErrors(hook)).Should(BeEmpty())

		l = newPluginLoader([]EntryPoint{missing}, false)
		Expect(l.records).Should(BeEmpty())
		errs := loggedErrors(hook)
		Expect(errs).Should(HaveLen(1))
		Expect(errs[0]).Should(ContainSubstring(
			"error: importing plugin 'optional = test/optional:Plugin'"))
	})

	It("registers command line flags in construction order", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("alpha", &testPlugin{
				name:     "alpha",
				j:        j,
				requires: []RequiredPlugin{{Name: "bravo"}},
			}),
			pluginEntryPoint("bravo", &testPlugin{name: "bravo", j: j}),
		}, false)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		l.AddCommandLineArguments(flags)
		// Requirements do not matter before the command line is parsed.
		Expect(j.entries).Should(Equal([]string{"args:alpha", "args:bravo"}))
		Expect(flags.Lookup("alpha-flag")).ShouldNot(BeNil())
		Expect(flags.Lookup("bravo-flag")).ShouldNot(BeNil())
	})

	It("starts plugins in dependency order", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("alpha", &testPlugin{
				name:     "alpha",
				j:        j,
				requires: []RequiredPlugin{{Name: "bravo"}},
			}),
			pluginEntryPoint("bravo", &testPlugin{name: "bravo", j: j}),
		}, false)

		l.OnStart(cli.NewState("tester", nil))
		Expect(j.entries).Should(Equal([]string{"start:bravo", "start:alpha"}))
		Expect(loggedErrors(hook)).Should(BeEmpty())
	})

	It("isolates start failures and panics", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("alpha", &testPlugin{
				name: "alpha", j: j, panicOnStart: true,
			}),
			pluginEntryPoint("bravo", &testPlugin{
				name: "bravo", j: j, startErr: errors.New("out of coffee"),
			}),
			pluginEntryPoint("charlie", &testPlugin{name: "charlie", j: j}),
		}, false)

		l.OnStart(cli.NewState("tester", nil))
		Expect(j.entries).Should(Equal([]string{
			"start:alpha", "start:bravo", "start:charlie",
		}))
		errs := loggedErrors(hook)
		Expect(errs).Should(HaveLen(2))
		Expect(errs[0]).Should(ContainSubstring("error: starting plugin 'alpha'"))
		Expect(errs[0]).Should(ContainSubstring("panic: blown fuse"))
		Expect(errs[1]).Should(ContainSubstring("error: starting plugin 'bravo'"))
		Expect(errs[1]).Should(ContainSubstring("out of coffee"))
	})

	It("falls back to construction order when ordering fails", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("alpha", &testPlugin{
				name:     "alpha",
				j:        j,
				requires: []RequiredPlugin{{Name: "bravo"}},
			}),
			pluginEntryPoint("bravo", &testPlugin{
				name:     "bravo",
				j:        j,
				requires: []RequiredPlugin{{Name: "alpha"}},
			}),
		}, false)

		l.OnStart(cli.NewState("tester", nil))
		Expect(j.entries).Should(Equal([]string{"start:alpha", "start:bravo"}))
		errs := loggedErrors(hook)
		Expect(errs).Should(HaveLen(1))
		Expect(errs[0]).Should(ContainSubstring(
			"error: ordering of plugins before start failed"))
		Expect(errs[0]).Should(ContainSubstring(
			"cyclic dependency between plugins detected"))
	})

	It("loads plugins into the command surface in dependency order", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("alpha", &testPlugin{
				name:     "alpha",
				j:        j,
				requires: []RequiredPlugin{{Name: "bravo"}},
			}),
			pluginEntryPoint("bravo", &testPlugin{
				name: "bravo", j: j, loadErr: errors.New("shelf broke"),
			}),
		}, false)

		args := cli.NewArguments(pflag.NewFlagSet("test", pflag.ContinueOnError))
		surface := l.Load(args, nil)
		Expect(surface).ShouldNot(BeNil())
		Expect(j.entries).Should(Equal([]string{"load:bravo", "load:alpha"}))
		errs := loggedErrors(hook)
		Expect(errs).Should(HaveLen(1))
		Expect(errs[0]).Should(ContainSubstring("error: loading plugin 'bravo'"))

		// A second loader fills the same surface instead of a fresh one.
		other := newPluginLoader([]EntryPoint{
			pluginEntryPoint("charlie", &testPlugin{name: "charlie", j: j}),
		}, false)
		Expect(other.Load(args, surface)).Should(BeIdenticalTo(surface))
		Expect(j.entries).Should(HaveLen(3))
	})

	It("runs the tools load phase over tools-capable plugins only", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("whisky", &toolsTestPlugin{
				testPlugin: testPlugin{
					name:     "whisky",
					j:        j,
					requires: []RequiredPlugin{{Name: "tango"}},
				},
			}),
			pluginEntryPoint("tango", &toolsTestPlugin{
				testPlugin: testPlugin{name: "tango", j: j},
			}),
			pluginEntryPoint("alpha", &testPlugin{name: "alpha", j: j}),
		}, false)

		Expect(l.OnToolsLoad(cli.NewState("tester", nil))).Should(BeTrue())
		Expect(j.entries).Should(Equal([]string{"tools:tango", "tools:whisky"}))
		Expect(loggedErrors(hook)).Should(BeEmpty())
	})

	It("reports failing tools plugins, yet carries on", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("tango", &toolsTestPlugin{
				testPlugin: testPlugin{name: "tango", j: j},
				toolsErr:   errors.New("gone fishing"),
			}),
			pluginEntryPoint("whisky", &toolsTestPlugin{
				testPlugin: testPlugin{name: "whisky", j: j},
			}),
		}, false)

		Expect(l.OnToolsLoad(cli.NewState("tester", nil))).Should(BeFalse())
		Expect(j.entries).Should(Equal([]string{"tools:tango", "tools:whisky"}))
		errs := loggedErrors(hook)
		Expect(errs).Should(HaveLen(1))
		Expect(errs[0]).Should(ContainSubstring(
			"error: loading tools plugin 'tango'"))
	})

	It("abandons the tools load phase when the tools mode schema fails", func() {
		j := &journal{}
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("whisky", &toolsTestPlugin{
				testPlugin: testPlugin{
					name:     "whisky",
					j:        j,
					requires: []RequiredPlugin{{Name: ToolsModePluginName}},
				},
			}),
			pluginEntryPoint(ToolsModePluginName, &toolsTestPlugin{
				testPlugin: testPlugin{name: ToolsModePluginName, j: j},
				toolsErr:   errors.New("no schema today"),
			}),
		}, false)

		Expect(l.OnToolsLoad(cli.NewState("tester", nil))).Should(BeFalse())
		Expect(j.entries).Should(Equal([]string{"tools:" + ToolsModePluginName}))
		Expect(loggedErrors(hook)).Should(BeEmpty())
	})

	It("lists plugins in run order", func() {
		l := newPluginLoader([]EntryPoint{
			pluginEntryPoint("alpha", &testPlugin{
				name:     "alpha",
				requires: []RequiredPlugin{{Name: "mike"}},
			}),
			pluginEntryPoint("mike", &toolsTestPlugin{
				testPlugin: testPlugin{name: "mike"},
			}),
		}, false)

		Expect(l.Plugins()).Should(Equal([]PluginInfo{
			{Name: "mike", Module: "edgesh", Tools: true},
			{Name: "alpha", Module: "edgesh", Requires: "edgesh.mike"},
		}))
	})

})
