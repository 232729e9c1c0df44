// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Test doubles shared by the record, graph, and loader specs.

package edgesh

import (
	"github.com/siemens/edgesh/cli"
	"github.com/spf13/pflag"
)

// journal records the order in which lifecycle callbacks were invoked
// across a set of test plugins.
type journal struct {
	entries []string
}

func (j *journal) record(entry string) {
	j.entries = append(j.entries, entry)
}

// testPlugin is a configurable plugin double that notes its lifecycle
// callbacks in a shared journal and optionally fails or panics on demand.
type testPlugin struct {
	name         string
	requires     []RequiredPlugin
	j            *journal
	startErr     error
	loadErr      error
	panicOnStart bool
}

func (p *testPlugin) RequiredPlugins() []RequiredPlugin { return p.requires }

func (p *testPlugin) AddCommandLineArguments(flags *pflag.FlagSet) {
	if p.j != nil {
		p.j.record("args:" + p.name)
	}
	flags.Bool(p.name+"-flag", false, "test flag of plugin "+p.name)
}

func (p *testPlugin) OnStart(state *cli.State) error {
	if p.j != nil {
		p.j.record("start:" + p.name)
	}
	if p.panicOnStart {
		panic("blown fuse")
	}
	return p.startErr
}

func (p *testPlugin) Load(surface *cli.Surface, args *cli.Arguments) error {
	if p.j != nil {
		p.j.record("load:" + p.name)
	}
	return p.loadErr
}

// toolsTestPlugin additionally participates in the tools loading phase.
type toolsTestPlugin struct {
	testPlugin
	toolsErr     error
	panicOnTools bool
}

func (p *toolsTestPlugin) OnToolsLoad(state *cli.State) error {
	if p.j != nil {
		p.j.record("tools:" + p.name)
	}
	if p.panicOnTools {
		panic("tools fuse")
	}
	return p.toolsErr
}

// testEntryPoint is an entry point double resolving to a canned
// constructor, or failing resolution with a canned error.
type testEntryPoint struct {
	module  string
	name    string
	source  string
	factory Constructor
	err     error
}

func (e *testEntryPoint) Module() string { return e.module }

func (e *testEntryPoint) Name() string { return e.name }

func (e *testEntryPoint) Load() (Constructor, error) { return e.factory, e.err }

func (e *testEntryPoint) String() string {
	source := e.source
	if source == "" {
		source = "test/" + e.name
	}
	return e.name + " = " + source + ":" + PluginSymbol
}

// pluginEntryPoint wraps an already constructed plugin into an entry
// point of the default module.
func pluginEntryPoint(name string, plugin Plugin) *testEntryPoint {
	return &testEntryPoint{
		module:  DefaultModule,
		name:    name,
		factory: func() Plugin { return plugin },
	}
}

// testRecord creates an imported plugin record without going through an
// entry point.
func testRecord(module, name string, plugin Plugin) *record {
	return &record{
		module: module,
		name:   name,
		plugin: plugin,
	}
}
