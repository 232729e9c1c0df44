// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"github.com/siemens/edgesh/cli"
	"github.com/spf13/pflag"
)

// Plugin is the contract every edgesh CLI plugin fulfills. The loader drives
// all plugins through the same lifecycle: first AddCommandLineArguments,
// then OnStart, and finally Load. Plugins that additionally implement
// ToolsPlugin get an extra OnToolsLoad callback between flag registration
// and OnStart.
//
// Plugins that don't care about some lifecycle phase simply embed Base and
// override only what they need.
type Plugin interface {
	// RequiredPlugins returns the plugins this plugin builds upon. The
	// loader guarantees that all required plugins run their lifecycle
	// callbacks before this plugin, in every phase that is ordered. An
	// unknown requirement or a requirement cycle is reported and disables
	// ordering for the whole run. Leaving a requirement's Module empty
	// refers to a plugin of this plugin's own module.
	RequiredPlugins() []RequiredPlugin

	// AddCommandLineArguments registers this plugin's command line flags.
	// It is called before the command line is parsed and thus before any
	// other lifecycle callback; plugin ordering is not available yet, so
	// plugins must not rely on their requirements here.
	AddCommandLineArguments(flags *pflag.FlagSet)

	// OnStart initializes this plugin's session state. Returning an error
	// (or panicking) skips only this plugin; all other plugins still start.
	OnStart(state *cli.State) error

	// Load registers this plugin's commands into the command surface, with
	// access to the parsed command line arguments. Again, failure skips
	// only this plugin.
	Load(surface *cli.Surface, args *cli.Arguments) error
}

// ToolsPlugin is the optional contract of plugins taking part in the tools
// load phase, which runs before OnStart. The distinguished tools_mode plugin
// (see ToolsModePluginName) installs the tools schema here; all other tools
// plugins then extend it.
type ToolsPlugin interface {
	// OnToolsLoad contributes to the tools mode schema.
	OnToolsLoad(state *cli.State) error
}

// Constructor creates a new plugin instance. Entry points resolve to a
// Constructor, which the loader then invokes exactly once per run.
type Constructor func() Plugin

// Base is a convenience no-op implementation of Plugin, to be embedded by
// plugins that only care about a subset of the lifecycle.
type Base struct{}

// RequiredPlugins returns no requirements.
func (Base) RequiredPlugins() []RequiredPlugin { return nil }

// AddCommandLineArguments registers no flags.
func (Base) AddCommandLineArguments(flags *pflag.FlagSet) {}

// OnStart does nothing.
func (Base) OnStart(state *cli.State) error { return nil }

// Load registers no commands.
func (Base) Load(surface *cli.Surface, args *cli.Arguments) error { return nil }
