// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package toolsmode provides the distinguished tools_mode plugin: it
// initializes the tools mode schema during the tools load phase, before any
// other tools plugin hangs its contributions onto that schema. When this
// plugin fails, the loader abandons the whole tools load phase.
package toolsmode

import (
	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/thediveo/go-plugger/v3"
)

func init() {
	plugger.Group[edgesh.EntryPoint]().Register(
		edgesh.NewEntryPoint(edgesh.DefaultModule, edgesh.ToolsModePluginName, New),
		plugger.WithPlugin(edgesh.ToolsModePluginName))
}

// Plugin initializes the tools mode schema.
type Plugin struct {
	edgesh.Base
}

// New returns a new tools_mode plugin.
func New() edgesh.Plugin { return &Plugin{} }

// OnToolsLoad installs a fresh tools mode schema into the session state.
func (p *Plugin) OnToolsLoad(state *cli.State) error {
	state.SetToolsSchema(cli.NewSchema())
	return nil
}
