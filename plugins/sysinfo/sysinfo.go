// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package sysinfo provides the 'show system' CLI plugin, reporting general
// device information, as well as the operational 'tools check' command for
// verifying that the device can actually be managed.
package sysinfo

import (
	"errors"

	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/thediveo/go-plugger/v3"

	log "github.com/sirupsen/logrus"
)

// PluginName is this plugin's name within the edgesh module.
const PluginName = "sysinfo"

const (
	// hostnamePath is the state path reporting the device's host name.
	hostnamePath = "/system/name/host-name"
	// versionPath is the state path reporting the device's software version.
	versionPath = "/system/information/version"
)

// unknown gets reported for state values that cannot be determined.
const unknown = "<Unknown>"

func init() {
	plugger.Group[edgesh.EntryPoint]().Register(
		edgesh.NewEntryPoint(edgesh.DefaultModule, PluginName, New),
		plugger.WithPlugin(PluginName))
}

// Plugin adds the 'show system' and 'tools check' commands. It builds on the
// uptime plugin (same module, so the requirement leaves the module
// unspecified) and on the tools mode schema of the tools_mode plugin.
type Plugin struct {
	edgesh.Base
}

// New returns a new sysinfo plugin.
func New() edgesh.Plugin { return &Plugin{} }

// RequiredPlugins declares the plugins sysinfo builds upon.
func (p *Plugin) RequiredPlugins() []edgesh.RequiredPlugin {
	return []edgesh.RequiredPlugin{
		{Name: "uptime"},
		{Name: edgesh.ToolsModePluginName},
	}
}

// OnToolsLoad registers the system container in the tools mode schema. The
// loader runs tools_mode first, so the schema is in place by now; a missing
// schema means the tools load phase is poisoned and we bail out.
func (p *Plugin) OnToolsLoad(state *cli.State) error {
	schema := state.ToolsSchema()
	if schema == nil {
		return errors.New("tools mode schema not initialized")
	}
	schema.AddChild("system", "State Service")
	return nil
}

// Load registers the 'show system' and 'tools check' commands.
func (p *Plugin) Load(surface *cli.Surface, _ *cli.Arguments) error {
	if err := surface.ShowMode().AddCommand(
		cli.Syntax{
			Name:      "system",
			ShortHelp: "Show general system information",
			Help:      "Show general system information, such as the device's host name and software version.",
		},
		schema(),
		printSystem); err != nil {
		return err
	}
	return surface.ToolsMode().AddCommand(
		cli.Syntax{
			Name:      "check",
			ShortHelp: "Check that the device can be managed",
			Help:      "Check that the management state service of the device is reachable.",
		},
		checkSchema(),
		checkSystem)
}

// schema declares the fixed shape of the system command's output.
func schema() *cli.Schema {
	s := cli.NewSchema()
	s.AddChild("system", "Host Name", "Software Version", "CLI Version")
	return s
}

// checkSchema declares the fixed shape of the check command's output.
func checkSchema() *cli.Schema {
	s := cli.NewSchema()
	s.AddChild("system", "State Service")
	return s
}

// printSystem reports the device's host name and software version from the
// state store, together with the CLI's own version.
func printSystem(state *cli.State, out *cli.Output, args *cli.CommandArguments) error {
	data := cli.NewData(args.Schema())
	system := data.Container("system")
	system.Set("Host Name", fetch(state, hostnamePath))
	system.Set("Software Version", fetch(state, versionPath))
	system.Set("CLI Version", edgesh.SemVersion)
	data.SetFormatter("/system",
		cli.Border(cli.TagValue(), cli.BorderAbove|cli.BorderBelow))
	return out.PrintData(data)
}

// checkSystem probes the management state service and reports whether the
// device can be managed through it.
func checkSystem(state *cli.State, out *cli.Output, args *cli.CommandArguments) error {
	data := cli.NewData(args.Schema())
	system := data.Container("system")
	system.Set("State Service", "unreachable")
	if store := state.DataStore(); store != nil {
		if _, err := store.Get(hostnamePath); err == nil {
			system.Set("State Service", "reachable")
		}
	}
	data.SetFormatter("/system",
		cli.Border(cli.TagValue(), cli.BorderAbove|cli.BorderBelow))
	return out.PrintData(data)
}

// fetch returns the state value at the given path, or "<Unknown>" when it
// cannot be determined.
func fetch(state *cli.State, path string) string {
	store := state.DataStore()
	if store == nil {
		return unknown
	}
	value, err := store.Get(path)
	if err != nil {
		log.Debugf("cannot determine state at '%s': %s", path, err.Error())
		return unknown
	}
	return value
}
