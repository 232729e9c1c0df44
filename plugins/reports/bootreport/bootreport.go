// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package bootreport provides the 'show boot-report' report plugin. Report
// plugins live below the reserved plugins/reports/ path and thus only get
// loaded by report sessions, never by ordinary CLI sessions.
package bootreport

import (
	"time"

	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/thediveo/go-plugger/v3"
)

// PluginName is this plugin's name within the edgesh module.
const PluginName = "bootreport"

// lastBootedPath is the state path reporting when the device last booted.
const lastBootedPath = "/platform/chassis/last-booted"

func init() {
	plugger.Group[edgesh.EntryPoint]().Register(
		edgesh.NewEntryPoint(edgesh.DefaultModule, PluginName, New),
		plugger.WithPlugin(PluginName))
}

// Plugin adds the 'show boot-report' report command. Report plugins cannot
// require ordinary plugins, as those never load into report sessions; so
// this report fetches the boot time itself.
type Plugin struct {
	edgesh.Base
}

// New returns a new boot report plugin.
func New() edgesh.Plugin { return &Plugin{} }

// Load registers the 'show boot-report' command.
func (p *Plugin) Load(surface *cli.Surface, _ *cli.Arguments) error {
	return surface.ShowMode().AddCommand(
		cli.Syntax{
			Name:      "boot-report",
			ShortHelp: "Report the device's last boot",
			Help:      "Report when the device last booted, with a generation time stamp for the records.",
		},
		schema(),
		printReport)
}

// schema declares the fixed shape of the boot report.
func schema() *cli.Schema {
	s := cli.NewSchema()
	s.AddChild("boot", "Last Booted", "Generated")
	return s
}

// printReport reports the device's boot time together with when this report
// was generated.
func printReport(state *cli.State, out *cli.Output, args *cli.CommandArguments) error {
	data := cli.NewData(args.Schema())
	boot := data.Container("boot")
	boot.Set("Last Booted", "<Unknown>")
	if store := state.DataStore(); store != nil {
		if lastBooted, err := store.Get(lastBootedPath); err == nil {
			boot.Set("Last Booted", lastBooted)
		}
	}
	boot.Set("Generated", time.Now().UTC().Format(time.RFC3339))
	data.SetFormatter("/boot",
		cli.Border(cli.TagValue(), cli.BorderAbove|cli.BorderBelow))
	return out.PrintData(data)
}
