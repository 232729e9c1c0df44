// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package uptime provides the 'show uptime' CLI plugin, reporting how long
// the device has been up and running.
package uptime

import (
	"fmt"
	"time"

	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/thediveo/go-plugger/v3"

	log "github.com/sirupsen/logrus"
)

// PluginName is this plugin's name within the edgesh module.
const PluginName = "uptime"

// lastBootedPath is the state path reporting when the device last booted.
const lastBootedPath = "/platform/chassis/last-booted"

// unknown gets reported when the device's boot time cannot be determined.
const unknown = "<Unknown>"

func init() {
	plugger.Group[edgesh.EntryPoint]().Register(
		edgesh.NewEntryPoint(edgesh.DefaultModule, PluginName, New),
		plugger.WithPlugin(PluginName))
}

// Plugin adds the 'show uptime' command.
//
// Example output:
//
//	----------------------------------------------------------------------
//	Uptime     : 0 days 3 hours 39 minutes 34 seconds
//	Last Booted: 2024-10-24T03:31:50.561Z
//	----------------------------------------------------------------------
type Plugin struct {
	edgesh.Base
}

// New returns a new uptime plugin.
func New() edgesh.Plugin { return &Plugin{} }

// Load registers the 'show uptime' command.
func (p *Plugin) Load(surface *cli.Surface, _ *cli.Arguments) error {
	return surface.ShowMode().AddCommand(
		cli.Syntax{
			Name:      "uptime",
			ShortHelp: "Show platform uptime",
			Help:      "Show platform uptime in days, hours, minutes and seconds.",
		},
		schema(),
		printUptime)
}

// schema declares the fixed shape of the uptime command's output.
func schema() *cli.Schema {
	s := cli.NewSchema()
	s.AddChild("uptime", "Uptime", "Last Booted")
	return s
}

// printUptime fetches the device's boot time from the state store and
// reports the resulting uptime.
func printUptime(state *cli.State, out *cli.Output, args *cli.CommandArguments) error {
	data := cli.NewData(args.Schema())
	uptime := data.Container("uptime")
	uptime.Set("Last Booted", unknown)
	if lastBooted := fetchLastBooted(state); lastBooted != "" {
		uptime.Set("Last Booted", lastBooted)
		elapsed, err := calculateUptime(lastBooted, time.Now())
		if err != nil {
			return err
		}
		uptime.Set("Uptime", elapsed)
	}
	data.SetFormatter("/uptime",
		cli.Border(cli.TagValue(), cli.BorderAbove|cli.BorderBelow))
	return out.PrintData(data)
}

// fetchLastBooted returns the device's last-booted time stamp, or "" when it
// cannot be determined; sessions without a management service connection are
// business as usual here, not an error.
func fetchLastBooted(state *cli.State) string {
	store := state.DataStore()
	if store == nil {
		return ""
	}
	lastBooted, err := store.Get(lastBootedPath)
	if err != nil {
		log.Debugf("cannot determine last-booted time: %s", err.Error())
		return ""
	}
	return lastBooted
}

// calculateUptime renders the time elapsed between the given boot time stamp
// and now in human-readable form.
func calculateUptime(lastBooted string, now time.Time) (string, error) {
	bootTime, err := time.Parse(time.RFC3339, lastBooted)
	if err != nil {
		return "", fmt.Errorf("invalid last-booted time stamp: %w", err)
	}
	elapsed := now.Sub(bootTime)
	days := int(elapsed / (24 * time.Hour))
	elapsed %= 24 * time.Hour
	hours := int(elapsed / time.Hour)
	elapsed %= time.Hour
	minutes := int(elapsed / time.Minute)
	seconds := int((elapsed % time.Minute) / time.Second)
	return fmt.Sprintf("%d days %d hours %d minutes %d seconds",
		days, hours, minutes, seconds), nil
}
