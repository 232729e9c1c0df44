// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the "edgesh show" command: it runs the plugin lifecycle for this
// session and then dispatches into the show mode of the command surface the
// plugins have registered their commands into.

package command

import (
	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"

	log "github.com/sirupsen/logrus"
)

// showCmd defines the "edgesh show" command.
var showCmd = &cobra.Command{
	Use:   "show [flags] COMMAND",
	Short: "Show state information reported by a CLI plugin command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, _ := cmd.LocalFlags().GetBool("reports")
		return dispatch(cmd, args[0], surfaceShowMode, reports)
	},
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(ShowSetupCLI, plugger.WithPlugin("show"))
}

// ShowSetupCLI adds the “show” command.
func ShowSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(showCmd)
	showCmd.Flags().Bool("reports", false,
		"Run a report command contributed by the report plugins instead of an ordinary show command.")
}

// selects the command surface mode to dispatch into.
type surfaceMode int

const (
	surfaceShowMode surfaceMode = iota
	surfaceToolsMode
)

// dispatch runs the plugin lifecycle of this session and then invokes the
// named command in the selected mode of the resulting command surface. With
// reports enabled the session's ordinary compiled-in plugins get replaced by
// the compiled-in report plugins; the third-party plugins stay out of report
// sessions.
func dispatch(cmd *cobra.Command, name string, mode surfaceMode, reports bool) error {
	store, err := NewDataStore()
	if err != nil {
		return err
	}
	state := cli.NewState(Username, store)
	loaders := Loaders()
	if reports {
		loaders = []*edgesh.PluginLoader{edgesh.NewLoader(true)}
	}
	for _, loader := range loaders {
		if !loader.OnToolsLoad(state) {
			log.Debug("not all tools plugins loaded")
		}
	}
	for _, loader := range loaders {
		loader.OnStart(state)
	}
	arguments := cli.NewArguments(cmd.Root().PersistentFlags())
	var surface *cli.Surface
	for _, loader := range loaders {
		surface = loader.Load(arguments, surface)
	}
	if surface == nil {
		surface = cli.NewSurface()
	}
	out := cli.NewOutput(cmd.OutOrStdout())
	switch mode {
	case surfaceToolsMode:
		return surface.ToolsMode().Invoke(name, state, out)
	default:
		return surface.ShowMode().Invoke(name, state, out)
	}
}
