// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the "edgesh tools" command, dispatching into the tools mode of
// the command surface. Operational tools commands change device state, so
// they live in their own mode, clearly separated from the read-only show
// commands.

package command

import (
	"github.com/siemens/edgesh/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// toolsCmd defines the "edgesh tools" command.
var toolsCmd = &cobra.Command{
	Use:   "tools [flags] COMMAND",
	Short: "Run an operational tools command contributed by a CLI plugin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, args[0], surfaceToolsMode, false)
	},
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(ToolsSetupCLI, plugger.WithPlugin("tools"))
}

// ToolsSetupCLI adds the “tools” command.
func ToolsSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(toolsCmd)
}
