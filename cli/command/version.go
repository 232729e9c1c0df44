// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strings"

	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// Provides the “edgesh version” command. The semantic version is the one
// defined for the main edgesh package, so there's no separate version number
// for the edgesh CLI command. In addition, the version command lists the
// included state store providers.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version (with integrated state store providers).",
	Run: func(cmd *cobra.Command, args []string) {
		semver := edgesh.SemVersion
		for _, pluginsemver := range plugger.Group[cli.SemVer]().Symbols() {
			semver = pluginsemver()
			break
		}
		fmt.Printf("%s version %s (state store providers: %s)\n",
			cmd.Parent().Name(),
			semver,
			strings.Join(plugger.Group[cli.NewStore]().Plugins(), ", "))
	},
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		VersionSetupCLI, plugger.WithPlugin("version"))
}

// VersionSetupCLI adds the “version” command.
func VersionSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(versionCmd)
}
