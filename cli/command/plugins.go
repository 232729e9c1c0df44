// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides the "edgesh plugins" command for listing the CLI plugins a
// session will load, in the order their lifecycle callbacks will run.

package command

import (
	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/klo"
)

// Builtin custom-columns templates
const (
	// PluginListTemplate defines the custom columns when listing plugins.
	PluginListTemplate = "PLUGIN:{.Name},MODULE:{.Module},TOOLS:{.Tools}"
	// PluginWideListTemplate is like PluginListTemplate, but additionally
	// tacks on a column listing the plugins' requirements.
	PluginWideListTemplate = "PLUGIN:{.Name},MODULE:{.Module},TOOLS:{.Tools},REQUIRES:{.Requires}"

	// NameListTemplate for handling "-o name" and only showing a custom
	// "name" column; this template should be used with no headers shown, as
	// kubectl and others do.
	NameListTemplate = "NAME:{.Name}"
)

// pluginsCmd defines the "edgesh plugins" command.
var pluginsCmd = &cobra.Command{
	Use:   "plugins [flags]",
	Short: "List the CLI plugins of this session in the order they load",
	RunE:  pluginlist,
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(PluginsSetupCLI, plugger.WithPlugin("plugins"))
}

// PluginsSetupCLI adds the “plugins” command.
func PluginsSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(pluginsCmd)
	pluginsCmd.Flags().StringP("output", "o", "",
		"Output format. One of: json|yaml|wide|custom-columns=...|custom-columns-file=...|jsonpath=...|jsonpath-file=...")
	pluginsCmd.Flags().Bool("no-headers", false, "When using the default or custom-column output format, don't print headers (default print headers).")
	pluginsCmd.Flags().String("sort-by", "",
		"If non-empty, sort custom-columns using this field specification, instead of keeping the load order. The field specification is expressed as a JSONPath expression (e.g. '{.Name}').")
	pluginsCmd.Flags().Bool("reports", false,
		"List the compiled-in report plugins instead of the plugins of an ordinary session.")
}

// pluginlist fetches the plugins of this session (or alternatively the
// report plugins) for output using a template.
func pluginlist(cmd *cobra.Command, args []string) error {
	// Get the output CLI flag and prepare a suitable object printer.
	prn, err := getPrinter(cmd)
	if err != nil {
		return err
	}
	// ...throwing in sorting only when asked for: without it the listing
	// keeps the load order, which is the main point of this command.
	if sortby, err := cmd.LocalFlags().GetString("sort-by"); err == nil && sortby != "" {
		prn, err = klo.NewSortingPrinter(sortby, prn)
		if err != nil {
			return err
		}
	}
	loaders := Loaders()
	if reports, _ := cmd.LocalFlags().GetBool("reports"); reports {
		loaders = []*edgesh.PluginLoader{edgesh.NewLoader(true)}
	}
	infos := []edgesh.PluginInfo{}
	for _, loader := range loaders {
		infos = append(infos, loader.Plugins()...)
	}
	return prn.Fprint(cmd.OutOrStdout(), infos)
}

// getPrinter returns a value printer configured according to the output format
// chosen by the user, and some more optional output configuration flags.
func getPrinter(cmd *cobra.Command) (prn klo.ValuePrinter, err error) {
	outfmt, err := cmd.LocalFlags().GetString("output")
	if err != nil {
		return
	}
	if outfmt == "name" {
		// Support "-o name" output format which uses our builtin
		// custom-columns template to only show plugin names, and hide the
		// column header.
		prn, err = klo.PrinterFromFlag("custom-columns="+NameListTemplate, nil)
		if err != nil {
			panic(err)
		}
		prn.(*klo.CustomColumnsPrinter).HideHeaders = true
	} else {
		// For the other output format option, let the kubectl-like output
		// package handle the details and give us just the printer suitable
		// for dumping the plugin list onto our users.
		prn, err = klo.PrinterFromFlag(outfmt, &klo.Specs{
			DefaultColumnSpec: PluginListTemplate,
			WideColumnSpec:    PluginWideListTemplate,
		})
		if err != nil {
			return
		}
		if ccprn, ok := prn.(*klo.CustomColumnsPrinter); ok {
			ccprn.Padding = 3
			if noheaders, err := cmd.LocalFlags().GetBool("no-headers"); err == nil {
				ccprn.HideHeaders = noheaders
			}
		}
	}
	return
}
