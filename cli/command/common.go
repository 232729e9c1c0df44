// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements the edgesh "root" command with its global CLI flags.
// Additionally runs some checks on some of those global CLI flags, where
// necessary, so individual commands do not need to check them themselves.

package command

import (
	"os/user"
	"time"

	"github.com/siemens/edgesh"
	"github.com/siemens/edgesh/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/go-plugger/v3"
	"golang.org/x/exp/slices"

	log "github.com/sirupsen/logrus"
)

// Flag annotation for grouping mutually exclusive flags. Due to the open-ended
// plugin architecture of edgesh we cannot directly use cobra's
// MarkFlagsMutuallyExclusive in plugins, but instead plugins need to annotate
// their flags and we then gather the groups with their flag members in order to
// issue MarkFlagsMutuallyExclusive as necessary.
const MutualFlagGroupAnnotation = "mutually-exclusive-group"

// StoreGroup is the name of an annotation value for flags that should be
// mutually exclusive for specifying management state service endpoint
// information.
const StoreGroup = "mgmt"

// BearerToken specifies an optional user-supplied bearer token for
// authentication against the management state service.
var BearerToken string

// ReqTimeout specifies the length of time to wait before giving up on a single
// server request.
var ReqTimeout time.Duration

// Username is the name of the user running this CLI session; plugin folders
// and session state resolve against it.
var Username string

// rootCmd represents the Cobra "root" command and thus the edgesh CLI itself.
var rootCmd = &cobra.Command{
	Use:   "edgesh",
	Short: "Manage industrial edge devices from the command line",
	Long: `edgesh is the CLI for managing industrial edge devices. Its actual
commands are contributed by plugins: those compiled into this binary as well
as third-party plugin files installed on the device.`,
	// See: https://github.com/spf13/cobra/issues/340
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Run the registered before-the-command plugins
		for _, beforeCmd := range plugger.Group[cli.BeforeCommand]().Symbols() {
			if err := beforeCmd(cmd); err != nil {
				return err
			}
		}
		return nil
	},
}

// sessionLoaders are this session's plugin loaders in the order their plugins
// load: first the compiled-in plugins, then the third-party plugin files.
var sessionLoaders []*edgesh.PluginLoader

// Loaders returns this session's plugin loaders.
func Loaders() []*edgesh.PluginLoader { return sessionLoaders }

// SetupCLI loads the CLI configuration, registers the global ("persistent")
// CLI flags as well as the (sub)commands, and creates the session's plugin
// loaders so their plugins get their chance to register flags too. The
// individual commands are registered via a plugin-mechanism.
func SetupCLI() *cobra.Command {
	cfg := loadConfig()
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.Syslog {
		installSyslogObserver()
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&BearerToken, "token", "",
		"Bearer token for authentication to the management state service")
	pf.DurationVar(&ReqTimeout, "request-timeout", 0,
		`The length of time to wait before giving up on a single server request.
Non-zero values should contain a corresponding time unit (e.g. 1s, 2m, 3h).
A value of zero means don't timeout requests.`)

	// Call registered plugins in order to add further CLI args as well as
	// commands to the root command (or below).
	for _, setupCLI := range plugger.Group[cli.SetupCLI]().Symbols() {
		setupCLI(rootCmd)
	}
	// Set groups of mutually exclusive flags as annotated.
	mutuallyExclusives(rootCmd)
	// Fill in/expand command example sections, where additional command
	// examples are available.
	for _, cmd := range rootCmd.Commands() {
		examples := cli.Examples(cmd.Name())
		if examples == "" {
			continue
		}
		cmd.Example = examples
	}

	if u, err := user.Current(); err == nil {
		Username = u.Username
	}
	// Discover and construct the CLI plugins of this session, so they can
	// register their flags before the command line gets parsed.
	sessionLoaders = []*edgesh.PluginLoader{
		edgesh.NewLoader(false),
		edgesh.NewThirdPartyLoader(Username,
			cfg.Plugins.Distro, cfg.Plugins.Global, cfg.Plugins.Home),
	}
	for _, loader := range sessionLoaders {
		loader.AddCommandLineArguments(pf)
	}

	return rootCmd
}

// Annotate annotates the flag identified by name with the key=ann.
func Annotate(fs *pflag.FlagSet, flagname, key, ann string) {
	fs.SetAnnotation(flagname, key, []string{ann})
}

// exclusivesMap maps an "exclusive" group (name) to its mutually exclusive
// flags (names).
type exclusivesMap map[string][]string

// mutuallyExclusives starts with the specified command and collects mutually
// exclusive flags as identified by their annotations. It then configures them
// into their groups. This process then recursively repeats with each child
// command.
func mutuallyExclusives(cmd *cobra.Command) {
	exclusives := exclusivesMap{}
	cmd.MarkFlagsMutuallyExclusive() // hack: trigger merging if not already happened
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		group := flag.Annotations[MutualFlagGroupAnnotation]
		if len(group) != 1 {
			return
		}
		name := flag.Name
		members := exclusives[group[0]]
		if slices.Contains(members, name) {
			return
		}
		exclusives[group[0]] = append(exclusives[group[0]], name)
	})
	for _, members := range exclusives {
		cmd.MarkFlagsMutuallyExclusive(members...)
	}
	for _, subcmd := range cmd.Commands() {
		mutuallyExclusives(subcmd)
	}
}
