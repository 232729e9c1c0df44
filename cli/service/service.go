// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package service

import (
	"github.com/siemens/edgesh/cli"
	"github.com/siemens/edgesh/cli/command"
	"github.com/siemens/edgesh/mgmt"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// ServiceURL specifies the hostname and port number of the management state
// service to use for this session.
var ServiceURL string

// Insecure skips invalid server certificates.
var Insecure bool

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		ServiceSetupCLI, plugger.WithPlugin("service"))
	plugger.Group[cli.NewStore]().Register(
		NewServiceStore, plugger.WithPlugin("service"))
	plugger.Group[cli.CommandExamples]().Register(
		func() map[string]string {
			return map[string]string{
				"show": `# Show the uptime of the local device.
edgesh --service localhost:5001 show uptime

# Show system information of a remote device.
edgesh --service dns-or-ip:5001 show system`,
				"plugins": `# List the plugins of a session, including their requirements.
edgesh plugins -o wide

# List only the report plugins.
edgesh plugins --reports`,
			}
		},
		plugger.WithPlugin("service"), plugger.WithPlacement("<"))
}

// ServiceSetupCLI registers the “--service” and “--insecure” CLI flags.
func ServiceSetupCLI(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&ServiceURL, "service", "",
		`[http://|https://]hostname[:port][/path] of the management state service
of the device to manage`)
	command.Annotate(pf, "service", command.MutualFlagGroupAnnotation, command.StoreGroup)
	pf.BoolVarP(&Insecure, "insecure", "k", false,
		"Danger: skip invalid server certificates when connecting to the state service")
}

// NewServiceStore returns a state store talking to the configured management
// state service; without any service configured on the command line or in
// the configuration files it returns a nil store, so other store factories
// get their chance.
func NewServiceStore() (cli.DataStore, error) {
	serviceurl := ServiceURL
	if serviceurl == "" {
		serviceurl = command.ConfiguredService()
	}
	if serviceurl == "" {
		return nil, nil
	}
	client, err := mgmt.New(serviceurl, &mgmt.ClientOptions{
		BearerToken:        command.BearerToken,
		Timeout:            command.ReqTimeout,
		InsecureSkipVerify: Insecure,
	})
	if err != nil {
		return nil, err
	}
	return mgmt.NewStore(client), nil
}
