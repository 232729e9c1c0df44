// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/pflag"
)

// Arguments carries the parsed command line arguments of the CLI process
// into the plugin load phase, so plugins can adapt their command
// registrations to the flags they registered earlier on.
type Arguments struct {
	flags *pflag.FlagSet
}

// NewArguments wraps the given parsed flag set.
func NewArguments(flags *pflag.FlagSet) *Arguments {
	return &Arguments{flags: flags}
}

// Flags returns the parsed flag set.
func (a *Arguments) Flags() *pflag.FlagSet { return a.flags }

// CommandArguments hands a command callback the schema its command was
// registered with.
type CommandArguments struct {
	schema *Schema
}

func newCommandArguments(schema *Schema) *CommandArguments {
	return &CommandArguments{schema: schema}
}

// Schema returns the schema the command registered; the callback uses it to
// create its result data.
func (a *CommandArguments) Schema() *Schema { return a.schema }
