// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Syntax describes the name and help texts of a command contributed to the
// command surface.
type Syntax struct {
	Name      string // command keyword; must not be empty.
	ShortHelp string // one-line help.
	Help      string // long help; optional.
	Epilogue  string // text shown after the help; optional.
}

// Callback runs a registered command: it fetches whatever state data it
// needs, fills in its result data, and prints it to the output.
type Callback func(state *State, out *Output, args *CommandArguments) error

// Command is a single command registered into a command mode, together with
// the schema its results follow.
type Command struct {
	syntax   Syntax
	schema   *Schema
	callback Callback
}

// Syntax returns the command's registered syntax.
func (c *Command) Syntax() Syntax { return c.syntax }

// Schema returns the schema of the command's result data.
func (c *Command) Schema() *Schema { return c.schema }

// Mode groups the commands reachable below a single top-level CLI keyword,
// such as “show”.
type Mode struct {
	name     string
	commands []*Command
	index    map[string]*Command
}

func newMode(name string) *Mode {
	return &Mode{name: name, index: map[string]*Command{}}
}

// Name returns the mode's top-level keyword.
func (m *Mode) Name() string { return m.name }

// AddCommand registers a command in this mode. Registering a command under
// an already taken name replaces the earlier command, keeping its position;
// this allows plugins to refine commands of the plugins they require.
func (m *Mode) AddCommand(syntax Syntax, schema *Schema, callback Callback) error {
	if syntax.Name == "" {
		return fmt.Errorf("cannot register a command without a name in '%s' mode", m.name)
	}
	if callback == nil {
		return fmt.Errorf("command '%s %s' must have a callback", m.name, syntax.Name)
	}
	cmd := &Command{syntax: syntax, schema: schema, callback: callback}
	if earlier, ok := m.index[syntax.Name]; ok {
		log.Debugf("command '%s %s' registered again, replacing the earlier registration",
			m.name, syntax.Name)
		*earlier = *cmd
		return nil
	}
	m.commands = append(m.commands, cmd)
	m.index[syntax.Name] = cmd
	return nil
}

// Commands returns the registered commands in registration order.
func (m *Mode) Commands() []*Command { return m.commands }

// Command returns the command registered under the given name.
func (m *Mode) Command(name string) (*Command, bool) {
	cmd, ok := m.index[name]
	return cmd, ok
}

// Invoke runs the command registered under the given name, handing it the
// session state and the output to print to.
func (m *Mode) Invoke(name string, state *State, out *Output) error {
	cmd, ok := m.index[name]
	if !ok {
		return fmt.Errorf("unknown '%s' command: '%s'", m.name, name)
	}
	return cmd.callback(state, out, newCommandArguments(cmd.schema))
}

// Surface is the command tree that plugins register their commands into
// during the load phase. The surface only accumulates the registrations; the
// command host decides when and how to dispatch into it.
type Surface struct {
	show  *Mode
	tools *Mode
}

// NewSurface returns a new and still empty command surface.
func NewSurface() *Surface {
	return &Surface{
		show:  newMode("show"),
		tools: newMode("tools"),
	}
}

// ShowMode returns the mode of the informational “show” commands.
func (s *Surface) ShowMode() *Mode { return s.show }

// ToolsMode returns the mode of the operational “tools” commands.
func (s *Surface) ToolsMode() *Mode { return s.tools }
