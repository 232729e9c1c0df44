// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

// DataStore gives read access to the management server's state store.
// Command callbacks use it to fetch the live state their output reports.
type DataStore interface {
	// Get returns the value stored at the given state path.
	Get(path string) (string, error)
}

// State carries the context of a single CLI session through the plugin
// lifecycle callbacks: who is running the session, the management state
// store of the device (if connected), and the tools mode schema once the
// tools_mode plugin has installed it. The plugin machinery itself never
// looks inside.
type State struct {
	username    string
	store       DataStore
	toolsSchema *Schema
}

// NewState returns the session state for the given user. The store may be
// nil for sessions without a management server connection; command callbacks
// then report state values as unavailable.
func NewState(username string, store DataStore) *State {
	return &State{username: username, store: store}
}

// Username returns the name of the user running the session.
func (s *State) Username() string { return s.username }

// DataStore returns the management state store of the session, or nil when
// the session has no management server connection.
func (s *State) DataStore() DataStore { return s.store }

// SetToolsSchema installs the tools mode schema; this is the job of the
// distinguished tools_mode plugin during the tools load phase.
func (s *State) SetToolsSchema(schema *Schema) { s.toolsSchema = schema }

// ToolsSchema returns the installed tools mode schema, or nil before the
// tools load phase has run (or when it failed).
func (s *State) ToolsSchema() *Schema { return s.toolsSchema }
