// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

// RequiredPlugin identifies a plugin that another plugin requires to be
// loaded before itself. An empty Module refers to the requiring plugin's own
// module, so plugins of the same module can reference each other without
// hard-coding their module name.
type RequiredPlugin struct {
	Module string // module owning the required plugin; empty: same module.
	Name   string // name of the required plugin within its module.
}

// String renders the requirement in "module.name" notation.
func (r RequiredPlugin) String() string {
	return r.Module + "." + r.Name
}

// key returns the plugin key for looking up the required plugin. The Module
// must have been resolved already.
func (r RequiredPlugin) key() pluginKey {
	return pluginKey{module: r.Module, name: r.Name}
}

// pluginKey uniquely identifies a plugin within a single loader run by its
// module and plugin name.
type pluginKey struct {
	module string
	name   string
}

// String renders the key in "module.name" notation.
func (k pluginKey) String() string {
	return k.module + "." + k.name
}
