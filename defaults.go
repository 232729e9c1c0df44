// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

const (
	// DistroPluginFolder is where the edgesh distribution installs its own
	// plugin files.
	DistroPluginFolder = "/opt/edgesh/cli/plugins"
	// GlobalPluginFolder is where device administrators install plugin files
	// for all users of a device.
	GlobalPluginFolder = "/etc/opt/edgesh/cli/plugins"
	// HomePluginFolder is where an individual user keeps personal plugin
	// files, relative to the user's home directory.
	HomePluginFolder = "~/cli/plugins"

	// PluginFileExtension is the file name extension plugin files must carry
	// to be picked up by the third-party plugin loader.
	PluginFileExtension = ".so"

	// PluginSymbol is the name of the symbol a plugin file must export in
	// order to be recognized as an edgesh plugin: a Constructor, or a
	// function assignable to one.
	PluginSymbol = "Plugin"

	// DefaultModule is the module name under which compiled-in plugins and
	// plugin files register, unless they explicitly choose otherwise.
	DefaultModule = "edgesh"

	// ToolsModePluginName is the name of the distinguished plugin that
	// initializes the tools mode schema. When this plugin fails the tools
	// load phase is abandoned immediately, as no other tools plugin can work
	// without the schema.
	ToolsModePluginName = "tools_mode"
)
