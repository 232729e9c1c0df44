// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"runtime"
	"strings"

	"github.com/thediveo/go-plugger/v3"

	log "github.com/sirupsen/logrus"
)

// EntryPoint references a discovered, but not yet constructed plugin. Entry
// points either come from the registry of compiled-in plugins (NewEntryPoint)
// or from plugin files found in the plugin folders.
type EntryPoint interface {
	// Module names the module the plugin belongs to.
	Module() string
	// Name returns the plugin's name within its module.
	Name() string
	// Load resolves the entry point into the plugin's constructor. A nil
	// constructor without an error signals that the entry point's target
	// does not define a plugin after all, and is to be skipped silently.
	Load() (Constructor, error)
	// String renders the entry point in "name = source:Plugin" notation,
	// where source is the import path or file providing the plugin.
	String() string
}

// NewEntryPoint returns an entry point for a compiled-in plugin, to be
// registered in the plugger group of EntryPoint symbols from the plugin
// package's init function:
//
//	func init() {
//	    plugger.Group[edgesh.EntryPoint]().Register(
//	        edgesh.NewEntryPoint(edgesh.DefaultModule, "uptime", New),
//	        plugger.WithPlugin("uptime"))
//	}
//
// The registering package's import path becomes the entry point's source;
// packages below a "plugins/reports/" path segment register report plugins,
// everything else registers ordinary plugins.
func NewEntryPoint(module, name string, factory Constructor) EntryPoint {
	return &registryEntryPoint{
		module:  module,
		name:    name,
		source:  callerPackage(2),
		factory: factory,
	}
}

// registryEntryPoint is an entry point of a compiled-in plugin.
type registryEntryPoint struct {
	module  string
	name    string
	source  string // import path of the registering package.
	factory Constructor
}

func (e *registryEntryPoint) Module() string { return e.module }

func (e *registryEntryPoint) Name() string { return e.name }

// Load resolves to the constructor given at registration time; it never
// fails for compiled-in plugins.
func (e *registryEntryPoint) Load() (Constructor, error) {
	return e.factory, nil
}

func (e *registryEntryPoint) String() string {
	return e.name + " = " + e.source + ":" + PluginSymbol
}

// reportsPathSegment is the path segment reserved for report plugins: entry
// points whose source contains it are loaded only by report loaders, all
// other entry points only by ordinary loaders.
const reportsPathSegment = "/plugins/reports/"

// isReportEntryPoint checks whether an entry point provides a report plugin,
// based on its rendered source.
func isReportEntryPoint(ep EntryPoint) bool {
	return strings.Contains(ep.String(), reportsPathSegment)
}

// registryEntryPoints returns the entry points of all compiled-in plugins in
// registration order, keeping either only the report plugins or only the
// ordinary plugins.
func registryEntryPoints(showReports bool) []EntryPoint {
	log.Debug("walking entry points")
	eps := []EntryPoint{}
	for _, ep := range plugger.Group[EntryPoint]().Symbols() {
		if isReportEntryPoint(ep) != showReports {
			continue
		}
		eps = append(eps, ep)
	}
	return eps
}

// callerPackage returns the import path of the package calling skip levels
// up the stack, or "" if it cannot be determined.
func callerPackage(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	// Function names are of the form "import/path/pkg.Fn" with the package
	// name never containing slashes, so everything up to the first dot after
	// the last slash is the import path.
	name := fn.Name()
	dot := strings.IndexByte(name[strings.LastIndexByte(name, '/')+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:strings.LastIndexByte(name, '/')+1+dot]
}
