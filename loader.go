// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/siemens/edgesh/cli"
	"github.com/spf13/pflag"

	log "github.com/sirupsen/logrus"
)

// PluginLoader discovers and constructs CLI plugins from a single source and
// then drives them through their lifecycle phases. A CLI session typically
// uses several loaders side by side: one for the compiled-in plugins (or
// alternatively the compiled-in report plugins) and another one for the
// third-party plugin files installed on the device.
type PluginLoader struct {
	records       []*record
	ignoreMissing bool
}

// NewLoader returns a plugin loader over the compiled-in plugins registered
// in the plugger group of EntryPoint symbols. With showReports false it
// loads all ordinary plugins, with showReports true instead only the report
// plugins; report loaders additionally ignore plugins with missing modules
// instead of reporting them.
func NewLoader(showReports bool) *PluginLoader {
	return newPluginLoader(registryEntryPoints(showReports), showReports)
}

// NewThirdPartyLoader returns a plugin loader over the plugin files found in
// the plugin folders enabled by the role flags, resolving the home folder
// for the given user.
func NewThirdPartyLoader(username string, distro, global, home bool) *PluginLoader {
	fl := newFileLoader(username, distro, global, home)
	return newPluginLoader(fl.entryPoints(), false)
}

func newPluginLoader(entryPoints []EntryPoint, ignoreMissing bool) *PluginLoader {
	l := &PluginLoader{ignoreMissing: ignoreMissing}
	l.records = l.createRecords(entryPoints)
	return l
}

// createRecords constructs the plugins of all given entry points, isolating
// the failures: a failing entry point is reported and skipped, so the other
// plugins still make it into the run.
func (l *PluginLoader) createRecords(entryPoints []EntryPoint) []*record {
	log.Debug("importing plugins")
	records := make([]*record, 0, len(entryPoints))
	for _, ep := range entryPoints {
		r, err := newRecord(ep)
		switch {
		case err == nil:
			if r != nil {
				records = append(records, r)
			}
		case errors.Is(err, ErrMissingModule) && l.ignoreMissing:
			log.Debugf("ignoring missing plugin '%s': %s", ep, err)
		default:
			notifyPluginError(fmt.Sprintf("error: importing plugin '%s'", ep), err)
		}
	}
	log.Debug("imported all plugins")
	return records
}

// AddCommandLineArguments gives every plugin the chance to register its
// command line flags. This phase runs before the command line is parsed and
// uses plain construction order, as plugin ordering serves the later phases
// only. Flag registration is not isolated either: duplicate or malformed
// flags are programming errors that must surface immediately.
func (l *PluginLoader) AddCommandLineArguments(flags *pflag.FlagSet) {
	for _, r := range l.records {
		r.plugin.AddCommandLineArguments(flags)
	}
}

// OnToolsLoad drives all tools-capable plugins through their tools load
// phase in dependency order, reporting whether all of them succeeded. A
// failure of the distinguished tools_mode plugin abandons the phase
// immediately, as without the tools schema no other tools plugin can
// succeed anyway; any other failure is reported and skipped.
func (l *PluginLoader) OnToolsLoad(state *cli.State) bool {
	ordered := l.orderedRecords("tools load")
	result := true
	log.Debug("loading tools plugins")
	for _, r := range ordered {
		tp, ok := r.plugin.(ToolsPlugin)
		if !ok {
			continue
		}
		log.Debugf("  loading tools plugin '%s'", r.name)
		if err := protect(func() error { return tp.OnToolsLoad(state) }); err != nil {
			result = false
			if r.name == ToolsModePluginName {
				log.Debug("skipping loading of tools plugins (tools mode schema initialization failed)")
				return result
			}
			notifyPluginError(
				fmt.Sprintf("error: loading tools plugin '%s'", r.name), err)
		}
	}
	log.Debug("loaded all tools plugins")
	return result
}

// OnStart starts all plugins in dependency order. Failures are isolated, so
// one plugin failing (or panicking) in its start callback cannot prevent
// the remaining plugins from starting.
func (l *PluginLoader) OnStart(state *cli.State) {
	ordered := l.orderedRecords("start")
	log.Debug("starting plugins")
	for _, r := range ordered {
		log.Debugf("  starting plugin '%s'", r.name)
		if err := protect(func() error { return r.plugin.OnStart(state) }); err != nil {
			notifyPluginError(fmt.Sprintf("error: starting plugin '%s'", r.name), err)
		}
	}
	log.Debug("started all plugins")
}

// Load asks all plugins in dependency order to register their commands into
// the command surface, handing each one the parsed command line arguments.
// When passed a nil surface a fresh one is created; passing in the surface
// of a previous loader's Load lets several loaders fill the same command
// tree. Failures are isolated just like in the start phase. Returns the
// surface.
func (l *PluginLoader) Load(args *cli.Arguments, surface *cli.Surface) *cli.Surface {
	log.Debug("loading plugins")
	if surface == nil {
		surface = cli.NewSurface()
	}
	ordered := l.orderedRecords("load")
	for _, r := range ordered {
		log.Debugf("  loading plugin '%s'", r.name)
		if err := protect(func() error { return r.plugin.Load(surface, args) }); err != nil {
			notifyPluginError(fmt.Sprintf("error: loading plugin '%s'", r.name), err)
		}
	}
	log.Debug("loaded all plugins")
	return surface
}

// PluginInfo describes a single constructed plugin, for listing purposes.
type PluginInfo struct {
	Name     string // plugin name within its module.
	Module   string // module owning the plugin.
	Tools    bool   // takes part in the tools load phase?
	Requires string // requirements in "module.name" notation, comma-separated.
}

// Plugins returns information about all constructed plugins, in the order
// the lifecycle phases will run them.
func (l *PluginLoader) Plugins() []PluginInfo {
	infos := make([]PluginInfo, 0, len(l.records))
	for _, r := range l.orderedRecords("listing") {
		reqs := []string{}
		for _, req := range r.requirements() {
			reqs = append(reqs, req.String())
		}
		_, tools := r.plugin.(ToolsPlugin)
		infos = append(infos, PluginInfo{
			Name:     r.name,
			Module:   r.module,
			Tools:    tools,
			Requires: strings.Join(reqs, ","),
		})
	}
	return infos
}

// orderedRecords returns all records in dependency order. When ordering
// fails the failure is reported and the records are returned in discovery
// order instead, so the session still comes up with whatever loaded.
func (l *PluginLoader) orderedRecords(phase string) []*record {
	g := newPluginGraph()
	g.addAll(l.records)
	ordered, err := g.ordered()
	if err != nil {
		notifyPluginError("error: ordering of plugins before "+phase+" failed", err)
		return l.records
	}
	return ordered
}
