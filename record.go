// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// record pairs a successfully constructed plugin with its identity within a
// loader run.
type record struct {
	module string
	name   string
	plugin Plugin
}

// newRecord resolves an entry point and constructs its plugin, returning the
// record for it. A nil record without an error means the entry point does
// not define a plugin and is to be skipped.
func newRecord(ep EntryPoint) (*record, error) {
	log.Debugf("  importing plugin '%s'", ep)
	module := ep.Module()
	if module == "" {
		return nil, &PluginError{
			Message: fmt.Sprintf("invalid entry point '%s': no module", ep),
		}
	}
	plug, err := construct(ep)
	if err != nil {
		if errors.Is(err, ErrMissingModule) {
			// Keep the missing-module classification visible to the loader.
			return nil, err
		}
		return nil, &PluginError{
			Message: fmt.Sprintf("failed to load module '%s.%s'", module, ep.Name()),
			Err:     err,
		}
	}
	if plug == nil {
		return nil, nil
	}
	return &record{module: module, name: ep.Name(), plugin: plug}, nil
}

// construct loads the entry point's constructor and invokes it, guarding
// against panicking constructors. A constructor that panics or returns nil
// violates the plugin contract and yields a ConstructionError.
func construct(ep EntryPoint) (Plugin, error) {
	factory, err := ep.Load()
	if err != nil || factory == nil {
		return nil, err
	}
	var plug Plugin
	err = protect(func() error {
		plug = factory()
		return nil
	})
	if err != nil {
		return nil, &ConstructionError{EntryPoint: ep.String(), Err: err}
	}
	if plug == nil {
		return nil, &ConstructionError{EntryPoint: ep.String()}
	}
	return plug, nil
}

// key returns the record's plugin key.
func (r *record) key() pluginKey {
	return pluginKey{module: r.module, name: r.name}
}

// requirements returns the plugin's declared requirements with empty Module
// fields resolved to the record's own module. The plugin is asked anew on
// every call, so requirements may legitimately change between phases.
func (r *record) requirements() []RequiredPlugin {
	declared := r.plugin.RequiredPlugins()
	reqs := make([]RequiredPlugin, 0, len(declared))
	for _, req := range declared {
		if req.Module == "" {
			req.Module = r.module
		}
		reqs = append(reqs, req)
	}
	return reqs
}

// checkRequirements validates that the plugin's declared requirements are
// well-formed, which boils down to requirement names not being empty.
func (r *record) checkRequirements() error {
	for _, req := range r.plugin.RequiredPlugins() {
		if req.Name == "" {
			return &PluginError{
				Message: fmt.Sprintf(
					"plugin '%s' declares an invalid requirement %+v: the plugin name must not be empty",
					r, req),
			}
		}
	}
	return nil
}

// String renders the record's identity in "module.name" notation.
func (r *record) String() string {
	return r.module + "." + r.name
}
