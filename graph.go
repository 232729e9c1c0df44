// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// pluginGraph orders plugin records so that every plugin comes after all the
// plugins it requires. Where requirements leave room, the order of discovery
// decides; Go's maps iterate in randomized order, so the graph keeps an
// explicit key slice for that.
type pluginGraph struct {
	records map[pluginKey]*record
	keys    []pluginKey // keys in insertion order.
}

func newPluginGraph() *pluginGraph {
	return &pluginGraph{records: map[pluginKey]*record{}}
}

// addAll inserts the given records in order.
func (g *pluginGraph) addAll(records []*record) {
	for _, r := range records {
		g.add(r)
	}
}

// add inserts a single record. Inserting a record under an already known key
// replaces the previous record, but keeps its position in the discovery
// order.
func (g *pluginGraph) add(r *record) {
	key := r.key()
	if _, ok := g.records[key]; ok {
		log.Debugf("plugin '%s' registered again, replacing the earlier registration", r)
		g.records[key] = r
		return
	}
	g.records[key] = r
	g.keys = append(g.keys, key)
}

// ordered returns all records ordered such that required plugins always come
// before the plugins requiring them, breaking ties by discovery order. It
// fails with a PluginError when a requirement is malformed, references an
// unknown plugin, or when the requirements form a cycle.
func (g *pluginGraph) ordered() ([]*record, error) {
	if err := g.checkRequirements(); err != nil {
		return nil, err
	}
	if err := g.checkMissingRequirements(); err != nil {
		return nil, err
	}
	return g.sort()
}

// checkRequirements validates the declared requirements of all records.
func (g *pluginGraph) checkRequirements() error {
	for _, key := range g.keys {
		if err := g.records[key].checkRequirements(); err != nil {
			return err
		}
	}
	return nil
}

// checkMissingRequirements ensures that every requirement references a
// plugin present in this graph, failing on the first missing one.
func (g *pluginGraph) checkMissingRequirements() error {
	for _, key := range g.keys {
		r := g.records[key]
		for _, req := range r.requirements() {
			if _, ok := g.records[req.key()]; !ok {
				return &PluginError{
					Message: fmt.Sprintf(
						"plugin '%s' requires non-existing plugin '%s'", r, req),
				}
			}
		}
	}
	return nil
}

// sort repeatedly sweeps over the not yet placed records, placing those
// whose requirements have all been placed, until a sweep places nothing
// anymore. Any records still unplaced then must form requirement cycles.
func (g *pluginGraph) sort() ([]*record, error) {
	ordered := make([]*record, 0, len(g.keys))
	placed := make(map[pluginKey]bool, len(g.keys))
	for {
		appended := false
		for _, key := range g.keys {
			if placed[key] {
				continue
			}
			r := g.records[key]
			satisfied := true
			for _, req := range r.requirements() {
				if !placed[req.key()] {
					satisfied = false
					break
				}
			}
			if !satisfied {
				continue
			}
			placed[key] = true
			ordered = append(ordered, r)
			appended = true
		}
		if !appended {
			break
		}
	}
	if len(ordered) != len(g.keys) {
		cyclic := []string{}
		for _, key := range g.keys {
			if !placed[key] {
				cyclic = append(cyclic, key.name)
			}
		}
		return nil, &PluginError{
			Message: fmt.Sprintf(
				"cyclic dependency between plugins detected: %v", cyclic),
		}
	}
	return ordered, nil
}
