// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/siemens/edgesh/cli"
	"github.com/thediveo/go-plugger/v3"
)

// NewDataStore returns the management state store for this session by asking
// the registered store factories one after another until the first one
// returns a store or an error. When no factory feels responsible the session
// simply runs without a store; commands then report state values as
// unavailable instead of failing, so the CLI stays usable on devices without
// a (reachable) management service.
func NewDataStore() (cli.DataStore, error) {
	for _, newStore := range plugger.Group[cli.NewStore]().Symbols() {
		store, err := newStore()
		if err != nil {
			return nil, err
		}
		if store != nil {
			return store, nil
		}
	}
	return nil, nil
}
