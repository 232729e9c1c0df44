// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Provides caching state values and looking them up again.

package mgmt

import (
	"sync"
)

// Store provides cached read access to the management state service, so a
// single CLI session doesn't pester the service over and over again for the
// same state paths. It can safely be accessed simultaneously by multiple go
// routines.
type Store struct {
	client *Client
	values map[string]string
	m      sync.Mutex
}

// NewStore returns a caching store on top of the given state service client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Get returns the value stored at the given state path, asking the state
// service only on the first request for a path; only successful answers get
// cached.
func (s *Store) Get(path string) (string, error) {
	s.m.Lock()
	if value, ok := s.values[path]; ok {
		s.m.Unlock()
		return value, nil
	}
	s.m.Unlock()
	value, err := s.client.Get(path)
	if err != nil {
		return "", err
	}
	s.m.Lock()
	defer s.m.Unlock()
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[path] = value
	return value, nil
}

// IsEmpty returns true if the cache is empty, otherwise false.
func (s *Store) IsEmpty() bool {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.values) == 0
}

// Clear the cached state values: the next Get for any path will ask the
// state service again.
func (s *Store) Clear() {
	s.m.Lock()
	defer s.m.Unlock()
	s.values = nil
}
