// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package mgmt

import "fmt"

// ServerError reports a state request that the management state service
// answered with an error instead of a value, such as requests for unknown
// state paths.
type ServerError struct {
	Path   string // the requested state path.
	Reason string // the reason given by the service.
}

// Error returns the error message.
func (e *ServerError) Error() string {
	return fmt.Sprintf("state request for '%s' failed: %s", e.Path, e.Reason)
}
