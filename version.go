// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

// SemVersion is the semantic version string of the edgesh module.
const SemVersion = "0.9.5"
