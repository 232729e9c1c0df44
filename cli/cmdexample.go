// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/thediveo/go-plugger/v3"
)

// Examples gathers the example sections contributed for the named edgesh
// command by the registered example plugins, in plugin order. Contributions
// for other commands (and empty ones) are left out; the remaining ones get
// separated by blank lines, without a trailing newline for the overall
// section.
func Examples(command string) string {
	var section strings.Builder
	for _, examples := range plugger.Group[CommandExamples]().Symbols() {
		example := strings.TrimSuffix(examples()[command], "\n")
		if example == "" {
			continue
		}
		if section.Len() > 0 {
			section.WriteString("\n\n")
		}
		section.WriteString(example)
	}
	return section.String()
}
