// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"
)

// Formatter renders a single data container into output lines.
type Formatter interface {
	Format(c *Container) []string
}

// TagValue returns a formatter rendering a container as “tag: value” lines,
// with the colons aligned to the longest field name. Fields without a value
// are left out.
func TagValue() Formatter {
	return tagValueFormatter{}
}

type tagValueFormatter struct{}

func (tagValueFormatter) Format(c *Container) []string {
	width := 0
	for _, field := range c.Fields() {
		if _, ok := c.Get(field); !ok {
			continue
		}
		if len(field) > width {
			width = len(field)
		}
	}
	lines := []string{}
	for _, field := range c.Fields() {
		value, ok := c.Get(field)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-*s: %s", width, field, value))
	}
	return lines
}

// BorderPosition selects where Border draws its horizontal rules.
type BorderPosition int

const (
	// BorderAbove draws a rule above the wrapped formatter's output.
	BorderAbove BorderPosition = 1 << iota
	// BorderBelow draws a rule below the wrapped formatter's output.
	BorderBelow
)

// borderWidth is the width of the horizontal border rules.
const borderWidth = 70

// Border returns a formatter wrapping another formatter's output in
// horizontal rules at the given positions.
func Border(f Formatter, position BorderPosition) Formatter {
	return borderFormatter{inner: f, position: position}
}

type borderFormatter struct {
	inner    Formatter
	position BorderPosition
}

func (b borderFormatter) Format(c *Container) []string {
	rule := strings.Repeat("-", borderWidth)
	lines := []string{}
	if b.position&BorderAbove != 0 {
		lines = append(lines, rule)
	}
	lines = append(lines, b.inner.Format(c)...)
	if b.position&BorderBelow != 0 {
		lines = append(lines, rule)
	}
	return lines
}

// Output prints command results to the CLI user.
type Output struct {
	w io.Writer
}

// NewOutput returns an output printing to the given writer.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// PrintData renders the given data container by container, using the
// formatters set on the data (or the plain tag-value formatter), and prints
// the resulting lines.
func (o *Output) PrintData(d *Data) error {
	for _, c := range d.Containers() {
		for _, line := range d.formatter(c.Name()).Format(c) {
			if err := o.Println(line); err != nil {
				return err
			}
		}
	}
	return nil
}

// Println prints a single line.
func (o *Output) Println(line string) error {
	_, err := fmt.Fprintln(o.w, line)
	return err
}
