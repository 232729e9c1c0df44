// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"errors"
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

// ErrMissingModule indicates a plugin whose backing module could not be
// resolved, such as a plugin file that fails to open. Loaders created with
// report filtering enabled silently skip entry points failing with this
// error, as report plugins may legitimately reference optional modules not
// installed on a particular device.
var ErrMissingModule = errors.New("plugin module not found")

// PluginError reports a plugin that could not be constructed, ordered, or
// driven through one of its lifecycle callbacks.
type PluginError struct {
	Message string
	Err     error // optional underlying cause.
}

// Error returns the error message, including the underlying cause, if any.
func (e *PluginError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *PluginError) Unwrap() error { return e.Err }

// ConstructionError reports an entry point that resolved to something other
// than a working plugin constructor.
type ConstructionError struct {
	EntryPoint string // rendered entry point, see EntryPoint.String.
	Err        error  // optional underlying cause.
}

// Error returns the error message, including the underlying cause, if any.
func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf(
		"entry point '%s' must provide a constructor returning a Plugin instance",
		e.EntryPoint)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ConstructionError) Unwrap() error { return e.Err }

// notifyPluginError reports a contained plugin failure on the error level,
// naming the failed step, the error's type, and its message. When running at
// debug level the report additionally carries the current stack.
func notifyPluginError(message string, err error) {
	text := fmt.Sprintf("%s: %T: %s", message, err, err)
	if log.IsLevelEnabled(log.DebugLevel) {
		text += "\n" + string(debug.Stack())
	}
	log.Error(text)
}

// protect invokes fn and turns a panic inside fn into an ordinary error, so
// that a single misbehaving plugin callback cannot take down the whole CLI.
func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if log.IsLevelEnabled(log.DebugLevel) {
				err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
