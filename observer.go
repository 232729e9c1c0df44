// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	log "github.com/sirupsen/logrus"
)

// Observer receives selected operational log lines in addition to the
// process log, typically forwarding them to the device syslog where the
// platform's audit tooling picks them up. Observers are entirely optional;
// without one, operational lines only go to the process log.
type Observer interface {
	// LogLine forwards a single log line of the given severity.
	LogLine(level log.Level, message string)
}

var observer Observer

// SetObserver installs the operational log sink; passing nil removes a
// previously installed one. The observer's lifecycle is owned by the
// surrounding infrastructure, not by the plugin machinery.
func SetObserver(o Observer) {
	observer = o
}

// CurrentObserver returns the installed operational log sink, or nil.
func CurrentObserver() Observer {
	return observer
}
