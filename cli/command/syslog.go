// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"log/syslog"

	"github.com/siemens/edgesh"

	log "github.com/sirupsen/logrus"
)

// syslogObserver forwards operational log lines to the device syslog, where
// the platform's audit tooling picks them up.
type syslogObserver struct {
	w *syslog.Writer
}

// LogLine forwards a single log line to the syslog.
func (o *syslogObserver) LogLine(level log.Level, message string) {
	switch {
	case level <= log.ErrorLevel:
		_ = o.w.Err(message)
	case level == log.WarnLevel:
		_ = o.w.Warning(message)
	default:
		_ = o.w.Info(message)
	}
}

// installSyslogObserver mirrors operational plugin loading messages to the
// device syslog. Without a reachable syslog the CLI simply runs without the
// mirror.
func installSyslogObserver() {
	w, err := syslog.New(syslog.LOG_USER|syslog.LOG_INFO, "edgesh")
	if err != nil {
		log.Warnf("cannot connect to syslog, operational log mirroring disabled: %s",
			err.Error())
		return
	}
	edgesh.SetObserver(&syslogObserver{w: w})
}
