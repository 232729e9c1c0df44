// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package edgesh

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"plugin"
	"strings"

	"golang.org/x/sys/unix"

	log "github.com/sirupsen/logrus"
)

// fileLoader discovers plugin files in the plugin folders enabled for a
// particular CLI session. The folders are scanned in fixed precedence order:
// first the distribution's own folder, then the device-global folder, and
// finally the user's home folder.
type fileLoader struct {
	username string   // owner of the home plugin folder.
	folders  []string // folders to scan; may contain "~/" and "$VAR".
}

// newFileLoader returns a file loader scanning the plugin folders enabled by
// the role flags on behalf of the given user.
func newFileLoader(username string, distro, global, home bool) *fileLoader {
	l := &fileLoader{username: username}
	if distro {
		l.folders = append(l.folders, DistroPluginFolder)
	}
	if global {
		l.folders = append(l.folders, GlobalPluginFolder)
	}
	if home {
		l.folders = append(l.folders, HomePluginFolder)
	}
	return l
}

// entryPoints returns entry points for all readable plugin files found in
// the enabled folders, in scan order. Folders that don't exist or cannot be
// read simply don't contribute; that is business as usual on devices without
// any third-party plugins installed.
func (l *fileLoader) entryPoints() []EntryPoint {
	eps := []EntryPoint{}
	for _, folder := range l.folders {
		folder = l.expand(folder)
		if folder == "" {
			continue
		}
		_ = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				// Skip what we cannot read.
				return nil
			}
			if filepath.Ext(path) != PluginFileExtension {
				return nil
			}
			if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
				return nil
			}
			if unix.Access(path, unix.R_OK) != nil {
				return nil
			}
			message := "loading custom plugin from: " + path
			log.Debug(message)
			if obs := CurrentObserver(); obs != nil {
				obs.LogLine(log.InfoLevel, message)
			}
			eps = append(eps, newFileEntryPoint(path))
			return nil
		})
	}
	return eps
}

// expand resolves a leading "~/" against the session user's home directory
// and expands environment variable references. It returns "" when the home
// directory cannot be resolved, disabling the folder.
func (l *fileLoader) expand(folder string) string {
	if strings.HasPrefix(folder, "~/") {
		home := ""
		if l.username != "" {
			if u, err := user.Lookup(l.username); err == nil {
				home = u.HomeDir
			}
		} else if u, err := user.Current(); err == nil {
			home = u.HomeDir
		}
		if home == "" {
			return ""
		}
		folder = filepath.Join(home, folder[2:])
	}
	return os.ExpandEnv(folder)
}

// fileEntryPoint is the entry point of a plugin file, resolved only when
// loaded.
type fileEntryPoint struct {
	module string
	name   string
	path   string
}

// newFileEntryPoint returns the entry point for the given plugin file; the
// plugin name is the file's base name without the extension.
func newFileEntryPoint(path string) *fileEntryPoint {
	return &fileEntryPoint{
		module: DefaultModule,
		name:   strings.TrimSuffix(filepath.Base(path), PluginFileExtension),
		path:   path,
	}
}

func (e *fileEntryPoint) Module() string { return e.module }

func (e *fileEntryPoint) Name() string { return e.name }

// Load opens the plugin file and resolves its exported Plugin symbol into a
// plugin constructor. A file without such a symbol is no edgesh plugin and
// gets skipped silently; a file that cannot be opened fails with an
// ErrMissingModule-wrapping error; and a Plugin symbol of the wrong type
// fails with a ConstructionError.
func (e *fileEntryPoint) Load() (Constructor, error) {
	p, err := plugin.Open(e.path)
	if err != nil {
		return nil, fmt.Errorf("cannot load plugin file '%s': %v: %w",
			e.path, err, ErrMissingModule)
	}
	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		log.Debugf("no cli plugin found in: %s", e.path)
		return nil, nil
	}
	switch factory := sym.(type) {
	case func() Plugin:
		return factory, nil
	case Constructor:
		return factory, nil
	case *Constructor:
		return *factory, nil
	case *func() Plugin:
		return *factory, nil
	}
	return nil, &ConstructionError{EntryPoint: e.String()}
}

func (e *fileEntryPoint) String() string {
	return e.name + " = " + e.path + ":" + PluginSymbol
}
