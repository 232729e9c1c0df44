// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements loading the optional edgesh CLI configuration files: first the
// device-global configuration, then the user's own configuration on top.

package command

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

// Config mirrors the optional edgesh CLI configuration file contents.
type Config struct {
	// Debug enables debug log output without having to pass --debug on each
	// invocation.
	Debug bool `yaml:"debug"`
	// Service optionally specifies the management state service to use when
	// the --service flag doesn't.
	Service string `yaml:"service"`
	// Syslog mirrors operational plugin loading messages to the device
	// syslog.
	Syslog bool `yaml:"syslog"`
	// Plugins controls which third-party plugin folders to scan.
	Plugins PluginFoldersConfig `yaml:"plugins"`
}

// PluginFoldersConfig enables or disables the individual third-party plugin
// folder roles.
type PluginFoldersConfig struct {
	Distro bool `yaml:"distro"`
	Global bool `yaml:"global"`
	Home   bool `yaml:"home"`
}

// configPaths lists the configuration files in evaluation order; settings
// from later files override settings from earlier ones.
var configPaths = []string{
	"/etc/opt/edgesh/cli.yaml",
	"~/.config/edgesh/cli.yaml",
}

// cfg is the effective CLI configuration, set by SetupCLI.
var cfg *Config

// ConfiguredService returns the management state service configured in the
// CLI configuration files, if any.
func ConfiguredService() string {
	if cfg == nil {
		return ""
	}
	return cfg.Service
}

// loadConfig returns the effective CLI configuration: the built-in defaults
// with the configuration files applied on top. Missing files are perfectly
// fine; broken files are reported and skipped. Unmarshalling only touches
// the settings a file actually contains, so the files merge setting-wise.
func loadConfig() *Config {
	cfg = &Config{
		Plugins: PluginFoldersConfig{Distro: true, Global: true, Home: false},
	}
	for _, path := range configPaths {
		if strings.HasPrefix(path, "~/") {
			u, err := user.Current()
			if err != nil {
				continue
			}
			path = filepath.Join(u.HomeDir, path[2:])
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(contents, cfg); err != nil {
			log.Warnf("ignoring broken configuration file %s: %s", path, err.Error())
		}
	}
	return cfg
}
