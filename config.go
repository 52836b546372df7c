package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"desktopmonitor/monitor"
	"desktopmonitor/util"
)

// Config contains all values from the optional configuration file.
type Config struct {
	Verbose  bool             `toml:"verbose"`
	Commands monitor.Commands `toml:"commands"`
}

// loadConfig reads the config file at path. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	config := Config{Commands: monitor.DefaultCommands()}
	if path == "" {
		return config, nil
	}
	file, err := util.NewHomePath(path)
	if err != nil {
		return config, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	exists, err := util.FileExists(file.Path)
	if err != nil {
		return config, err
	}
	if !exists {
		return config, fmt.Errorf("config file %s does not exist", file)
	}
	if _, err = toml.DecodeFile(file.Path, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", file, err)
	}
	config.Commands = config.Commands.WithDefaults()
	return config, nil
}
