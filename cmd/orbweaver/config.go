// SPDX-License-Identifier: MIT
// Package: orbweaver/cmd/orbweaver
//
// config.go - optional JSONC config file (.orbweaver.jsonc by default),
// parsed by stripping comments via tidwall/jsonc before handing the
// result to encoding/json.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Config holds defaults shared across subcommands. Command-line flags,
// where present, always take precedence over a loaded Config value.
type Config struct {
	LogLevel     string `json:"log_level"`
	SnapshotPath string `json:"snapshot_path"`

	configPath string // not persisted; set by the --config flag
}

// LoadConfig reads and parses path if it exists, returning defaults
// otherwise. A missing file is not an error; a present-but-malformed one
// is.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{LogLevel: "info", SnapshotPath: "orbweaver.snapshot"}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("orbweaver: reading config %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(raw), cfg); err != nil {
		return nil, fmt.Errorf("orbweaver: parsing config %s: %w", path, err)
	}

	return cfg, nil
}
