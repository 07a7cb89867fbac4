// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// decode unmarshals one source document into out. The format is chosen by the
// source's file extension: .json and .yaml/.yml get their native decoders,
// everything else is treated as TOML, the primary configuration format.
func decode(source string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		return json.Unmarshal(data, out)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return toml.Unmarshal(data, out)
	}
}
