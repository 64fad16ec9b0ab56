/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Save writes v as pretty-printed UTF-8 JSON. When path is empty the default
// filename is used. Returns the path written.
func Save(v any, defaultName, path string) (string, error) {
	if path == "" {
		path = defaultName
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Load reads a JSON artifact into v.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Exists reports whether an artifact file is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
