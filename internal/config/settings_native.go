//go:build !js

package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

const settingsFileName = "settings.toml"

func encodeSettings(s *Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSettings(data []byte, s *Settings) error {
	return toml.Unmarshal(data, s)
}
