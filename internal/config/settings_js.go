//go:build js

package config

import "encoding/json"

const settingsFileName = "settings.json"

func encodeSettings(s *Settings) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func decodeSettings(data []byte, s *Settings) error {
	return json.Unmarshal(data, s)
}
