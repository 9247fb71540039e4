package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RCParser is a koanf parser for the classic .cmakelintrc format:
// one `key=value` per line, `#` comments, and a bare `quiet` word.
// Unrecognized keys are ignored.
type RCParser struct{}

// NewRCParser returns an RCParser instance.
func NewRCParser() *RCParser {
	return &RCParser{}
}

// Unmarshal parses rc file bytes into a koanf config map.
func (p *RCParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quiet" {
			out["quiet"] = true
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "filter":
			out["filter"] = value
		case "spaces", "linelength":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value %q", key, value)
			}
			out[key] = n
		case "quiet":
			q, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid quiet value %q", value)
			}
			out["quiet"] = q
		}
	}
	return out, nil
}

// Marshal is not supported for the rc format.
func (p *RCParser) Marshal(map[string]interface{}) ([]byte, error) {
	return nil, errors.New("cmakelintrc marshalling is not supported")
}
