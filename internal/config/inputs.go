package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Inputs looks up workflow input values from the JSON file the workflow
// driver writes before the step runs.
type Inputs struct {
	Path string
}

// Lookup returns the value for name. Every failure mode (missing file,
// malformed JSON, unknown key) is reported as an absent value: a step
// asking for an optional input must not fail because the file is not there.
func (in Inputs) Lookup(name string) (string, bool) {
	data, err := os.ReadFile(in.Path)
	if err != nil {
		slog.Warn("reading workflow inputs", "path", in.Path, "error", err)
		return "", false
	}
	var inputs map[string]string
	if err := json.Unmarshal(data, &inputs); err != nil {
		slog.Warn("parsing workflow inputs", "path", in.Path, "error", err)
		return "", false
	}
	value, ok := inputs[name]
	if !ok {
		slog.Warn("workflow input not set", "name", name)
		return "", false
	}
	return value, true
}
