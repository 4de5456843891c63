// Package config carries the CI context cimeta runs under: the environment
// snapshot provided by the workflow, the workflow-inputs file, and the
// repo-local settings file.
package config

import (
	"encoding/json"
	"strings"

	"github.com/spf13/viper"
)

// envVars are the variable names the workflow driver exports for a run.
var envVars = []string{
	"PR_BODY", "PR_TITLE", "BRANCH", "SHA",
	"REPOSITORY", "FORK_NAME", "USER_LOGIN", "PR_LABELS",
}

// Env is the CI/PR context of the current run. It is captured once at
// process start and passed around as an immutable snapshot.
type Env struct {
	PRBody     string
	PRTitle    string
	Branch     string
	SHA        string
	Repository string
	ForkName   string
	UserLogin  string
	PRLabels   []string
}

// CaptureEnv reads the workflow-provided environment variables into an Env
// snapshot. Unset variables stay empty.
func CaptureEnv() Env {
	v := viper.New()
	for _, name := range envVars {
		_ = v.BindEnv(name)
	}
	return Env{
		PRBody:     v.GetString("PR_BODY"),
		PRTitle:    v.GetString("PR_TITLE"),
		Branch:     v.GetString("BRANCH"),
		SHA:        v.GetString("SHA"),
		Repository: v.GetString("REPOSITORY"),
		ForkName:   v.GetString("FORK_NAME"),
		UserLogin:  v.GetString("USER_LOGIN"),
		PRLabels:   parseLabels(v.GetString("PR_LABELS")),
	}
}

// parseLabels accepts either a JSON array (what the workflow serializes) or
// a comma-separated list.
func parseLabels(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var labels []string
		if err := json.Unmarshal([]byte(s), &labels); err == nil {
			return labels
		}
	}
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
