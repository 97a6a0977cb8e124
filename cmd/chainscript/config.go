package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// limitsFile carries per-project execution limits, loaded from a
// chainscript.yaml placed next to the script or passed explicitly.
type limitsFile struct {
	StepQuota int `yaml:"step_quota"`
}

const limitsFileName = "chainscript.yaml"

func resolveLimits(scriptPath, explicit string) (limitsFile, error) {
	path := explicit
	if path == "" {
		candidate := filepath.Join(filepath.Dir(scriptPath), limitsFileName)
		if _, err := os.Stat(candidate); err != nil {
			return limitsFile{}, nil
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return limitsFile{}, fmt.Errorf("read limits file: %w", err)
	}

	var limits limitsFile
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return limitsFile{}, fmt.Errorf("parse limits file %s: %w", path, err)
	}
	if limits.StepQuota < 0 {
		return limitsFile{}, fmt.Errorf("limits file %s: step_quota cannot be negative", path)
	}

	slog.Debug("limits loaded", "path", path, "step_quota", limits.StepQuota)
	return limits, nil
}
