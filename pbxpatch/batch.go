package pbxpatch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchEntry is one file to register, as listed in a batch YAML file.
type BatchEntry struct {
	Path  string `yaml:"path"`
	Group string `yaml:"group,omitempty"`
}

type batchFile struct {
	Files []BatchEntry `yaml:"files"`
}

// LoadBatch reads a YAML file of the form:
//
//	files:
//	  - path: OralableApp/Views/HealthKitPermissionView.swift
//	    group: Views
func LoadBatch(path string) ([]BatchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	var batch batchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(batch.Files) == 0 {
		return nil, fmt.Errorf("batch file %s lists no files", path)
	}
	for i, entry := range batch.Files {
		if entry.Path == "" {
			return nil, fmt.Errorf("batch entry %d has no path", i)
		}
	}
	return batch.Files, nil
}
