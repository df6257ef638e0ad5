package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// schemaFiles is the set of files every successful export leaves behind.
var schemaFiles = []string{
	"action_log.json",
	"input_log.json",
	"launch_local_result.json",
	"launch_result.json",
	"local_message.json",
}

// findBinary finds the agentschema binary under test.
// The binary must be on PATH, e.g. after `go build -o bin/ ./cmd/agentschema`.
func findBinary() (string, error) {
	path, err := exec.LookPath("agentschema")
	if err != nil {
		return "", fmt.Errorf("could not find 'agentschema' binary in PATH. Build it into a directory on PATH first")
	}
	return path, nil
}

// listFiles returns the sorted names of the entries in dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// snapshot reads every schema file in dir.
func snapshot(dir string) (map[string]string, error) {
	files := make(map[string]string, len(schemaFiles))
	for _, name := range schemaFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files[name] = string(data)
	}
	return files, nil
}
