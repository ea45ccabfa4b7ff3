package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// transcriptEntry is one round-trip of the REPL: what the user typed
// and what came back, either a printed value or an error message.
type transcriptEntry struct {
	Input  string `yaml:"entrada"`
	Output string `yaml:"salida,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// session accumulates transcriptEntry records for the lifetime of a
// REPL run and, if a RecordPath was configured, flushes them to disk
// as YAML when the REPL exits.
type session struct {
	path    string
	entries []transcriptEntry
}

func newSession(path string) *session {
	return &session{path: path}
}

func (s *session) recordResult(input, output string) {
	if s.path == "" {
		return
	}
	s.entries = append(s.entries, transcriptEntry{Input: input, Output: output})
}

func (s *session) recordError(input, errMsg string) {
	if s.path == "" {
		return
	}
	s.entries = append(s.entries, transcriptEntry{Input: input, Error: errMsg})
}

// flush writes the accumulated transcript to s.path as YAML. A no-op
// if recording was never enabled or nothing was recorded.
func (s *session) flush() error {
	if s.path == "" || len(s.entries) == 0 {
		return nil
	}

	data, err := yaml.Marshal(struct {
		Sesion []transcriptEntry `yaml:"sesion"`
	}{Sesion: s.entries})
	if err != nil {
		return fmt.Errorf("no se pudo serializar la sesión: %w", err)
	}

	return os.WriteFile(s.path, data, 0o644)
}
