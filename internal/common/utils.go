package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NewLogger returns the JSON logger every action writes to stderr.
// Quiet mode only lets errors through.
func NewLogger(quiet bool) *slog.Logger {
	return newLogger(os.Stderr, quiet)
}

func newLogger(w io.Writer, quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// WriteYAML encodes v to w with two-space indentation.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// FilterFields projects v onto the comma-separated JSON field names in
// fieldsStr. An empty list keeps every field.
func FilterFields(v any, fieldsStr string) map[string]any {
	full := structToMap(v)
	if strings.TrimSpace(fieldsStr) == "" {
		return full
	}

	filtered := make(map[string]any)
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if value, ok := full[field]; ok {
			filtered[field] = value
		}
	}
	return filtered
}

// structToMap converts a struct to map[string]any using JSON marshaling.
func structToMap(obj any) map[string]any {
	data, _ := json.Marshal(obj)
	var result map[string]any
	_ = json.Unmarshal(data, &result)
	return result
}
