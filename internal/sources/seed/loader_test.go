package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeed(t, `---
links:
  - url: https://go.dev
    title: Go
    description: The Go website
  - url: https://pkg.go.dev
    title: Packages
`)

	f, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(f.Links) != 2 {
		t.Fatalf("Load() returned %d links, want 2", len(f.Links))
	}
	if f.Links[0].Description == nil || *f.Links[0].Description != "The Go website" {
		t.Errorf("first description = %v, want The Go website", f.Links[0].Description)
	}
	if f.Links[1].Description != nil {
		t.Errorf("second description = %q, want absent", *f.Links[1].Description)
	}
	if f.Links[1].Title == nil || *f.Links[1].Title != "Packages" {
		t.Errorf("second title = %v, want Packages", f.Links[1].Title)
	}
}

func TestLoaderLoadWithTemplateVariables(t *testing.T) {
	t.Setenv("SEED_DOCS_HOST", "docs.example.com")

	path := writeSeed(t, `links:
  - url: https://{{SEED_DOCS_HOST}}/start
    title: Docs
`)

	f, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := f.Links[0].URL; got != "https://docs.example.com/start" {
		t.Errorf("URL = %q, want https://docs.example.com/start", got)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	_, err := NewLoader("/nonexistent/path/seed.yaml").Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := writeSeed(t, "links: [url: {")
	_, err := NewLoader(path).Load()
	if err == nil {
		t.Error("Load() with invalid yaml should return error")
	}
}

func TestExpandTemplateVariables(t *testing.T) {
	env := map[string]string{"HOST": "example.com"}
	lookup := func(k string) string { return env[k] }

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single variable", input: "url: https://{{HOST}}", expected: "url: https://example.com"},
		{name: "spaces inside braces", input: "url: {{ HOST }}", expected: "url: example.com"},
		{name: "unset variable", input: "url: {{MISSING}}", expected: "url: "},
		{name: "no variables", input: "plain text", expected: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandTemplateVariables([]byte(tt.input), lookup)
			if string(result) != tt.expected {
				t.Errorf("expandTemplateVariables() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}
