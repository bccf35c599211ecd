package config

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "yaml",
			file:    "logo.yaml",
			content: "Format: yaml\nLogLevel: DEBUG\n",
			want:    Config{Format: "yaml", LogLevel: "DEBUG"},
		},
		{
			name:    "yaml keeps defaults",
			file:    "logo.yml",
			content: "Trace: true\n",
			want:    Config{Format: "sexpr", LogLevel: "WARNING", Trace: true},
		},
		{
			name:    "toml",
			file:    "logo.toml",
			content: "format = \"repr\"\nlog_level = \"INFO\"\ntrace = true\n",
			want:    Config{Format: "repr", LogLevel: "INFO", Trace: true},
		},
		{
			name:    "unknown format",
			file:    "logo.yaml",
			content: "Format: svg\n",
			wantErr: true,
		},
		{
			name:    "broken toml",
			file:    "logo.toml",
			content: "format = \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(write(t, tt.file, tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.yaml")
	cfg := Config{Format: "yaml", LogLevel: "TRACE", Trace: true}

	if err := cfg.Write(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}
