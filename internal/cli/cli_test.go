package cli

import (
	"io"
	"path/filepath"
	"testing"
)

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	want := filepath.Join("/tmp/xdg-cache", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	want := filepath.Join("/home/tester", ".cache", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", algoHeldKarp, false},
		{"held-karp", algoHeldKarp, false},
		{"hk", algoHeldKarp, false},
		{"exact", algoHeldKarp, false},
		{"nearest-neighbor", algoNearestNeighbor, false},
		{"nn", algoNearestNeighbor, false},
		{"greedy", algoNearestNeighbor, false},
		{"annealing", "", true},
	}

	for _, tt := range tests {
		got, err := parseAlgorithm(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAlgorithm(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAlgorithm(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseAlgorithm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"solve":      false,
		"demo":       false,
		"render":     false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
