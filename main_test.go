package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheikhrachel/sparse-gol/utils"
)

// runCmd executes the root command with args and returns stdout and stderr
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCmdOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"blinker keeps three cells", []string{"--pattern", "blinker", "--iterations", "4"}, "1 3\n2 3\n3 3\n4 3\n"},
		{"glider keeps five cells", []string{"--pattern", "glider", "--iterations", "2"}, "1 5\n2 5\n"},
		{"default seed first step", []string{"--iterations", "1"}, "1 6\n"},
		{"zero iterations prints nothing", []string{"--iterations", "0"}, ""},
		{"stop on stagnation", []string{"--pattern", "block", "--iterations", "10", "--stop-on-stagnation"}, "1 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, tt.args...)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRootCmdLogsToStderr(t *testing.T) {
	stdout, stderr, err := runCmd(t, "--pattern", "blinker", "--iterations", "2", "--log-level", "debug")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "1 3\n2 3\n" {
		t.Errorf("stdout = %q, logs leaked into output", stdout)
	}
	for _, want := range []string{"starting simulation", "generation advanced", "simulation finished"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestRootCmdConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("iterations: 3\npattern: block\n"), 0600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCmd(t, "--config", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "1 4\n2 4\n3 4\n" {
		t.Errorf("stdout = %q", stdout)
	}

	// Explicit flags win over the file
	stdout, _, err = runCmd(t, "--config", path, "--iterations", "1")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "1 4\n" {
		t.Errorf("stdout with override = %q", stdout)
	}
}

func TestRootCmdErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown pattern", []string{"--pattern", "spaceship"}, "unknown pattern"},
		{"negative iterations", []string{"--iterations", "-2"}, "iterations"},
		{"missing config", []string{"--config", "/does/not/exist.json"}, "[LoadConfig]"},
		{"positional args", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
			if stdout != "" {
				t.Errorf("expected no output, got %q", stdout)
			}
		})
	}
}

func TestPatternsCmd(t *testing.T) {
	stdout, _, err := runCmd(t, "patterns")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	for _, want := range []string{"blinker", "block", "glider", "r-pentomino", "(default)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("patterns output missing %q:\n%s", want, stdout)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(stdout, version) {
		t.Errorf("version output %q missing %q", stdout, version)
	}
}

func TestRunSimulationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	config := utils.DefaultConfig()
	if err := runSimulation(ctx, config, &out, utils.NewLogger("info", io.Discard)); err != nil {
		t.Fatalf("cancelled run returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("cancelled run wrote %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunSimulationWriteError(t *testing.T) {
	config := utils.DefaultConfig()
	config.Iterations = 10

	err := runSimulation(context.Background(), config, failingWriter{}, utils.NewLogger("info", io.Discard))
	if err == nil {
		t.Fatal("expected write error")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("unexpected error: %v", err)
	}
}
