package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[source]") {
		t.Fatalf("sample config missing source section:\n%s", data)
	}
	if !strings.Contains(out.String(), target) {
		t.Fatalf("output should mention target path, got %q", out.String())
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for existing config without --overwrite")
	}
}

func writeTestConfig(t *testing.T) (root, target string) {
	t.Helper()
	root = t.TempDir()
	target = filepath.Join(root, "config.toml")
	content := strings.Join([]string{
		"[source]",
		`url = "http://provider.example/playlist.m3u"`,
		"",
		"[library]",
		`movies_dir = "` + filepath.Join(root, "movies") + `"`,
		`series_dir = "` + filepath.Join(root, "series") + `"`,
		`livetv_dir = "` + filepath.Join(root, "livetv") + `"`,
		"",
		"[state]",
		`dir = "` + filepath.Join(root, "state") + `"`,
	}, "\n") + "\n"
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return root, target
}

func TestConfigValidateReportsValid(t *testing.T) {
	_, target := writeTestConfig(t)

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", target, "config", "validate"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config validate: %v\noutput: %s", err, out.String())
	}
	if !strings.Contains(out.String(), "Configuration valid") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	_, target := writeTestConfig(t)

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", target, "config", "show"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show: %v\noutput: %s", err, out.String())
	}
	got := out.String()
	if !strings.Contains(got, "http://provider.example/playlist.m3u") {
		t.Fatalf("output missing source url:\n%s", got)
	}
	if !strings.Contains(got, target) {
		t.Fatalf("output missing config path header:\n%s", got)
	}
}
