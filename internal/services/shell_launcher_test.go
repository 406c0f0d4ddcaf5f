package services

import (
	stderrors "errors"
	"os/exec"
	"strings"
	"sync"
	"testing"

	"exportdesk/internal/infrastructure/errors"
	"exportdesk/internal/platform"
	"exportdesk/internal/testutils"
)

type fakeLauncher struct {
	mu     sync.Mutex
	paths  []string
	urls   []string
	openEr error
}

func (f *fakeLauncher) OpenPath(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return f.openEr
}

func (f *fakeLauncher) OpenURL(url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return f.openEr
}

func (f *fakeLauncher) Name() string { return "fake" }

func TestShellLauncher_DelegatesToPlatform(t *testing.T) {
	fake := &fakeLauncher{}
	rec := &testutils.RecordingLogger{}
	launcher := NewShellLauncher(fake, rec)

	if err := launcher.OpenPath("/home/me/exports"); err != nil {
		t.Fatalf("OpenPath() error = %v", err)
	}
	if err := launcher.OpenURL("https://example.com/admin"); err != nil {
		t.Fatalf("OpenURL() error = %v", err)
	}

	if len(fake.paths) != 1 || fake.paths[0] != "/home/me/exports" {
		t.Errorf("paths = %v", fake.paths)
	}
	if len(fake.urls) != 1 || fake.urls[0] != "https://example.com/admin" {
		t.Errorf("urls = %v", fake.urls)
	}
	if launcher.Platform() != "fake" {
		t.Errorf("Platform() = %q", launcher.Platform())
	}

	call, ok := rec.Find("INFO", "Command completed: open_url")
	if !ok {
		t.Fatal("expected completion log")
	}
	if fields := testutils.FieldsToMap(t, call.Fields); fields["url"] != "https://example.com/admin" || fields["platform"] != "fake" {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestShellLauncher_NoopPlatformSucceeds(t *testing.T) {
	launcher := NewShellLauncher(platform.NewNoopLauncher(), &testutils.RecordingLogger{})

	if err := launcher.OpenURL("https://example.com"); err != nil {
		t.Errorf("OpenURL() error = %v", err)
	}
	if err := launcher.OpenPath("/does/not/matter"); err != nil {
		t.Errorf("OpenPath() error = %v", err)
	}
}

func TestShellLauncher_SpawnFailure(t *testing.T) {
	fake := &fakeLauncher{openEr: &platform.LaunchError{
		Program: "xdg-open",
		Target:  "https://example.com",
		Err:     stderrors.New(`exec: "xdg-open": executable file not found in $PATH`),
	}}
	rec := &testutils.RecordingLogger{}

	err := NewShellLauncher(fake, rec).OpenURL("https://example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsSpawn(err) {
		t.Errorf("expected spawn error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to open https://example.com: ") {
		t.Errorf("unexpected message %q", err.Error())
	}

	call, ok := rec.Find("ERROR", "Command failed")
	if !ok {
		t.Fatal("expected failure log")
	}
	fields := testutils.FieldsToMap(t, call.Fields)
	if fields["program"] != "xdg-open" || fields["platform"] != "fake" {
		t.Errorf("unexpected fields %v", fields)
	}
	if details, _ := fields["details"].(string); !strings.Contains(details, "code=SPAWN") || !strings.Contains(details, "program=xdg-open") {
		t.Errorf("details = %q", fields["details"])
	}
}

func TestShellLauncher_EmptyTarget(t *testing.T) {
	fake := &fakeLauncher{}
	launcher := NewShellLauncher(fake, &testutils.RecordingLogger{})

	if err := launcher.OpenPath(""); !errors.IsValidation(err) {
		t.Errorf("OpenPath(\"\") = %v, want validation error", err)
	}
	if err := launcher.OpenURL(" "); !errors.IsValidation(err) {
		t.Errorf("OpenURL(\" \") = %v, want validation error", err)
	}
	if len(fake.paths)+len(fake.urls) != 0 {
		t.Error("launcher should not be called for empty targets")
	}
}

func TestShellLauncher_PlatformLauncherWithFakeSpawn(t *testing.T) {
	var spawned [][]string
	start := func(cmd *exec.Cmd, onExit platform.ExitFunc) error {
		spawned = append(spawned, cmd.Args)
		return nil
	}

	launcher := NewShellLauncher(platform.NewLauncher(platform.WithStarter(start)), &testutils.RecordingLogger{})
	if err := launcher.OpenURL("https://example.com"); err != nil {
		t.Fatalf("OpenURL() error = %v", err)
	}

	// unsupported platforms use the no-op launcher and spawn nothing
	if launcher.Platform() == "noop" {
		if len(spawned) != 0 {
			t.Errorf("noop launcher spawned %v", spawned)
		}
		return
	}
	if len(spawned) != 1 || spawned[0][len(spawned[0])-1] != "https://example.com" {
		t.Errorf("spawned = %v", spawned)
	}
}

func TestNewShellLauncher_DefaultsToPlatform(t *testing.T) {
	launcher := NewShellLauncher(nil, nil)
	if launcher.Platform() == "" {
		t.Error("expected a platform launcher")
	}
}

func TestExitLogger(t *testing.T) {
	rec := &testutils.RecordingLogger{}
	ExitLogger(rec)("explorer", stderrors.New("exit status 1"))

	call, ok := rec.Find("DEBUG", "exited with error")
	if !ok {
		t.Fatal("expected debug log")
	}
	if fields := testutils.FieldsToMap(t, call.Fields); fields["program"] != "explorer" {
		t.Errorf("unexpected fields %v", fields)
	}
}
