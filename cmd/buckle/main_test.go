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

	"github.com/odvcencio/buckle/pkg/config"
	bucklerrors "github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/logging"
	"github.com/odvcencio/buckle/pkg/ui/compositor"
	"github.com/odvcencio/buckle/pkg/ui/theme"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	_ = w.Close()
	os.Stdout = old
	out, _ := io.ReadAll(r)
	return string(out)
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	fn()
	_ = w.Close()
	os.Stderr = old
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestDispatchSubcommandHelpAndVersion(t *testing.T) {
	helpOut := captureStdout(t, func() {
		handled, code := dispatchSubcommand([]string{"--help"})
		if !handled || code != 0 {
			t.Fatalf("help handled=%v code=%d", handled, code)
		}
	})
	if !strings.Contains(helpOut, "constraint layout engine") {
		t.Fatalf("unexpected help output: %q", helpOut)
	}
	if !strings.Contains(helpOut, "snapshot [-width N -height N]") {
		t.Fatalf("expected help to include snapshot command, got: %q", helpOut)
	}

	versionOut := captureStdout(t, func() {
		handled, code := dispatchSubcommand([]string{"version"})
		if !handled || code != 0 {
			t.Fatalf("version handled=%v code=%d", handled, code)
		}
	})
	if !strings.HasPrefix(versionOut, "buckle "+version) {
		t.Fatalf("unexpected version output: %q", versionOut)
	}
}

func TestDispatchSubcommandUnknownCommandHandled(t *testing.T) {
	var handled bool
	var exitCode int
	errOut := captureStderr(t, func() {
		handled, exitCode = dispatchSubcommand([]string{"nope"})
	})
	if !handled || exitCode != exitUsage {
		t.Fatalf("handled=%v exitCode=%d want true,%d", handled, exitCode, exitUsage)
	}
	if !strings.Contains(errOut, "unknown command") {
		t.Fatalf("expected unknown command message, got %q", errOut)
	}
}

func TestDispatchSubcommandFlagsFallThroughToDemo(t *testing.T) {
	for _, args := range [][]string{nil, {"-theme", "x.yaml"}, {"--config=x"}} {
		if handled, _ := dispatchSubcommand(args); handled {
			t.Fatalf("args %q should fall through to the demo", args)
		}
	}
}

func TestRunCommandUsesExitCodeOverrides(t *testing.T) {
	errOut := captureStderr(t, func() {
		code := runCommand(func(_ []string) error {
			return withExitCode(errors.New("bad config"), exitConfig)
		}, nil)
		if code != exitConfig {
			t.Fatalf("exitCode=%d want %d", code, exitConfig)
		}
	})
	if !strings.Contains(errOut, "bad config") {
		t.Fatalf("expected error output, got %q", errOut)
	}
}

func TestRunCommandPrintsHints(t *testing.T) {
	errOut := captureStderr(t, func() {
		code := runCommand(func(_ []string) error {
			return bucklerrors.New(bucklerrors.ErrCodeConfigInvalid, "render.corners must be square or rounded").
				WithRemediation("set render.corners to rounded")
		}, nil)
		if code != exitConfig {
			t.Fatalf("exitCode=%d want %d", code, exitConfig)
		}
	})
	if !strings.Contains(errOut, "  hint: set render.corners to rounded") {
		t.Fatalf("expected hint line, got %q", errOut)
	}
}

func TestExitCodeForCodedErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("plain"), exitRuntime},
		{bucklerrors.New(bucklerrors.ErrCodeConfigInvalid, "bad"), exitConfig},
		{bucklerrors.New(bucklerrors.ErrCodeThemeParse, "bad"), exitConfig},
		{bucklerrors.New(bucklerrors.ErrCodeBackendInit, "no tty"), exitBackend},
		{withExitCode(bucklerrors.New(bucklerrors.ErrCodeBackendInit, "no tty"), exitUsage), exitUsage},
	}
	for _, tt := range tests {
		if got := exitCodeForError(tt.err); got != tt.want {
			t.Fatalf("exitCodeForError(%v)=%d want %d", tt.err, got, tt.want)
		}
	}
}

func TestConfigCheckReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("render:\n  corners: bevelled\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	err := runConfigCommand([]string{"check", "-config", path})
	if err == nil {
		t.Fatal("expected invalid config error")
	}
	if code := exitCodeForError(err); code != exitConfig {
		t.Fatalf("exitCode=%d want %d", code, exitConfig)
	}
	if err := runConfigCommand(nil); exitCodeForError(err) != exitUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestWriteSnapshotPlain(t *testing.T) {
	var out bytes.Buffer
	opts := snapshotOptions{width: 60, height: 16, lines: 200, color: "never"}
	if err := writeSnapshot(context.Background(), &out, config.DefaultConfig(), theme.DefaultTheme(), opts); err != nil {
		t.Fatalf("writeSnapshot: %v", err)
	}

	got := strings.TrimSuffix(out.String(), "\n")
	lines := strings.Split(got, "\n")
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[15], "┘") {
		t.Fatalf("expected a bordered frame:\n%s", got)
	}
	for _, want := range []string{"buckle", "row 1/200", " 0000  row 0", "pin board", "theme dusk", "top-left", "bottom-right"} {
		if !strings.Contains(got, want) {
			t.Fatalf("snapshot missing %q:\n%s", want, got)
		}
	}

	frame := renderDemo(config.DefaultConfig(), theme.DefaultTheme(), opts)
	if diff := compositor.FrameDiff(frame.String(), got); diff != "" {
		t.Fatalf("plain output differs from the rendered frame:\n%s", diff)
	}
}

func TestWriteSnapshotScrolled(t *testing.T) {
	var out bytes.Buffer
	opts := snapshotOptions{width: 60, height: 16, lines: 200, scroll: 42, color: "never"}
	if err := writeSnapshot(context.Background(), &out, config.DefaultConfig(), theme.DefaultTheme(), opts); err != nil {
		t.Fatalf("writeSnapshot: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, " 0042  row 42") || strings.Contains(got, " 0041  row 41") {
		t.Fatalf("expected the list to start at row 42:\n%s", got)
	}
	if !strings.Contains(got, "row 43/200") {
		t.Fatalf("expected header position:\n%s", got)
	}
}

func TestWriteSnapshotStyled(t *testing.T) {
	var out bytes.Buffer
	var logs bytes.Buffer
	opts := snapshotOptions{
		width: 40, height: 12, lines: 20, color: "always",
		logger: logging.NewWriterLogger(&logs, "snapshot"),
	}
	if err := writeSnapshot(context.Background(), &out, config.DefaultConfig(), theme.DefaultTheme(), opts); err != nil {
		t.Fatalf("writeSnapshot: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, compositor.ANSIReset+compositor.ANSIClearScreen) {
		t.Fatalf("expected a cleared screen first, got %q", got[:min(len(got), 20)])
	}
	if !strings.Contains(got, "buckle") || !strings.Contains(got, compositor.ANSIReset) {
		t.Fatalf("expected styled frame, got %q", got)
	}
	if !strings.HasSuffix(got, compositor.CursorTo(0, 12)+"\n") {
		t.Fatalf("expected cursor parked below the frame, got %q", got[max(0, len(got)-20):])
	}
}

func TestWriteSnapshotRejectsEmptyFrame(t *testing.T) {
	err := writeSnapshot(context.Background(), io.Discard, config.DefaultConfig(), theme.DefaultTheme(), snapshotOptions{width: 0, height: 5})
	if err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestPrintSessionEventsUsesNewestSession(t *testing.T) {
	dir := t.TempDir()
	for i, id := range []string{"01HZZZZZZZZZZZZZZZZZZZZZZ0", "01HZZZZZZZZZZZZZZZZZZZZZZ1"} {
		logger, err := logging.NewLogger(dir, id)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		_ = logger.Info(logging.CategoryApp, "start", "frame loop started", map[string]any{"run": i, "width": 80})
		_ = logger.Warn(logging.CategoryCommit, "frame_invalid", "frame rejected", nil)
		_ = logger.Close()
	}

	var out bytes.Buffer
	if err := printSessionEvents(&out, dir, "", 10); err != nil {
		t.Fatalf("printSessionEvents: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "session 01HZZZZZZZZZZZZZZZZZZZZZZ1 (2 events)") {
		t.Fatalf("expected newest session, got %q", got)
	}
	if !strings.Contains(got, "run=1 width=80") || !strings.Contains(got, "frame_invalid") {
		t.Fatalf("unexpected events output: %q", got)
	}

	out.Reset()
	if err := printSessionEvents(&out, dir, "01HZZZZZZZZZZZZZZZZZZZZZZ0", 1); err != nil {
		t.Fatalf("printSessionEvents: %v", err)
	}
	if !strings.Contains(out.String(), "(1 events)") {
		t.Fatalf("expected count limit, got %q", out.String())
	}

	if err := printSessionEvents(&out, t.TempDir(), "", 5); err == nil {
		t.Fatal("expected error for empty log directory")
	}
}
