package shell

import (
	"errors"
	"os/exec"
	"reflect"
	"runtime"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"windows", "cmd", []string{"/c", "start", "", `C:\games\foo.exe`}},
		{"darwin", "open", []string{`C:\games\foo.exe`}},
		{"linux", "xdg-open", []string{`C:\games\foo.exe`}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := OpenCommand(tt.goos, `C:\games\foo.exe`)
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("OpenCommand() = %s %v, want %s %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestRevealCommand(t *testing.T) {
	if name, args := RevealCommand("windows", `C:\g\a.exe`); name != "explorer" || args[0] != `/select,C:\g\a.exe` {
		t.Errorf("windows: got %s %v", name, args)
	}
	if name, args := RevealCommand("darwin", "/g/a.app"); name != "open" || !reflect.DeepEqual(args, []string{"-R", "/g/a.app"}) {
		t.Errorf("darwin: got %s %v", name, args)
	}
	if name, args := RevealCommand("linux", "/g/a/run.sh"); name != "xdg-open" || args[0] != "/g/a" {
		t.Errorf("linux: got %s %v", name, args)
	}
}

// fakeCommands records requested commands and substitutes harmless ones.
type fakeCommands struct {
	mu     sync.Mutex
	calls  []string
	result map[string]string // requested name -> shell snippet to run instead
}

func (f *fakeCommands) command(name string, args ...string) *exec.Cmd {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	script, ok := f.result[name]
	f.mu.Unlock()
	if !ok {
		return exec.Command("/nonexistent/binary")
	}
	return exec.Command("sh", "-c", script)
}

func newTestLauncher(t *testing.T, f *fakeCommands) *Launcher {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	return &Launcher{logger: zap.NewNop().Sugar(), goos: "linux", command: f.command}
}

func waitExit(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for exit")
		return nil
	}
}

func TestStart_ShellOpenIsNotTracked(t *testing.T) {
	f := &fakeCommands{result: map[string]string{"xdg-open": "exit 0"}}
	l := newTestLauncher(t, f)

	exited := make(chan error, 1)
	if err := l.Start("/games/foo", func(err error) { exited <- err }); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	l.Wait()
	select {
	case err := <-exited:
		t.Errorf("Exit of the opener must not be reported as the game exiting, got %v", err)
	default:
	}
	if !reflect.DeepEqual(f.calls, []string{"xdg-open"}) {
		t.Errorf("Unexpected commands %v", f.calls)
	}
}

func TestStart_DirectExecReportsGameExit(t *testing.T) {
	f := &fakeCommands{result: map[string]string{
		"xdg-open":   "exit 3",
		"/games/foo": "sleep 0.2; exit 4",
	}}
	l := newTestLauncher(t, f)

	exited := make(chan error, 1)
	if err := l.Start("/games/foo", func(err error) { exited <- err }); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	var exitErr *exec.ExitError
	if err := waitExit(t, exited); !errors.As(err, &exitErr) || exitErr.ExitCode() != 4 {
		t.Errorf("Expected the game's own exit code 4, got %v", err)
	}
	l.Wait()
}

func TestStart_FallsBackToDirectExec(t *testing.T) {
	f := &fakeCommands{result: map[string]string{
		"xdg-open":   "exit 3",
		"/games/foo": "exit 0",
	}}
	l := newTestLauncher(t, f)

	exited := make(chan error, 1)
	if err := l.Start("/games/foo", func(err error) { exited <- err }); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := waitExit(t, exited); err != nil {
		t.Errorf("Expected fallback to succeed, got %v", err)
	}
	l.Wait()
	if !reflect.DeepEqual(f.calls, []string{"xdg-open", "/games/foo"}) {
		t.Errorf("Unexpected commands %v", f.calls)
	}
}

func TestStart_NothingStarts(t *testing.T) {
	f := &fakeCommands{result: map[string]string{}}
	l := newTestLauncher(t, f)

	if err := l.Start("/games/foo", nil); err == nil {
		t.Error("Expected an error when neither command can start")
	}
}

func TestStart_FallbackFailsReportsError(t *testing.T) {
	f := &fakeCommands{result: map[string]string{"xdg-open": "exit 1"}}
	l := newTestLauncher(t, f)

	exited := make(chan error, 1)
	if err := l.Start("/games/foo", func(err error) { exited <- err }); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := waitExit(t, exited); err == nil {
		t.Error("Expected the failed fallback to be reported")
	}
}

func TestReveal(t *testing.T) {
	f := &fakeCommands{result: map[string]string{"xdg-open": "exit 0"}}
	l := newTestLauncher(t, f)

	l.Reveal("/games/foo/run.sh")
	l.Wait()
	if len(f.calls) != 1 || f.calls[0] != "xdg-open" {
		t.Errorf("Unexpected commands %v", f.calls)
	}

	// Failure to start is swallowed.
	l.command = (&fakeCommands{}).command
	l.Reveal("/games/foo/run.sh")
}
