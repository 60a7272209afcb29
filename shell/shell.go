package shell

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"go-game-library/constants"
)

// Logger defines logging for the launcher.
type Logger interface {
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// CommandFunc builds a command; exec.Command outside of tests.
type CommandFunc func(name string, args ...string) *exec.Cmd

// Launcher starts programs and reveals files through the OS shell.
type Launcher struct {
	logger  Logger
	goos    string
	command CommandFunc

	wg sync.WaitGroup
}

// New creates a Launcher for the running OS.
func New(logger Logger) *Launcher {
	return &Launcher{
		logger:  logger,
		goos:    runtime.GOOS,
		command: exec.Command,
	}
}

// OpenCommand returns the command that opens path with its default handler.
func OpenCommand(goos, path string) (string, []string) {
	switch goos {
	case constants.OSWindows:
		// The empty argument is the window title start expects before a quoted path.
		return "cmd", []string{"/c", "start", "", path}
	case constants.OSDarwin:
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// RevealCommand returns the command that shows path in the file manager.
func RevealCommand(goos, path string) (string, []string) {
	switch goos {
	case constants.OSWindows:
		return "explorer", []string{"/select," + path}
	case constants.OSDarwin:
		return "open", []string{"-R", path}
	default:
		// xdg-open cannot select a file, so open the folder holding it.
		return "xdg-open", []string{filepath.Dir(path)}
	}
}

// Start opens path with the OS shell and falls back to executing it
// directly, with its directory as the working directory, when the shell
// cannot open it. Start returns an error only when neither could be started.
//
// The shell opener hands the program off and exits, so a program it opened
// cannot be followed. onExit is called only for a directly executed process,
// once that process ends, or with the error when the fallback fails.
func (l *Launcher) Start(path string, onExit func(error)) error {
	name, args := OpenCommand(l.goos, path)
	opener := l.command(name, args...)
	if err := opener.Start(); err != nil {
		l.logger.Warnf("Shell: %s could not open %s, executing directly: %v", name, path, err)
		direct, derr := l.startDirect(path)
		if derr != nil {
			return derr
		}
		l.wait(direct, path, onExit)
		return nil
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		err := opener.Wait()
		if err == nil {
			l.logger.Infof("Shell: %s opened %s", name, path)
			return
		}
		l.logger.Warnf("Shell: %s failed for %s, executing directly: %v", name, path, err)
		direct, derr := l.startDirect(path)
		if derr != nil {
			l.logger.Errorf("Shell: launch of %s failed: %v", path, derr)
			report(onExit, derr)
			return
		}
		err = direct.Wait()
		if err != nil {
			l.logger.Warnf("Shell: %s exited with error: %v", path, err)
		}
		report(onExit, err)
	}()
	return nil
}

// Reveal shows path in the OS file manager. Failures are only logged.
func (l *Launcher) Reveal(path string) {
	name, args := RevealCommand(l.goos, path)
	cmd := l.command(name, args...)
	if err := cmd.Start(); err != nil {
		l.logger.Errorf("Shell: failed to reveal %s: %v", path, err)
		return
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		// explorer exits non-zero even on success.
		_ = cmd.Wait()
	}()
}

// Wait blocks until every process started by the launcher has exited. For a
// program handed to the shell opener that is the opener, not the program.
func (l *Launcher) Wait() {
	l.wg.Wait()
}

func (l *Launcher) startDirect(path string) (*exec.Cmd, error) {
	cmd := l.command(path)
	cmd.Dir = filepath.Dir(path)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", path, err)
	}
	l.logger.Infof("Shell: started %s (pid %d)", path, cmd.Process.Pid)
	return cmd, nil
}

func (l *Launcher) wait(cmd *exec.Cmd, path string, onExit func(error)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		err := cmd.Wait()
		if err != nil {
			l.logger.Warnf("Shell: %s exited with error: %v", path, err)
		}
		report(onExit, err)
	}()
}

func report(onExit func(error), err error) {
	if onExit != nil {
		onExit(err)
	}
}
