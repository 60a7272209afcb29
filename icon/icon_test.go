package icon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Smallest byte sequence mimetype recognises as PNG.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExtract_SiblingImage(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "Game.exe")
	writeFile(t, exe, []byte("MZ"))
	writeFile(t, filepath.Join(dir, "game.png"), pngBytes)

	uri, err := Extract(exe)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("Unexpected data URI %q", uri)
	}
}

func TestExtract_FallsBackToIconFile(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "run.sh")
	writeFile(t, exe, []byte("#!/bin/sh"))
	writeFile(t, filepath.Join(dir, "icon.png"), pngBytes)

	if _, err := Extract(exe); err != nil {
		t.Errorf("Expected icon.png to be used, got %v", err)
	}
}

func TestExtract_RejectsNonImageContent(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "game.exe")
	writeFile(t, exe, []byte("MZ"))
	// Right extension, wrong content.
	writeFile(t, filepath.Join(dir, "game.png"), []byte("just some text"))

	_, err := Extract(exe)
	if !errors.Is(err, ErrNoIcon) {
		t.Errorf("Expected ErrNoIcon, got %v", err)
	}
}

func TestExtract_NoCandidates(t *testing.T) {
	if _, err := Extract(""); !errors.Is(err, ErrNoIcon) {
		t.Errorf("Expected ErrNoIcon for empty path, got %v", err)
	}
	if _, err := Extract(filepath.Join(t.TempDir(), "missing.exe")); !errors.Is(err, ErrNoIcon) {
		t.Errorf("Expected ErrNoIcon, got %v", err)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := FromFile(dir); err == nil {
		t.Error("Expected error for a directory")
	}

	p := filepath.Join(dir, "cover.bin")
	writeFile(t, p, pngBytes)
	uri, err := FromFile(p)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("MIME should come from content, got %q", uri)
	}
}
