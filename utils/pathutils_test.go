package utils

import (
	"path/filepath"
	"testing"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"normal/path/file.txt", "normal/path/file.txt"},
		{"../../etc/passwd", "etc/passwd"},
		{"/abs/path", "abs/path"},
		{"path/../with/traversal", "with/traversal"},
		{"C:/Users/test", "Users/test"},
		{`Game\bin\game.exe`, "Game/bin/game.exe"},
		{`..\..\evil.dll`, "evil.dll"},
		{"..", "."},
		{"./././", "."},
		{"", "."},
	}

	for _, tt := range tests {
		result := filepath.ToSlash(SanitizePath(tt.input))
		if result != tt.expected {
			t.Errorf("SanitizePath(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hollow Knight", "Hollow Knight"},
		{"Baldur's Gate 3: Deluxe", "Baldur's Gate 3_ Deluxe"},
		{"a/b\\c", "a_b_c"},
		{" ..trailing.. ", "trailing"},
		{"", "game"},
		{"???", "___"},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.input); got != tt.expected {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
