package settingsrv

import (
	"encoding/json"
	"errors"
	"testing"

	"go-game-library/constants"
	"go-game-library/library"
	"go-game-library/types"
)

// MockStore implements SettingsStore
type MockStore struct {
	Data     map[string]json.RawMessage
	SetError error
}

func (m *MockStore) Decode(key string, out any) (bool, error) {
	raw, ok := m.Data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *MockStore) Set(key string, value any) error {
	if m.SetError != nil {
		return m.SetError
	}
	raw, _ := json.Marshal(value)
	m.Data[key] = raw
	return nil
}

// MockUIProvider implements UIProvider
type MockUIProvider struct {
	SelectedFile string
	Error        error
	Title        string
	Filters      []string
}

func (m *MockUIProvider) OpenFileDialog(title string, filters []string) (string, error) {
	m.Title = title
	m.Filters = filters
	return m.SelectedFile, m.Error
}

func TestNew(t *testing.T) {
	st := &MockStore{}
	ui := &MockUIProvider{}
	s := New(st, ui)

	if s.store != st {
		t.Errorf("Expected store to be set")
	}
	if s.ui != ui {
		t.Errorf("Expected ui to be set")
	}
}

func TestGetSettings_Default(t *testing.T) {
	s := New(&MockStore{Data: map[string]json.RawMessage{}}, &MockUIProvider{})

	got, err := s.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.Theme != constants.DefaultTheme {
		t.Errorf("Expected %s, got %s", constants.DefaultTheme, got.Theme)
	}
}

func TestSetTheme(t *testing.T) {
	st := &MockStore{Data: map[string]json.RawMessage{}}
	s := New(st, &MockUIProvider{})

	got, err := s.SetTheme("light")
	if err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if got.Theme != "light" {
		t.Errorf("Expected light, got %s", got.Theme)
	}
	var stored types.Settings
	json.Unmarshal(st.Data[constants.KeySettings], &stored)
	if stored.Theme != "light" {
		t.Errorf("Theme not persisted, got %s", stored.Theme)
	}

	if _, err := s.SetTheme("  "); !errors.Is(err, library.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	st.SetError = errors.New("disk full")
	got, err = s.SetTheme("dark")
	if err == nil {
		t.Fatal("Expected error")
	}
	if got.Theme != "light" {
		t.Errorf("Expected previous settings on failure, got %s", got.Theme)
	}
}

func TestSelectGameExecutable(t *testing.T) {
	ui := &MockUIProvider{SelectedFile: `C:\Games\foo.exe`}
	s := New(&MockStore{}, ui)

	s.goos = constants.OSWindows
	got, err := s.SelectGameExecutable()
	if err != nil || got != `C:\Games\foo.exe` {
		t.Errorf("Unexpected result %q, %v", got, err)
	}
	if len(ui.Filters) != 1 || ui.Filters[0] != "*.exe" {
		t.Errorf("Expected *.exe filter on Windows, got %v", ui.Filters)
	}

	s.goos = constants.OSLinux
	s.SelectGameExecutable()
	if len(ui.Filters) != 0 {
		t.Errorf("Expected no filter on Linux, got %v", ui.Filters)
	}
}

func TestSelectImage(t *testing.T) {
	ui := &MockUIProvider{}
	s := New(&MockStore{}, ui)

	got, err := s.SelectImage()
	if err != nil || got != "" {
		t.Errorf("Cancel should return empty path and no error, got %q, %v", got, err)
	}
	if len(ui.Filters) != 1 || ui.Filters[0] != "*.jpg;*.jpeg;*.png;*.webp" {
		t.Errorf("Unexpected filters %v", ui.Filters)
	}
}

func TestSelectFile_Error(t *testing.T) {
	ui := &MockUIProvider{Error: errors.New("dialog failed")}
	s := New(&MockStore{}, ui)

	if _, err := s.SelectFile(); err == nil {
		t.Error("Expected dialog error to be returned")
	}
}
