package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go-game-library/constants"
	"go-game-library/utils/fileio"

	"github.com/xeipuuv/gojsonschema"
)

var (
	// ErrPersist is returned when the document could not be written to disk.
	ErrPersist = errors.New("failed to persist store")
	// ErrCorrupt is returned when stored JSON does not have the expected shape.
	ErrCorrupt = errors.New("store data is corrupt")
)

// Logger is the subset of *zap.SugaredLogger the store uses.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// Options configures a Store.
type Options struct {
	Dir      string         // defaults to DefaultDir()
	Name     string         // file name without the .json extension
	Defaults map[string]any // document used when the file is missing or corrupt
	Schema   []byte         // optional JSON schema the whole document must satisfy
	Logger   Logger
}

// Store is a key-value document persisted as a single JSON file.
// Every Set rewrites the whole file before returning.
type Store struct {
	path     string
	defaults map[string]json.RawMessage
	schema   *gojsonschema.Schema
	logger   Logger

	mu       sync.RWMutex
	data     map[string]json.RawMessage
	lastSeen []byte // file content as last read or written by this store
}

// DefaultDir returns the per-user application data directory.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to executable dir if no config dir is available
		exePath, err := os.Executable()
		if err != nil {
			exePath = "."
		}
		dir = filepath.Dir(exePath)
	}
	return filepath.Join(dir, constants.AppName)
}

// New resolves the backing file and loads it, falling back to the defaults
// when the file is missing, unparseable or fails the schema. It only fails
// for invalid options.
func New(opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return nil, errors.New("store name is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("store logger is required")
	}
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir()
	}

	s := &Store{
		path:     filepath.Join(dir, opts.Name+".json"),
		defaults: make(map[string]json.RawMessage, len(opts.Defaults)),
		logger:   opts.Logger,
	}

	for key, val := range opts.Defaults {
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("failed to encode default for %q: %w", key, err)
		}
		s.defaults[key] = raw
	}

	if len(opts.Schema) > 0 {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(opts.Schema))
		if err != nil {
			return nil, fmt.Errorf("invalid store schema: %w", err)
		}
		s.schema = schema
	}

	s.load()
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the raw JSON stored under key, or nil if the key was never set.
func (s *Store) Get(key string) json.RawMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[key]
	if !ok {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

// Decode unmarshals the value under key into out and reports whether the key existed.
func (s *Store) Decode(key string, out any) (bool, error) {
	raw := s.Get(key)
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// Set replaces the value under key and writes the whole document to disk.
// If the write fails the previous in-memory value is restored, so memory
// and disk stay in agreement.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = raw

	if err := s.flush(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		s.logger.Errorf("Store: write of %q to %s failed, change rolled back: %v", key, s.path, err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Reload re-reads the backing file and reports whether the in-memory
// document changed. Invalid content is rejected and memory is kept.
func (s *Store) Reload() (bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, fmt.Errorf("failed to read store file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bytes.Equal(data, s.lastSeen) {
		return false, nil
	}
	doc, err := s.parse(data)
	if err != nil {
		return false, err
	}
	s.data = doc
	s.lastSeen = data
	return true, nil
}

// load reads the file, or installs and persists the defaults.
func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		doc, perr := s.parse(data)
		if perr == nil {
			s.data = doc
			s.lastSeen = data
			return
		}
		s.logger.Warnf("Store: %s is unusable, restoring defaults: %v", s.path, perr)
		s.moveAside()
	case os.IsNotExist(err):
		s.logger.Infof("Store: %s not found, creating default", s.path)
	default:
		s.logger.Warnf("Store: failed to read %s, restoring defaults: %v", s.path, err)
		s.moveAside()
	}

	s.data = s.defaultDocument()
	// One attempt only; the defaults stay in memory if it fails.
	if err := s.flush(); err != nil {
		s.logger.Errorf("Store: failed to write default document to %s: %v", s.path, err)
	}
}

// parse decodes a whole document and checks it against the schema.
func (s *Store) parse(data []byte) (map[string]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrCorrupt)
	}
	if s.schema == nil {
		return doc, nil
	}

	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !res.Valid() {
		var msgs []string
		for i, e := range res.Errors() {
			if i >= 5 {
				break
			}
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, strings.Join(msgs, "; "))
	}
	return doc, nil
}

// flush writes the in-memory document. Callers hold s.mu.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := fileio.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return err
	}
	s.lastSeen = data
	return nil
}

// moveAside keeps an unusable file as <name>.json.corrupt instead of overwriting it.
func (s *Store) moveAside() {
	backup := s.path + ".corrupt"
	fileio.Remove(backup, s.logger.Warnf)
	if err := os.Rename(s.path, backup); err != nil {
		s.logger.Warnf("Store: failed to back up %s: %v", s.path, err)
		return
	}
	s.logger.Infof("Store: previous file kept at %s", backup)
}

func (s *Store) defaultDocument() map[string]json.RawMessage {
	doc := make(map[string]json.RawMessage, len(s.defaults))
	for k, v := range s.defaults {
		doc[k] = v
	}
	return doc
}
