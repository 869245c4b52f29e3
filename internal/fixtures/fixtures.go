// Package fixtures holds recorded web-service responses, one file per function.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"moodle/internal/catalog"
	"moodle/internal/codec"
	"moodle/internal/mdlerrors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/golang/glog"
)

// Store is an in-memory set of recorded responses keyed by function name. YAML recordings are
// kept as JSON so they can be served as-is.
type Store struct {
	dir string

	fixturesLock *sync.RWMutex
	fixtures     map[string][]byte
}

// Load reads every *.json, *.yaml and *.yml file in dir. The base name of a file is the function it
// records. Every recording must decode as a response of that function or as a server exception.
func Load(dir string) (*Store, error) {
	s := &Store{
		dir:          dir,
		fixturesLock: &sync.RWMutex{},
		fixtures:     make(map[string][]byte),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the directory. On failure the previous fixtures are kept.
func (s *Store) Reload() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("error reading fixtures directory: %w", err)
	}

	loaded := make(map[string][]byte)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		name, body, err := readFixture(path)
		if errors.Is(err, mdlerrors.UnsupportedFormatError) {
			glog.V(1).Infof("skipping %s: %v", path, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("fixture %s: %w", path, err)
		}
		if _, dup := loaded[name]; dup {
			return fmt.Errorf("fixture %s: duplicate recording for %s", path, name)
		}
		loaded[name] = body
	}

	s.fixturesLock.Lock()
	s.fixtures = loaded
	s.fixturesLock.Unlock()

	log.Printf("✅ Loaded %d fixtures from %s\n", len(loaded), s.dir)
	return nil
}

func readFixture(path string) (string, []byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var raw interface{}
	switch ext {
	case ".json":
		raw, err = codec.ParseJSON(data)
	case ".yaml", ".yml":
		raw, err = codec.ParseYAML(data)
	default:
		return "", nil, fmt.Errorf("%w: %s", mdlerrors.UnsupportedFormatError, ext)
	}
	if err != nil {
		return "", nil, err
	}

	f, ok := catalog.Lookup(name)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", mdlerrors.UnknownFunctionError, name)
	}

	var exception *mdlerrors.Exception
	if _, err := f.DecodeValue(raw); err != nil && !errors.As(err, &exception) {
		return "", nil, err
	}

	body, err := json.Marshal(raw)
	if err != nil {
		return "", nil, err
	}
	return name, body, nil
}

// Get returns the recorded JSON response of function.
func (s *Store) Get(function string) ([]byte, error) {
	s.fixturesLock.RLock()
	defer s.fixturesLock.RUnlock()

	if body, ok := s.fixtures[function]; ok {
		return body, nil
	}
	return nil, fmt.Errorf("%w: %s", mdlerrors.FixtureNotFoundError, function)
}

// Functions lists the functions that have a recording, sorted by name.
func (s *Store) Functions() []string {
	s.fixturesLock.RLock()
	defer s.fixturesLock.RUnlock()

	names := make([]string, 0, len(s.fixtures))
	for name := range s.fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
