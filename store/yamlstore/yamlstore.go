// SPDX-License-Identifier: MIT

// Package yamlstore keeps a transit network in a single YAML document:
//
//	stops:
//	  - {id: s1, name: Plaza, category: Red}
//	routes:
//	  - {id: r1, name: R1, origin: s1, destination: s2, distance: 2, time: 4, cost: 1}
//
// Save replaces the file atomically (temp file in the same directory, then
// rename). A missing file loads as an empty network.
package yamlstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transit/network"
	"github.com/katalvlaran/transit/store"
)

// ErrBlankPath is returned by New for an empty path.
var ErrBlankPath = errors.New("yamlstore: path is blank")

// Store reads and writes one YAML file.
type Store struct {
	path string
}

// New returns a store bound to path. The file need not exist yet.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, ErrBlankPath
	}

	return &Store{path: path}, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load decodes the file. Record-level problems are left to store.Build.
func (s *Store) Load(ctx context.Context) (*store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &store.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("yamlstore: read %s: %w", s.path, err)
	}

	return Decode(raw)
}

// Save writes the baseline state of g.
func (s *Store) Save(ctx context.Context, g *network.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := Encode(store.FromGraph(g))
	if err != nil {
		return err
	}

	return writeAtomic(s.path, raw)
}

// Decode parses a YAML snapshot.
func Decode(raw []byte) (*store.Snapshot, error) {
	var snap store.Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("yamlstore: decode: %w", err)
	}

	return &snap, nil
}

// Encode renders a snapshot as YAML with two-space indentation.
func Encode(snap *store.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("yamlstore: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yamlstore: encode: %w", err)
	}

	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("yamlstore: create temp: %w", err)
	}
	name := tmp.Name()
	defer os.Remove(name) // no-op after a successful rename

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("yamlstore: write %s: %w", name, err)
	}
	if err = os.Rename(name, path); err != nil {
		return fmt.Errorf("yamlstore: rename to %s: %w", path, err)
	}

	return nil
}
