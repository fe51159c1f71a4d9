// Package store is the JSON file backed record store for pessoas, planos and
// planos contratados.
//
// The whole database is held in memory and written back to disk after every
// mutation. A failed write is logged and the in-memory state stays authoritative.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrInvalidInput is returned when a mutation input fails validation.
	ErrInvalidInput = errors.New("store: invalid input")
)

// Collection names, as they appear in the database file.
const (
	CollectionPessoas           = "pessoas"
	CollectionPlanos            = "planos"
	CollectionPlanosContratados = "planos_contratados"
)

// Op is the kind of a mutation.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes a completed mutation.
type Change struct {
	Collection string
	Op         Op
	ID         int
}

type database struct {
	Pessoas           []Pessoa          `json:"pessoas"`
	Planos            []Plano           `json:"planos"`
	PlanosContratados []PlanoContratado `json:"planos_contratados"`
}

// Store holds the records. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	path     string
	db       database
	checksum uint64
	logger   *slog.Logger

	subMu       sync.RWMutex
	subscribers []func(Change)
}

// Open loads the database at path. A missing or unreadable file yields empty
// collections; the file is created on the first mutation. An empty path keeps the
// store in memory only.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:   path,
		logger: logger.With("component", "store"),
	}
	s.db = s.load()
	return s
}

func (s *Store) load() database {
	empty := database{Pessoas: []Pessoa{}, Planos: []Plano{}, PlanosContratados: []PlanoContratado{}}
	if s.path == "" {
		return empty
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("Database file not found, starting empty.", "path", s.path)
		return empty
	}
	if err != nil {
		s.logger.Error("Failed to read database file.", "path", s.path, "error", err)
		return empty
	}

	var db database
	if err := json.Unmarshal(raw, &db); err != nil {
		s.logger.Error("Failed to parse database file.", "path", s.path, "error", err)
		return empty
	}
	if db.Pessoas == nil {
		db.Pessoas = []Pessoa{}
	}
	if db.Planos == nil {
		db.Planos = []Plano{}
	}
	if db.PlanosContratados == nil {
		db.PlanosContratados = []PlanoContratado{}
	}
	s.checksum = xxhash.Sum64(raw)
	s.logger.Info("Database loaded.", "path", s.path,
		"pessoas", len(db.Pessoas), "planos", len(db.Planos), "planos_contratados", len(db.PlanosContratados))
	return db
}

// Subscribe registers fn to be called after every successful mutation. Callbacks
// run synchronously, outside the store lock.
func (s *Store) Subscribe(fn func(Change)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(c Change) {
	s.subMu.RLock()
	subscribers := slices.Clone(s.subscribers)
	s.subMu.RUnlock()

	for _, fn := range subscribers {
		fn(c)
	}
}

// persist writes the database to disk unless its encoding is unchanged since the
// last write. Must be called with s.mu held.
func (s *Store) persist(ctx context.Context) {
	if s.path == "" {
		return
	}

	raw, err := json.MarshalIndent(s.db, "", "    ")
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode database.", "error", err)
		return
	}
	raw = append(raw, '\n')
	sum := xxhash.Sum64(raw)
	if sum == s.checksum {
		return
	}
	if err := writeFileAtomic(s.path, raw); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save database.", "path", s.path, "error", err)
		return
	}
	s.checksum = sum
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func notFound(collection string, id int) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, collection, id)
}

type identified interface {
	Pessoa | Plano | PlanoContratado
}

func nextID[T identified](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		next = max(next, id(item)+1)
	}
	return next
}

func filter[T identified](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
