package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
// It is the single shared mutable resource: every write commits its own
// transaction before returning, so a record visible to a reader is
// complete and final.
type Store struct {
	db     *sql.DB
	client *ent.Client

	bounds DeltaBounds

	// turnMu serializes turn-index assignment per session.
	// Writers to different sessions do not contend.
	turnMu keyedMutex
	// planMu serializes plan-version assignment per session.
	planMu keyedMutex
}

// Option configures a Store at open time.
type Option func(*Store)

// WithDeltaBounds overrides the plausible range for snapshot deltas.
func WithDeltaBounds(b DeltaBounds) Option {
	return func(s *Store) { s.bounds = b }
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s := &Store{db: db, client: client, bounds: DefaultDeltaBounds()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Users() UserRepo                { return &userRepo{client: s.client} }
func (s *Store) Sessions() SessionRepo          { return &sessionRepo{client: s.client} }
func (s *Store) Interactions() InteractionRepo  { return &interactionRepo{store: s} }
func (s *Store) Plans() PlanRepo                { return &planRepo{store: s} }
func (s *Store) Progress() ProgressRepo         { return &progressRepo{client: s.client, bounds: s.bounds} }
func (s *Store) StudentModel() StudentModelRepo { return &studentModelRepo{client: s.client} }
func (s *Store) Stats() StatsRepo               { return &statsRepo{client: s.client} }
func (s *Store) Reports() ReportRepo            { return &reportRepo{client: s.client} }
func (s *Store) Events() EventRepo              { return &eventRepo{client: s.client} }

// applyPragmas configures SQLite for durable concurrent access.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. METAMIND_DB environment variable
// 2. $XDG_DATA_HOME/metamind/metamind.db
// 3. ~/.local/share/metamind/metamind.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("METAMIND_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "metamind", "metamind.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// keyedMutex provides one mutex per string key. Lock returns the unlock
// function for the key's mutex.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
