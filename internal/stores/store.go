// Package stores keeps finished runs in a SQLite file so that the same
// composition does not have to be enumerated twice.
package stores

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	// sqlite3 driver is used by this store.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	ErrNotFound   = errors.New("run not found")
	ErrCorruptRun = errors.New("stored run is corrupt")
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite file at path and brings its
// schema up to date.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("results db path not specified")
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		log.Err(err).Msg("on-new")
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Err(err).Msg("on-up")
		return err
	}
	// m.Close would close db along with the driver, so only the source
	// is released here.
	if err := src.Close(); err != nil {
		log.Err(err).Msg("close-source")
	}
	log.Debug().Msg("results db migrated")
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores r and returns its new ID.
func (s *Store) SaveRun(ctx context.Context, r *Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (composition, word, total, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.Composition, r.Word, int64(r.Total), r.Elapsed.Milliseconds(), created.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for bucket, n := range r.Buckets {
		if n == 0 {
			continue
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_buckets (run_id, bucket, arrangements) VALUES (?, ?, ?)`,
			id, bucket, int64(n))
		if err != nil {
			return 0, fmt.Errorf("insert bucket %d: %w", bucket, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	r.ID = id
	r.CreatedAt = created
	return id, nil
}

// GetRun loads the run with the given ID.
func (s *Store) GetRun(ctx context.Context, id int64) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, composition, word, total, elapsed_ms, created_at
		FROM runs WHERE id = ?`, id)
	return s.loadRun(ctx, row)
}

// LatestRun loads the most recent run of word over composition.
func (s *Store) LatestRun(ctx context.Context, composition, word string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, composition, word, total, elapsed_ms, created_at
		FROM runs WHERE composition = ? AND word = ?
		ORDER BY id DESC LIMIT 1`, composition, word)
	return s.loadRun(ctx, row)
}

func (s *Store) loadRun(ctx context.Context, row *sql.Row) (*Run, error) {
	r := &Run{Buckets: map[int]uint64{}}
	var total, elapsedMS int64
	err := row.Scan(&r.ID, &r.Composition, &r.Word, &total, &elapsedMS, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.Total = uint64(total)
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond

	rows, err := s.db.QueryContext(ctx, `
		SELECT bucket, arrangements FROM run_buckets
		WHERE run_id = ? ORDER BY bucket`, r.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var bucket int
		var n int64
		if err := rows.Scan(&bucket, &n); err != nil {
			return nil, err
		}
		if bucket < 0 || n < 0 {
			return nil, fmt.Errorf("%w: run %d has bucket %d with %d arrangements",
				ErrCorruptRun, r.ID, bucket, n)
		}
		r.Buckets[bucket] = uint64(n)
	}
	return r, rows.Err()
}
