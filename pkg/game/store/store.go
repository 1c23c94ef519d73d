package store

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when no terminal is saved at a position
var ErrNotFound = errors.New("not found")

// Store saves terminals per station and map position in a SQLite database
type Store struct {
	DB *sql.DB
}

// Entry describes a saved terminal
type Entry struct {
	ID        string
	Station   string
	Pos       world.Point
	Name      string
	Legacy    bool // data is still in the single line legacy format
	UpdatedAt string
}

type migration struct {
	Version int
	Name    string
	UpSQL   string
}

// Open opens the database at path, creating its directory if missing
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &Store{DB: conn}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.DB.Close()
}

func loadMigrations() ([]migration, error) {
	files, err := fs.ReadDir(migrationsFS, "sql")
	if err != nil {
		return nil, err
	}
	var migrations []migration
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := migrationsFS.ReadFile("sql/" + f.Name())
		if err != nil {
			return nil, err
		}
		var v int
		if _, err := fmt.Sscanf(f.Name(), "%d_", &v); err != nil {
			return nil, fmt.Errorf("invalid migration filename %s: %w", f.Name(), err)
		}
		migrations = append(migrations, migration{Version: v, Name: f.Name(), UpSQL: string(data)})
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// Migrate applies the embedded schema migrations in order
func (s *Store) Migrate() error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS schema_version(version INTEGER NOT NULL);`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var current int
	err = tx.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&current)
	if err == sql.ErrNoRows {
		if _, err := tx.Exec(`INSERT INTO schema_version(version) VALUES (0)`); err != nil {
			return fmt.Errorf("init schema_version: %w", err)
		}
		current = 0
	} else if err != nil {
		return fmt.Errorf("read schema_version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if _, err := tx.Exec(m.UpSQL); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		if _, err := tx.Exec(`UPDATE schema_version SET version=?`, m.Version); err != nil {
			return fmt.Errorf("update schema_version: %w", err)
		}
		current = m.Version
	}
	return tx.Commit()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Put saves terminal c at pos, replacing what was saved there. Returns the row id, which is kept
// across saves.
func (s *Store) Put(ctx context.Context, station string, pos world.Point, c *computer.Computer) (string, error) {
	data, err := computer.Encode(c)
	if err != nil {
		return "", fmt.Errorf("encode %q: %w", c.Name, err)
	}
	return s.put(ctx, station, pos, c.Name, data)
}

// PutRaw saves already encoded terminal data, structured or legacy. The data has to decode.
func (s *Store) PutRaw(ctx context.Context, station string, pos world.Point, data []byte) (string, error) {
	c, err := computer.Decode(data)
	if err != nil {
		return "", err
	}
	return s.put(ctx, station, pos, c.Name, data)
}

func (s *Store) put(ctx context.Context, station string, pos world.Point, name string, data []byte) (string, error) {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO terminals(id, station, x, y, z, name, data, updated_at)
VALUES(?,?,?,?,?,?,?,?)
ON CONFLICT(station, x, y, z) DO UPDATE SET name=excluded.name, data=excluded.data, updated_at=excluded.updated_at`,
		uuid.New().String(), station, pos.X, pos.Y, pos.Z, name, string(data), now())
	if err != nil {
		return "", err
	}
	var id string
	err = s.DB.QueryRowContext(ctx, `SELECT id FROM terminals WHERE station=? AND x=? AND y=? AND z=?`,
		station, pos.X, pos.Y, pos.Z).Scan(&id)
	return id, err
}

// Get loads the terminal saved at pos
func (s *Store) Get(ctx context.Context, station string, pos world.Point) (*computer.Computer, error) {
	var data string
	err := s.DB.QueryRowContext(ctx, `SELECT data FROM terminals WHERE station=? AND x=? AND y=? AND z=?`,
		station, pos.X, pos.Y, pos.Z).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c, err := computer.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("terminal at %d,%d,%d: %w", pos.X, pos.Y, pos.Z, err)
	}
	return c, nil
}

// Delete removes the terminal saved at pos
func (s *Store) Delete(ctx context.Context, station string, pos world.Point) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM terminals WHERE station=? AND x=? AND y=? AND z=?`,
		station, pos.X, pos.Y, pos.Z)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the terminals saved for station, or for every station when it is empty
func (s *Store) List(ctx context.Context, station string) ([]Entry, error) {
	query := `SELECT id, station, x, y, z, name, data, updated_at FROM terminals`
	var args []any
	if station != "" {
		query += ` WHERE station=?`
		args = append(args, station)
	}
	query += ` ORDER BY station ASC, z ASC, y ASC, x ASC`
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Entry
	for rows.Next() {
		var e Entry
		var data string
		if err := rows.Scan(&e.ID, &e.Station, &e.Pos.X, &e.Pos.Y, &e.Pos.Z, &e.Name, &data, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.Legacy = isLegacy([]byte(data))
		res = append(res, e)
	}
	return res, rows.Err()
}

// Upgrade rewrites every terminal still saved in the legacy format as structured data. Returns
// the number of rewritten terminals.
func (s *Store) Upgrade(ctx context.Context) (int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id, data FROM terminals`)
	if err != nil {
		return 0, err
	}
	upgraded := make(map[string][]byte)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			rows.Close()
			return 0, err
		}
		if !isLegacy([]byte(data)) {
			continue
		}
		c, err := computer.Decode([]byte(data))
		if err != nil {
			rows.Close()
			return 0, fmt.Errorf("terminal %s: %w", id, err)
		}
		out, err := computer.Encode(c)
		if err != nil {
			rows.Close()
			return 0, fmt.Errorf("terminal %s: %w", id, err)
		}
		upgraded[id] = out
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for id, data := range upgraded {
		if _, err := tx.ExecContext(ctx, `UPDATE terminals SET data=?, updated_at=? WHERE id=?`, string(data), now(), id); err != nil {
			return 0, err
		}
	}
	return len(upgraded), tx.Commit()
}

// isLegacy reports whether data holds a JSON string rather than an object
func isLegacy(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`))
}
