// Package storage provides the SQLite move journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// SessionEntry is one journaled piece session.
type SessionEntry struct {
	ID        string
	Shape     string
	Direction string
	StartedAt time.Time
	MoveCount int
}

// MoveEntry is one committed command as it was journaled.
type MoveEntry struct {
	ID             int64
	SessionID      string
	Seq            int
	Action         string
	Classification string
	EffX           float64
	EffY           float64
	EffAngle       float64
	PoseX          float64
	PoseY          float64
	PoseAngle      float64
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			shape TEXT NOT NULL,
			direction TEXT NOT NULL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			seq INTEGER NOT NULL,
			action TEXT NOT NULL,
			classification TEXT NOT NULL,
			eff_x REAL NOT NULL,
			eff_y REAL NOT NULL,
			eff_angle REAL NOT NULL,
			pose_x REAL NOT NULL,
			pose_y REAL NOT NULL,
			pose_angle REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_moves_session_seq ON moves(session_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession registers a new session. Starting an existing id is an error.
func (s *Store) StartSession(id string, shape tetromino.Shape, direction tetromino.Direction) error {
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, shape, direction) VALUES (?, ?, ?)",
		id, shape.String(), direction.String(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot start session %s: %w", id, err)
	}
	return nil
}

// RecordMove appends one handled command to a session.
// Returns the ID of the inserted record.
func (s *Store) RecordMove(sessionID string, seq int, m tetromino.Move) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO moves
		 (session_id, seq, action, classification, eff_x, eff_y, eff_angle, pose_x, pose_y, pose_angle)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, seq, m.Action.String(), m.Classification.String(),
		m.Effective.Translation.X, m.Effective.Translation.Y, m.Effective.Angle,
		m.Pose.Translation.X, m.Pose.Translation.Y, m.Pose.Angle,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Moves retrieves the moves of a session in the order they were made.
// A limit of zero or less returns all of them.
func (s *Store) Moves(sessionID string, limit int) ([]MoveEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, seq, action, classification,
		        eff_x, eff_y, eff_angle, pose_x, pose_y, pose_angle, created_at
		 FROM moves
		 WHERE session_id = ?
		 ORDER BY seq ASC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var entries []MoveEntry
	for rows.Next() {
		var e MoveEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Seq, &e.Action, &e.Classification,
			&e.EffX, &e.EffY, &e.EffAngle, &e.PoseX, &e.PoseY, &e.PoseAngle,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentSessions retrieves the most recently started sessions with their
// move counts.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.shape, s.direction, s.started_at, COUNT(m.id)
		 FROM sessions s
		 LEFT JOIN moves m ON m.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.started_at DESC, s.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var startedAt any
		if err := rows.Scan(&e.ID, &e.Shape, &e.Direction, &startedAt, &e.MoveCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = parseTimestamp(startedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Session retrieves one session by id. Returns nil if it does not exist.
func (s *Store) Session(id string) (*SessionEntry, error) {
	var e SessionEntry
	var startedAt any

	err := s.db.QueryRow(
		`SELECT s.id, s.shape, s.direction, s.started_at,
		        (SELECT COUNT(*) FROM moves m WHERE m.session_id = s.id)
		 FROM sessions s
		 WHERE s.id = ?`,
		id,
	).Scan(&e.ID, &e.Shape, &e.Direction, &startedAt, &e.MoveCount)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	e.StartedAt = parseTimestamp(startedAt)
	return &e, nil
}

// ClassificationCounts returns how many moves of the session fell into each
// classification. Classifications that never occurred are absent.
func (s *Store) ClassificationCounts(sessionID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT classification, COUNT(*)
		 FROM moves
		 WHERE session_id = ?
		 GROUP BY classification`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count classifications: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var c string
		var n int
		if err := rows.Scan(&c, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[c] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// parseTimestamp handles both time.Time and the SQLite text form.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
