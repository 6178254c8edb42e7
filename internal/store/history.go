package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"chiseled/internal/profile"

	_ "modernc.org/sqlite"
)

// HistoryEntry is one generated plan in the history database.
type HistoryEntry struct {
	ID        string
	CreatedAt time.Time
	Focus     string
	Goal      string
	Record    profile.AnswerRecord
}

// History keeps every generated plan in SQLite so past plans survive the
// single-file current plan being overwritten.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the history database under dataDir.
func OpenHistory(dataDir string) (*History, error) {
	dbPath := filepath.Join(dataDir, "history.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// modernc's driver serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL,
			focus TEXT NOT NULL,
			goal TEXT NOT NULL,
			plan_text TEXT NOT NULL,
			answers TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create plans table: %w", err)
	}

	return &History{db: db}, nil
}

// Record appends rec to the history and returns the new entry's id.
func (h *History) Record(rec profile.AnswerRecord) (string, error) {
	answers, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}

	id := uuid.New().String()
	_, err = h.db.Exec(
		`INSERT INTO plans (id, created_at, focus, goal, plan_text, answers) VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), rec.Focus, rec.Goal, rec.PlanText, string(answers),
	)
	if err != nil {
		return "", fmt.Errorf("insert plan: %w", err)
	}
	return id, nil
}

// List returns history entries newest first, without the full answer payload.
func (h *History) List(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := h.db.Query(
		`SELECT id, created_at, focus, goal FROM plans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Focus, &e.Goal); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get loads one full history entry by id.
func (h *History) Get(id string) (*HistoryEntry, error) {
	var e HistoryEntry
	var answers string
	err := h.db.QueryRow(
		`SELECT id, created_at, focus, goal, answers FROM plans WHERE id = ?`, id).
		Scan(&e.ID, &e.CreatedAt, &e.Focus, &e.Goal, &answers)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plan %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &e.Record); err != nil {
		return nil, fmt.Errorf("parse stored answers: %w", err)
	}
	return &e, nil
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}
