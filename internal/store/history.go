package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// AnalysisRecord is one entry in the local analysis history.
type AnalysisRecord struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	ReposAnalyzed int    `json:"repos_analyzed"`
	SkillCount    int    `json:"skill_count"`
	TopMatch      string `json:"top_match,omitempty"`
	TopScore      int    `json:"top_score,omitempty"`
	CreatedAt     string `json:"created_at"`
}

var (
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
)

// openHistoryDB opens (or creates) the SQLite history database.
func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".skill_bridge")
		if err := os.MkdirAll(dir, 0750); err != nil {
			historyErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "history.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// initHistorySchema creates the analyses table if it doesn't exist.
func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		username       TEXT NOT NULL,
		repos_analyzed INTEGER NOT NULL,
		skill_count    INTEGER NOT NULL,
		top_match      TEXT,
		top_score      INTEGER,
		created_at     TEXT NOT NULL
	)`)
	return err
}

// AddAnalysis records a completed analysis in the history.
func AddAnalysis(_ context.Context, rec AnalysisRecord) (int64, error) {
	if rec.Username == "" {
		return 0, errors.New("history: username is required")
	}

	db, err := openHistoryDB()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO analyses (username, repos_analyzed, skill_count, top_match, top_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Username, rec.ReposAnalyzed, rec.SkillCount, rec.TopMatch, rec.TopScore, now,
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return id, nil
}

// ListAnalyses returns recent analyses, optionally filtered by username.
func ListAnalyses(_ context.Context, username string, limit int) ([]AnalysisRecord, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows *sql.Rows
	if username != "" {
		rows, err = db.Query(
			`SELECT id, username, repos_analyzed, skill_count, top_match, top_score, created_at
			 FROM analyses WHERE username = ? ORDER BY id DESC LIMIT ?`,
			username, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, username, repos_analyzed, skill_count, top_match, top_score, created_at
			 FROM analyses ORDER BY id DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var r AnalysisRecord
		var topMatch sql.NullString
		var topScore sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Username, &r.ReposAnalyzed, &r.SkillCount,
			&topMatch, &topScore, &r.CreatedAt); err != nil {
			continue
		}
		r.TopMatch = topMatch.String
		r.TopScore = int(topScore.Int64)
		records = append(records, r)
	}

	if records == nil {
		records = []AnalysisRecord{}
	}
	return records, rows.Err()
}
