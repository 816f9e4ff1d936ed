// Package store persists skill profiles (Postgres) and analysis history (SQLite).
package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Package-level singleton, set from main.go. Nil when Postgres is not configured.
var profileDB *ProfileDB

// SetProfileDB sets the package-level profile DB instance.
func SetProfileDB(db *ProfileDB) { profileDB = db }

// GetProfileDB returns the package-level profile DB instance (may be nil).
func GetProfileDB() *ProfileDB { return profileDB }

// ProfileDB holds the pgx connection pool for profile storage.
type ProfileDB struct {
	pool *pgxpool.Pool
}

// ConnectProfileDB creates a pgx pool and runs schema migrations.
func ConnectProfileDB(ctx context.Context, databaseURL string) (*ProfileDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &ProfileDB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("profile postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *ProfileDB) Close() {
	db.pool.Close()
}

func (db *ProfileDB) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := db.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute %s: %w", entry.Name(), err)
		}
		slog.Info("migration applied", slog.String("file", entry.Name()))
	}
	return nil
}

// SaveProfile replaces the stored profile for the username. A re-analysis
// supersedes the previous profile entirely; skill rows are never merged
// across analyses.
func (db *ProfileDB) SaveProfile(ctx context.Context, p engine.UserProfile) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (username, repos_analyzed, analyzed_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO UPDATE SET repos_analyzed = EXCLUDED.repos_analyzed, analyzed_at = EXCLUDED.analyzed_at`,
		p.Username, p.ReposAnalyzed, p.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM profile_skills WHERE username = $1`, p.Username); err != nil {
		return fmt.Errorf("clear skills: %w", err)
	}

	for i, s := range p.Skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO profile_skills (username, name, category, level, confidence, repo_count, evidence, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.Username, s.Name, s.Category, s.Level, s.Confidence, s.RepoCount, s.Evidence, i,
		)
		if err != nil {
			return fmt.Errorf("insert skill %s: %w", s.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// LoadProfile returns the stored profile for the username, or pgx.ErrNoRows
// if none was saved.
func (db *ProfileDB) LoadProfile(ctx context.Context, username string) (engine.UserProfile, error) {
	var p engine.UserProfile
	err := db.pool.QueryRow(ctx,
		`SELECT username, repos_analyzed, analyzed_at FROM profiles WHERE username = $1`,
		username,
	).Scan(&p.Username, &p.ReposAnalyzed, &p.AnalyzedAt)
	if err != nil {
		return engine.UserProfile{}, err
	}

	rows, err := db.pool.Query(ctx,
		`SELECT name, category, level, confidence, repo_count, evidence
		 FROM profile_skills WHERE username = $1 ORDER BY position`,
		username,
	)
	if err != nil {
		return engine.UserProfile{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var s match.SkillObservation
		if err := rows.Scan(&s.Name, &s.Category, &s.Level, &s.Confidence, &s.RepoCount, &s.Evidence); err != nil {
			return engine.UserProfile{}, err
		}
		p.Skills = append(p.Skills, s)
	}
	return p, rows.Err()
}

// IsNotFound reports whether err means the profile does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
