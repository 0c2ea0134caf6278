package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/polishpages/internal/common"
	"github.com/dtnitsch/polishpages/models"
)

// Message severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ErrNoRuns is returned when the database holds no runs yet.
var ErrNoRuns = errors.New("no runs found")

// Run is one stored generation run.
type Run struct {
	RunID        string
	CreatedAt    time.Time
	SiteOrigin   string
	PageCount    int
	LinkCount    int
	ErrorCount   int
	WarningCount int
	Valid        bool
}

// RunInput is everything SaveRun writes.
type RunInput struct {
	RunID      string
	CreatedAt  time.Time
	SiteOrigin string
	Records    []models.PageRecord
	Errors     []string
	Warnings   []string
}

// SaveRun stores a run with its pages, link edges and validation messages
// in one transaction.
func (db *DB) SaveRun(in RunInput) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	links := 0
	for _, r := range in.Records {
		links += len(r.RelatedServices)
	}

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, created_at, site_origin, page_count, link_count, error_count, warning_count, valid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, in.RunID, in.CreatedAt.UTC(), in.SiteOrigin, len(in.Records), links, len(in.Errors), len(in.Warnings), len(in.Errors) == 0)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	pageStmt, err := tx.Prepare(`
		INSERT INTO pages (run_id, position, url, title, service_category, location, title_variation, word_count, content_hash, record_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare page insert: %w", err)
	}
	defer pageStmt.Close()

	linkStmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO page_links (run_id, source_url, target_url, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()

	for i, r := range in.Records {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal page %s: %w", r.URL, err)
		}
		words := len(strings.Fields(r.ToPlainText()))
		if _, err := pageStmt.Exec(in.RunID, i, r.URL, r.Title, r.ServiceCategory, r.Location,
			string(r.TitleVariation), words, common.ContentHash(data), string(data)); err != nil {
			return fmt.Errorf("failed to insert page %s: %w", r.URL, err)
		}
		for j, l := range r.RelatedServices {
			if _, err := linkStmt.Exec(in.RunID, r.URL, l.URL, j); err != nil {
				return fmt.Errorf("failed to insert link %s -> %s: %w", r.URL, l.URL, err)
			}
		}
	}

	for _, m := range in.Errors {
		if err := insertMessage(tx, in.RunID, SeverityError, m); err != nil {
			return err
		}
	}
	for _, m := range in.Warnings {
		if err := insertMessage(tx, in.RunID, SeverityWarning, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

func insertMessage(tx *sql.Tx, runID, severity, message string) error {
	_, err := tx.Exec(`
		INSERT INTO validation_messages (run_id, severity, message)
		VALUES (?, ?, ?)
	`, runID, severity, message)
	if err != nil {
		return fmt.Errorf("failed to insert validation message: %w", err)
	}
	return nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, site_origin, page_count, link_count,
		       error_count, warning_count, valid
		FROM runs
		ORDER BY created_at DESC, rowid DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.SiteOrigin, &r.PageCount, &r.LinkCount,
			&r.ErrorCount, &r.WarningCount, &r.Valid); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun retrieves a single run.
func (db *DB) GetRun(runID string) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, site_origin, page_count, link_count,
		       error_count, warning_count, valid
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.SiteOrigin, &r.PageCount, &r.LinkCount,
		&r.ErrorCount, &r.WarningCount, &r.Valid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// LatestRunID returns the most recent run, or ErrNoRuns.
func (db *DB) LatestRunID() (string, error) {
	runs, err := db.ListRuns(1)
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", ErrNoRuns
	}
	return runs[0].RunID, nil
}

// GetValidationMessages returns the stored messages of one severity.
func (db *DB) GetValidationMessages(runID, severity string) ([]string, error) {
	rows, err := db.Query(`
		SELECT message FROM validation_messages
		WHERE run_id = ? AND severity = ?
		ORDER BY message_id
	`, runID, severity)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation messages: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan validation message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
