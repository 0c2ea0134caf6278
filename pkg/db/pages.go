package db

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/polishpages/models"
)

// PageInfo is the indexed summary of a stored page.
type PageInfo struct {
	Position        int    `json:"position"`
	URL             string `json:"url"`
	Title           string `json:"title"`
	ServiceCategory string `json:"service_category"`
	Location        string `json:"location"`
	TitleVariation  string `json:"title_variation"`
	WordCount       int    `json:"word_count"`
	ContentHash     string `json:"content_hash"`
	InLinks         int    `json:"in_links"`
}

// GetRunPages lists the pages of a run in corpus order, optionally
// filtered by category and location.
func (db *DB) GetRunPages(runID, category, location string) ([]PageInfo, error) {
	query := `
		SELECT p.position, p.url, p.title, p.service_category, p.location,
		       p.title_variation, p.word_count, p.content_hash,
		       (SELECT COUNT(*) FROM page_links l
		        WHERE l.run_id = p.run_id AND l.target_url = p.url AND l.source_url <> p.url)
		FROM pages p
		WHERE p.run_id = ?
	`
	args := []any{runID}
	if category != "" {
		query += " AND p.service_category = ?"
		args = append(args, category)
	}
	if location != "" {
		query += " AND p.location = ?"
		args = append(args, location)
	}
	query += " ORDER BY p.position"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	var pages []PageInfo
	for rows.Next() {
		var p PageInfo
		if err := rows.Scan(&p.Position, &p.URL, &p.Title, &p.ServiceCategory, &p.Location,
			&p.TitleVariation, &p.WordCount, &p.ContentHash, &p.InLinks); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// LoadRecords rebuilds the full page records of a run in corpus order.
func (db *DB) LoadRecords(runID string) ([]models.PageRecord, error) {
	rows, err := db.Query(`
		SELECT record_json FROM pages WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.PageRecord
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		var rec models.PageRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// OrphanURLs returns the pages of a run that no other page links to.
func (db *DB) OrphanURLs(runID string) ([]string, error) {
	rows, err := db.Query(`
		SELECT p.url FROM pages p
		WHERE p.run_id = ?
		  AND NOT EXISTS (
		      SELECT 1 FROM page_links l
		      WHERE l.run_id = p.run_id AND l.target_url = p.url AND l.source_url <> p.url
		  )
		ORDER BY p.position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphans: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan orphan: %w", err)
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// DeleteRun removes a run and, by cascade, everything stored with it.
func (db *DB) DeleteRun(runID string) error {
	res, err := db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}
