package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- One row per generate invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,              -- uuid
    created_at TIMESTAMP NOT NULL,
    site_origin TEXT NOT NULL,
    page_count INTEGER NOT NULL DEFAULT 0,
    link_count INTEGER NOT NULL DEFAULT 0,
    error_count INTEGER NOT NULL DEFAULT 0,
    warning_count INTEGER NOT NULL DEFAULT 0,
    valid BOOLEAN NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Generated pages; record_json holds the full page record
CREATE TABLE IF NOT EXISTS pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    position INTEGER NOT NULL,            -- corpus order
    url TEXT NOT NULL,
    title TEXT NOT NULL,
    service_category TEXT NOT NULL,
    location TEXT NOT NULL,
    title_variation TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    content_hash TEXT NOT NULL,
    record_json TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, url)
);

CREATE INDEX IF NOT EXISTS idx_pages_run ON pages(run_id, position);
CREATE INDEX IF NOT EXISTS idx_pages_category ON pages(run_id, service_category);

-- Related-link edges
CREATE TABLE IF NOT EXISTS page_links (
    run_id TEXT NOT NULL,
    source_url TEXT NOT NULL,
    target_url TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    PRIMARY KEY (run_id, source_url, target_url)
);

CREATE INDEX IF NOT EXISTS idx_links_target ON page_links(run_id, target_url);

-- Validator output
CREATE TABLE IF NOT EXISTS validation_messages (
    message_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    severity TEXT NOT NULL,               -- error, warning
    message TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_messages_run ON validation_messages(run_id, severity);
`
