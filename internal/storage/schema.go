// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for domains, categories, metrics, events, and journal.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS domains (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		color TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		domain_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (domain_id) REFERENCES domains(id) ON DELETE CASCADE,
		UNIQUE (domain_id, name)
	);

	CREATE TABLE IF NOT EXISTS metrics (
		id TEXT PRIMARY KEY,
		domain_id TEXT NOT NULL,
		category_id TEXT,
		name TEXT NOT NULL,
		impact_simple REAL NOT NULL,
		impact_advanced REAL NOT NULL,
		impact_exceptional REAL NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (domain_id) REFERENCES domains(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS metric_events (
		id TEXT PRIMARY KEY,
		metric_id TEXT NOT NULL,
		domain_id TEXT NOT NULL,
		category_id TEXT,
		recorded_date TEXT NOT NULL,
		level TEXT NOT NULL,
		custom_impact REAL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (metric_id, recorded_date)
	);

	CREATE TABLE IF NOT EXISTS free_performances (
		id TEXT PRIMARY KEY,
		domain_id TEXT NOT NULL,
		category_id TEXT,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (domain_id) REFERENCES domains(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS free_performance_records (
		id TEXT PRIMARY KEY,
		free_performance_id TEXT NOT NULL,
		domain_id TEXT NOT NULL,
		category_id TEXT,
		recorded_date TEXT NOT NULL,
		impact REAL NOT NULL,
		note TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		entry_date TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS insights (
		id TEXT PRIMARY KEY,
		entry_id TEXT NOT NULL,
		highlight TEXT NOT NULL,
		note TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (entry_id) REFERENCES journal_entries(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_categories_domain ON categories(domain_id);
	CREATE INDEX IF NOT EXISTS idx_metrics_domain ON metrics(domain_id);
	CREATE INDEX IF NOT EXISTS idx_events_domain_date ON metric_events(domain_id, recorded_date);
	CREATE INDEX IF NOT EXISTS idx_events_metric_date ON metric_events(metric_id, recorded_date);
	CREATE INDEX IF NOT EXISTS idx_records_domain_date ON free_performance_records(domain_id, recorded_date);
	CREATE INDEX IF NOT EXISTS idx_journal_date ON journal_entries(entry_date DESC);
	CREATE INDEX IF NOT EXISTS idx_insights_entry ON insights(entry_id);
	`

	// Events keep no FK to metrics on purpose: deleting a metric must
	// not delete its history, and orphaned events resolve to zero impact.
	_, err := d.db.Exec(schema)
	return err
}
