package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Users must be created before summaries due to the owner foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS summaries (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    merchant TEXT NOT NULL,
    currency_code TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS summary_items (
    summary_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    label TEXT,
    amount TEXT NOT NULL,
    item_type TEXT NOT NULL,
    status TEXT NOT NULL,
    recurring INTEGER NOT NULL,
    interval_unit TEXT NOT NULL,
    interval_count INTEGER NOT NULL,
    PRIMARY KEY (summary_id, position),
    FOREIGN KEY (summary_id) REFERENCES summaries(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_summaries_owner_id ON summaries(owner_id);
CREATE INDEX IF NOT EXISTS idx_summary_items_summary_id ON summary_items(summary_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
