// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for profile, meals, water log, and settings.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL,
		goal TEXT NOT NULL,
		health_concerns TEXT NOT NULL DEFAULT '[]',
		details TEXT NOT NULL DEFAULT '',
		height_cm REAL NOT NULL,
		weight_kg REAL NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS meals (
		id TEXT PRIMARY KEY,
		logged_at DATETIME NOT NULL,
		description TEXT NOT NULL,
		nutrients TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS water_log (
		date TEXT PRIMARY KEY,
		glasses INTEGER NOT NULL CHECK (glasses >= 0)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_meals_logged ON meals(logged_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
