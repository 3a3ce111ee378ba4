package library

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Images table - stores named encoded images for one-shot detection
		`CREATE TABLE IF NOT EXISTS images (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			format TEXT NOT NULL CHECK(format IN ('png', 'jpg')),
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_images_name ON images(name)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
