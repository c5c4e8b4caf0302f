package store

// Config selects and tunes the storage backend
type Config struct {
	SQLite SQLiteConfig
}

// SQLiteConfig configures the embedded SQLite backend
type SQLiteConfig struct {
	// Enabled opens the database when true
	Enabled bool

	// Path is the database file location; ":memory:" for an in-memory db
	Path string

	// BusyTimeoutMs is how long a writer waits on a locked database
	BusyTimeoutMs int

	// SlowQueryMs marks queries at or above this as slow in logs; <0 disables
	SlowQueryMs int

	// LogSQL emits a debug log line per statement when true
	LogSQL bool
}
