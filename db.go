package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// initDB opens the sqlite database used for visitor analytics and creates the
// schema. The site content itself never touches the database; the catalog is
// static and in-memory.
func initDB(path string) error {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}

	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createVisitorTable); err != nil {
		return err
	}
	return nil
}
