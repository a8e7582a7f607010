package registry

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the registry database and ensures its tables exist. The
// registry holds the rank ladder and the audit action catalog, both of
// which the spreadsheet only references by name.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to registry database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS ranks (
	          name TEXT NOT NULL PRIMARY KEY,
	          role_id TEXT NOT NULL DEFAULT '',
	          rank_level INTEGER NOT NULL UNIQUE
	      );
	      CREATE TABLE IF NOT EXISTS actions (
	          id INTEGER PRIMARY KEY,
	          name TEXT NOT NULL UNIQUE
	      );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create registry tables: %w", err)
	}

	if err := seedRanks(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := seedActions(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
