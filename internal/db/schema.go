package db

import "database/sql"

const schemaSQL = `
-- Key/value preferences. The only state that survives a restart.
CREATE TABLE IF NOT EXISTS tradeloop_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

// InitSchema creates the preferences schema if it does not exist.
func InitSchema(conn *sql.DB) error {
	_, err := conn.Exec(schemaSQL)
	return err
}
