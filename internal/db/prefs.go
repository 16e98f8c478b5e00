package db

import "database/sql"

// KeyDarkMode stores "true" while the dark theme is active.
const KeyDarkMode = "dark_mode"

// ConfigEntry is one preferences row.
type ConfigEntry struct {
	Key   string
	Value string
}

// GetConfig returns a config value, "" when unset.
func GetConfig(conn *sql.DB, key string) (string, error) {
	row := conn.QueryRow("SELECT value FROM tradeloop_config WHERE key = ?", key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetConfig sets a config value.
func SetConfig(conn *sql.DB, key, value string) error {
	_, err := conn.Exec("INSERT OR REPLACE INTO tradeloop_config (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetAllConfig returns all config entries ordered by key.
func GetAllConfig(conn *sql.DB) ([]ConfigEntry, error) {
	rows, err := conn.Query("SELECT key, value FROM tradeloop_config ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ConfigEntry
	for rows.Next() {
		var entry ConfigEntry
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetDarkMode reads the persisted theme flag.
func GetDarkMode(conn *sql.DB) (bool, error) {
	value, err := GetConfig(conn, KeyDarkMode)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

// SetDarkMode persists the theme flag.
func SetDarkMode(conn *sql.DB, dark bool) error {
	value := "false"
	if dark {
		value = "true"
	}
	return SetConfig(conn, KeyDarkMode, value)
}
