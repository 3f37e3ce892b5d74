package sqlite

// State returns the full session key/value map.
func (s *Store) State() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM state`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	state := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		state[key] = value
	}
	return state, rows.Err()
}

// SetState writes one key, refreshing its timestamp.
func (s *Store) SetState(key, value string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO state (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, nowUnix(),
	)
	return err
}
