package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath       string     `json:"db_path"`
	DBSizeBytes  int64      `json:"db_size_bytes"`
	TotalAnswers int        `json:"total_answers"`
	Days         []DayStats `json:"days"`
}

// DayStats holds per-day counts.
type DayStats struct {
	Day      int `json:"day"`
	Count    int `json:"count"`
	Distinct int `json:"distinct_values"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers`).Scan(&st.TotalAnswers); err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT day, COUNT(*) AS cnt, COUNT(DISTINCT part || ':' || value) AS distinct_values
		FROM answers
		GROUP BY day ORDER BY day`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DayStats
		if err := rows.Scan(&d.Day, &d.Count, &d.Distinct); err != nil {
			return st, err
		}
		st.Days = append(st.Days, d)
	}

	return st, rows.Err()
}
