package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/aoc2018/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// timeFormat is fixed width so created_at sorts correctly as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS answers (
		id          TEXT PRIMARY KEY,
		day         INTEGER NOT NULL,
		part        INTEGER NOT NULL,
		value       INTEGER NOT NULL,
		input_hash  TEXT,
		elapsed_ns  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_answers_day_part ON answers(day, part);
	CREATE INDEX IF NOT EXISTS idx_answers_created ON answers(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Record(ctx context.Context, p RecordParams) (*model.Answer, error) {
	if p.Day < 1 || p.Day > 25 {
		return nil, fmt.Errorf("invalid day %d", p.Day)
	}
	if !model.ValidParts[p.Part] {
		return nil, fmt.Errorf("invalid part %d", p.Part)
	}

	now := time.Now().UTC()
	id := s.newID(now)

	var hash *string
	if p.InputHash != "" {
		hash = &p.InputHash
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answers (id, day, part, value, input_hash, elapsed_ns, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, p.Day, p.Part, p.Value, hash, p.Elapsed.Nanoseconds(), now.Format(timeFormat))
	if err != nil {
		return nil, fmt.Errorf("insert answer: %w", err)
	}

	return &model.Answer{
		ID:        id,
		Day:       p.Day,
		Part:      p.Part,
		Value:     p.Value,
		InputHash: p.InputHash,
		ElapsedNS: p.Elapsed.Nanoseconds(),
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) Latest(ctx context.Context, day, part int) (*model.Answer, error) {
	// ULIDs sort by creation time, so id breaks ties within one timestamp.
	row := s.db.QueryRowContext(ctx,
		`SELECT id, day, part, value, input_hash, elapsed_ns, created_at
		 FROM answers WHERE day = ? AND part = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`, day, part)

	a, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: day %d part %d", ErrNotFound, day, part)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Answer, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	var args []interface{}

	if p.Day != 0 {
		where = append(where, "day = ?")
		args = append(args, p.Day)
	}
	if p.Part != 0 {
		where = append(where, "part = ?")
		args = append(args, p.Part)
	}

	query := fmt.Sprintf(`
		SELECT id, day, part, value, input_hash, elapsed_ns, created_at
		FROM answers
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []model.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}

	return answers, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAnswer(row scanner) (model.Answer, error) {
	var a model.Answer
	var hash sql.NullString
	var createdAt string

	err := row.Scan(&a.ID, &a.Day, &a.Part, &a.Value, &hash, &a.ElapsedNS, &createdAt)
	if err != nil {
		return a, err
	}

	a.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	if hash.Valid {
		a.InputHash = hash.String
	}
	return a, nil
}
