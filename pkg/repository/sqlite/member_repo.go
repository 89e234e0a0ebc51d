// Package sqlite keeps the directory in a local SQLite file, for single-node
// deployments without a database server.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/celera/directory/pkg/member"
)

// MemberRepository mirrors the PostgreSQL store on SQLite.
type MemberRepository struct {
	db  *sql.DB
	log zerolog.Logger
	mu  sync.Mutex
}

// Open creates the database file and schema if needed.
func Open(path string, log zerolog.Logger) (*MemberRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	r := &MemberRepository{db: db, log: log}
	if err := r.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: schema: %w", err)
	}
	return r, nil
}

func (r *MemberRepository) Close() error { return r.db.Close() }

func (r *MemberRepository) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *MemberRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS members (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	linkedin TEXT NOT NULL DEFAULT '',
	cohort INTEGER NOT NULL CHECK (cohort > 0),
	location TEXT NOT NULL,
	role_text TEXT NOT NULL,
	experience TEXT NOT NULL DEFAULT '',
	superpower TEXT NOT NULL DEFAULT '',
	field_of_study TEXT NOT NULL DEFAULT '',
	motivation TEXT NOT NULL DEFAULT '',
	desired_connections TEXT NOT NULL DEFAULT '',
	value_add TEXT NOT NULL DEFAULT '',
	specialization TEXT NOT NULL DEFAULT '',
	data_policy INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS member_tags (
	member_id TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
	kind TEXT NOT NULL,
	position INTEGER NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (member_id, kind, position)
);
CREATE INDEX IF NOT EXISTS idx_member_tags_value ON member_tags(kind, value);
`)
	return err
}

var headers = []member.Field{
	member.FieldName, member.FieldEmail, member.FieldLinkedIn, member.FieldCohort,
	member.FieldLocation, member.FieldIndustry, member.FieldRole, member.FieldActionAreas,
	member.FieldExperience, member.FieldSuperpower, member.FieldFieldOfStudy,
	member.FieldMotivation, member.FieldDesiredConnections, member.FieldValueAdd,
	member.FieldSpecialization, member.FieldID,
}

func (r *MemberRepository) Snapshot(ctx context.Context) (member.Table, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT m.name, m.email, m.linkedin, CAST(m.cohort AS TEXT), m.location,
	COALESCE((SELECT group_concat(t.value, ', ' ORDER BY t.position) FROM member_tags t
		WHERE t.member_id = m.id AND t.kind = ?1), ''),
	m.role_text,
	COALESCE((SELECT group_concat(t.value, ', ' ORDER BY t.position) FROM member_tags t
		WHERE t.member_id = m.id AND t.kind = ?2), ''),
	m.experience, m.superpower, m.field_of_study, m.motivation,
	m.desired_connections, m.value_add, m.specialization, m.id
FROM members m
ORDER BY m.created_at, m.rowid
`, string(member.TagIndustry), string(member.TagActionArea))
	if err != nil {
		return member.Table{}, fmt.Errorf("%w: query members: %v", member.ErrSourceMissing, err)
	}
	defer rows.Close()

	t := member.Table{Headers: make([]string, len(headers)), Rows: [][]string{}}
	for i, f := range headers {
		t.Headers[i] = f.Header()
	}
	for rows.Next() {
		row := make([]string, len(headers))
		dest := make([]any, len(row))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return member.Table{}, err
		}
		t.Rows = append(t.Rows, row)
	}
	return t, rows.Err()
}

func (r *MemberRepository) Append(ctx context.Context, m member.NewMember) (uuid.UUID, error) {
	if err := m.Validate(); err != nil {
		return uuid.Nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.New()
	policy := 0
	if m.DataPolicyAccepted {
		policy = 1
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO members (id, name, email, linkedin, cohort, location, role_text, experience,
	superpower, field_of_study, motivation, desired_connections, value_add, specialization,
	data_policy, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, id.String(), strings.TrimSpace(m.Name), strings.TrimSpace(m.Email), strings.TrimSpace(m.LinkedIn), m.Cohort,
		strings.TrimSpace(m.Location), strings.TrimSpace(m.CurrentRole), strings.TrimSpace(m.Experience),
		strings.TrimSpace(m.Superpower), strings.TrimSpace(m.FieldOfStudy), strings.TrimSpace(m.Motivation),
		strings.TrimSpace(m.DesiredConnections), strings.TrimSpace(m.ValueAdd), strings.TrimSpace(m.Specialization),
		policy, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return uuid.Nil, err
	}
	for _, tag := range m.Tags() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO member_tags (member_id, kind, position, value) VALUES (?, ?, ?, ?)`,
			id.String(), string(tag.Kind), tag.Position, tag.Value); err != nil {
			return uuid.Nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	r.log.Info().Str("id", id.String()).Msg("member stored")
	return id, nil
}
