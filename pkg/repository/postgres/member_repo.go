package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/celera/directory/pkg/member"
)

// MemberRepository keeps the directory in PostgreSQL. List fields live in
// member_tags and are folded back into comma-separated cells on Snapshot.
type MemberRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	mu   sync.Mutex
}

func NewMemberRepository(pool *pgxpool.Pool, log zerolog.Logger) (*MemberRepository, error) {
	r := &MemberRepository{pool: pool, log: log}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("ensure members schema: %w", err)
	}
	return r, nil
}

func (r *MemberRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS members (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	linkedin TEXT NOT NULL DEFAULT '',
	cohort INT NOT NULL CHECK (cohort > 0),
	location TEXT NOT NULL,
	role_text TEXT NOT NULL,
	experience TEXT NOT NULL DEFAULT '',
	superpower TEXT NOT NULL DEFAULT '',
	field_of_study TEXT NOT NULL DEFAULT '',
	motivation TEXT NOT NULL DEFAULT '',
	desired_connections TEXT NOT NULL DEFAULT '',
	value_add TEXT NOT NULL DEFAULT '',
	specialization TEXT NOT NULL DEFAULT '',
	data_policy BOOLEAN NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS member_tags (
	member_id UUID NOT NULL REFERENCES members(id) ON DELETE CASCADE,
	kind TEXT NOT NULL,
	position INT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (member_id, kind, position)
);
CREATE INDEX IF NOT EXISTS idx_member_tags_value ON member_tags(kind, value);
`)
	return err
}

// snapshotFields is the column order of Snapshot tables.
var snapshotFields = []member.Field{
	member.FieldName, member.FieldEmail, member.FieldLinkedIn, member.FieldCohort,
	member.FieldLocation, member.FieldIndustry, member.FieldRole, member.FieldActionAreas,
	member.FieldExperience, member.FieldSuperpower, member.FieldFieldOfStudy,
	member.FieldMotivation, member.FieldDesiredConnections, member.FieldValueAdd,
	member.FieldSpecialization, member.FieldID,
}

func (r *MemberRepository) Snapshot(ctx context.Context) (member.Table, error) {
	rows, err := r.pool.Query(ctx, `
SELECT m.name, m.email, m.linkedin, m.cohort, m.location,
	COALESCE((SELECT string_agg(t.value, ', ' ORDER BY t.position) FROM member_tags t
		WHERE t.member_id = m.id AND t.kind = $1), ''),
	m.role_text,
	COALESCE((SELECT string_agg(t.value, ', ' ORDER BY t.position) FROM member_tags t
		WHERE t.member_id = m.id AND t.kind = $2), ''),
	m.experience, m.superpower, m.field_of_study, m.motivation,
	m.desired_connections, m.value_add, m.specialization, m.id::text
FROM members m
ORDER BY m.created_at, m.id
`, string(member.TagIndustry), string(member.TagActionArea))
	if err != nil {
		return member.Table{}, fmt.Errorf("%w: query members: %v", member.ErrSourceMissing, err)
	}
	defer rows.Close()

	t := member.Table{Headers: make([]string, len(snapshotFields)), Rows: [][]string{}}
	for i, f := range snapshotFields {
		t.Headers[i] = f.Header()
	}
	for rows.Next() {
		var cohort int
		row := make([]string, len(snapshotFields))
		if err := rows.Scan(&row[0], &row[1], &row[2], &cohort, &row[4], &row[5], &row[6], &row[7],
			&row[8], &row[9], &row[10], &row[11], &row[12], &row[13], &row[14], &row[15]); err != nil {
			return member.Table{}, err
		}
		row[3] = strconv.Itoa(cohort)
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return member.Table{}, err
	}
	return t, nil
}

func (r *MemberRepository) Append(ctx context.Context, m member.NewMember) (uuid.UUID, error) {
	if err := m.Validate(); err != nil {
		return uuid.Nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO members (id, name, email, linkedin, cohort, location, role_text, experience,
	superpower, field_of_study, motivation, desired_connections, value_add, specialization,
	data_policy, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`, id, strings.TrimSpace(m.Name), strings.TrimSpace(m.Email), strings.TrimSpace(m.LinkedIn), m.Cohort,
		strings.TrimSpace(m.Location), strings.TrimSpace(m.CurrentRole), strings.TrimSpace(m.Experience),
		strings.TrimSpace(m.Superpower), strings.TrimSpace(m.FieldOfStudy), strings.TrimSpace(m.Motivation),
		strings.TrimSpace(m.DesiredConnections), strings.TrimSpace(m.ValueAdd), strings.TrimSpace(m.Specialization),
		m.DataPolicyAccepted, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	for _, tag := range m.Tags() {
		_, err = tx.Exec(ctx, `
INSERT INTO member_tags (member_id, kind, position, value)
VALUES ($1, $2, $3, $4)
`, id, string(tag.Kind), tag.Position, tag.Value)
		if err != nil {
			return uuid.Nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}
	r.log.Info().Str("id", id.String()).Msg("member stored")
	return id, nil
}
