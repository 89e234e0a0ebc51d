// Package csvfile keeps the directory in a flat CSV export.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/celera/directory/pkg/member"
)

// Store reads and appends to a roster CSV. Appends are serialized; the parsed
// table is reused while the file is unchanged.
type Store struct {
	path string
	log  zerolog.Logger

	mu      sync.Mutex
	modTime time.Time
	size    int64
	table   member.Table
	loaded  bool
}

func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

func (s *Store) Path() string { return s.path }

func (s *Store) Snapshot(ctx context.Context) (member.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() (member.Table, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return member.Table{}, s.missing(err)
	}
	if s.loaded && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return s.table, nil
	}
	f, err := os.Open(s.path)
	if err != nil {
		return member.Table{}, s.missing(err)
	}
	defer f.Close()
	t, err := member.ReadCSV(f)
	if err != nil {
		return member.Table{}, fmt.Errorf("%w: %s: %v", member.ErrSourceMissing, s.path, err)
	}
	s.table, s.modTime, s.size, s.loaded = t, info.ModTime(), info.Size(), true
	s.log.Debug().Str("path", s.path).Int("rows", len(t.Rows)).Msg("roster file parsed")
	return t, nil
}

func (s *Store) missing(err error) error {
	return fmt.Errorf("%w: %s: %v", member.ErrSourceMissing, s.path, err)
}

// Append validates m and writes it as a new row under the file's headers. A
// missing file is created with the default header set, which carries the
// member id column. Files without that column keep their layout and the
// returned id is not stored.
func (s *Store) Append(ctx context.Context, m member.NewMember) (uuid.UUID, error) {
	if err := m.Validate(); err != nil {
		return uuid.Nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	headers, fresh, err := s.headers()
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	row := m.Row(headers)
	for i, h := range headers {
		if f, ok := member.FieldOf(h); ok && f == member.FieldID {
			row[i] = id.String()
		}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return uuid.Nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	if !fresh {
		if err := terminateLastLine(f); err != nil {
			return uuid.Nil, err
		}
	}
	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(headers); err != nil {
			return uuid.Nil, fmt.Errorf("write headers: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return uuid.Nil, fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return uuid.Nil, fmt.Errorf("flush roster: %w", err)
	}
	s.loaded = false
	s.log.Info().Str("path", s.path).Str("id", id.String()).Msg("member appended")
	return id, nil
}

func (s *Store) headers() ([]string, bool, error) {
	t, err := s.snapshot()
	switch {
	case err == nil && len(t.Headers) > 0:
		return t.Headers, false, nil
	case err == nil:
		return defaultHeaders(), true, nil
	}
	if _, statErr := os.Stat(s.path); errors.Is(statErr, fs.ErrNotExist) {
		return defaultHeaders(), true, nil
	}
	return nil, false, err
}

func defaultHeaders() []string {
	out := make([]string, 0, len(member.Fields))
	for _, f := range member.Fields {
		out = append(out, f.Header())
	}
	return out
}

// terminateLastLine adds a newline when the file does not end with one.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return err
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read roster tail: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte{'\n'})
	return err
}
