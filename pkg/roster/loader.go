package roster

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/celera/directory/pkg/member"
	"github.com/celera/directory/pkg/normalize"
)

// Roster is one ingested snapshot of the directory. It is shared between
// readers and must not be mutated.
type Roster struct {
	Records     []member.Record
	Fingerprint string
	LoadedAt    time.Time
}

// Fingerprint hashes the table content. Equal tables give equal keys.
func Fingerprint(t member.Table) string {
	h := sha256.New()
	writeRow(h, t.Headers)
	h.Write([]byte{0x1d})
	for _, row := range t.Rows {
		writeRow(h, row)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeRow(h interface{ Write([]byte) (int, error) }, row []string) {
	for _, c := range row {
		h.Write([]byte(c))
		h.Write([]byte{0x1f})
	}
	h.Write([]byte{0x1e})
}

// Loader reads the roster from a repository and memoizes the ingested result
// per distinct snapshot.
type Loader struct {
	repo  member.Repository
	norm  *normalize.Normalizer
	cache *lru.Cache[string, *Roster]
	log   zerolog.Logger
}

func NewLoader(repo member.Repository, norm *normalize.Normalizer, size int, log zerolog.Logger) (*Loader, error) {
	if size <= 0 {
		size = 1
	}
	cache, err := lru.New[string, *Roster](size)
	if err != nil {
		return nil, fmt.Errorf("roster cache: %w", err)
	}
	return &Loader{repo: repo, norm: norm, cache: cache, log: log}, nil
}

// Load returns the current roster, ingesting it only when the source content
// changed since a previous load.
func (l *Loader) Load(ctx context.Context) (*Roster, error) {
	t, err := l.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	key := Fingerprint(t)
	if r, ok := l.cache.Get(key); ok {
		return r, nil
	}

	start := time.Now()
	r := &Roster{
		Records:     Ingest(t, l.norm),
		Fingerprint: key,
		LoadedAt:    start,
	}
	l.cache.Add(key, r)
	l.log.Info().
		Str("fingerprint", key[:12]).
		Int("records", len(r.Records)).
		Dur("took", time.Since(start)).
		Msg("roster ingested")
	return r, nil
}

// Invalidate drops every memoized roster.
func (l *Loader) Invalidate() {
	l.cache.Purge()
}

// Cached reports how many snapshots are memoized.
func (l *Loader) Cached() int {
	return l.cache.Len()
}
