package matchmaking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/celera/directory/pkg/member"
	"github.com/celera/directory/pkg/textsim"
)

// UseCase finds ranked, explained matches for a member of the directory.
type UseCase interface {
	FindMatches(ctx context.Context, records []member.Record, name string) Result
}

type service struct {
	cfg Config
	log zerolog.Logger
}

func NewService(cfg Config, log zerolog.Logger) UseCase {
	cfg.Limit = max(cfg.Limit, 0)
	cfg.Suggestions = max(cfg.Suggestions, 0)
	return &service{cfg: cfg, log: log}
}

func (s *service) FindMatches(ctx context.Context, records []member.Record, name string) (res Result) {
	eligible, excluded := Eligible(records)
	res = Result{
		Status:   StatusOK,
		Query:    name,
		Eligible: len(eligible),
		Excluded: excluded,
		Matches:  []Match{},
	}
	if excluded > 0 {
		s.log.Debug().Int("excluded", excluded).Msg("records without enough data for matchmaking")
	}
	if len(eligible) < 2 {
		res.Status = StatusInsufficientData
		res.Detail = "se necesitan al menos 2 perfiles con datos completos"
		return res
	}

	query := -1
	for i, r := range eligible {
		if r.Name == name {
			query = i
			break
		}
	}
	if query < 0 {
		res.Status = StatusNotFound
		res.Detail = fmt.Sprintf("no se encontró el perfil: %s", name)
		res.Suggestions = suggest(eligible, name, s.cfg.Suggestions)
		return res
	}

	defer func() {
		if p := recover(); p != nil {
			res = s.failed(res, fmt.Errorf("panic: %v", p))
		}
	}()
	matches, threshold, err := s.rank(eligible, query)
	if err != nil {
		return s.failed(res, err)
	}
	res.Matches = matches
	res.Threshold = threshold
	s.log.Info().
		Str("query", name).
		Int("eligible", len(eligible)).
		Int("matches", len(matches)).
		Float64("threshold", threshold).
		Msg("matchmaking done")
	return res
}

func (s *service) failed(res Result, err error) Result {
	s.log.Error().Err(err).Str("query", res.Query).Msg("matchmaking failed")
	res.Status = StatusComputationError
	res.Detail = err.Error()
	res.Matches = []Match{}
	res.Threshold = 0
	return res
}

func (s *service) rank(eligible []member.Record, query int) ([]Match, float64, error) {
	docs := make([]string, len(eligible))
	for i, r := range eligible {
		docs[i] = Synthesize(r, s.cfg.Features)
	}
	model, err := textsim.Fit(docs, s.cfg.Vectorizer)
	if err != nil {
		return nil, 0, fmt.Errorf("vectorize: %w", err)
	}
	text, err := model.Similarities(query)
	if err != nil {
		return nil, 0, fmt.Errorf("text similarity: %w", err)
	}

	ref := eligible[query]
	numeric := make([]float64, len(eligible))
	scores := make([]float64, len(eligible))
	var positive []float64
	for i, r := range eligible {
		numeric[i] = NumericSimilarity(ref, r)
		score := s.cfg.TextWeight*text[i] + s.cfg.NumericWeight*numeric[i]
		if score > s.cfg.PenaltyAbove {
			score -= s.cfg.Penalty
		}
		if i == query {
			score = -1
		}
		scores[i] = score
		if score > 0 {
			positive = append(positive, score)
		}
	}

	threshold := s.cfg.ThresholdFloor
	if len(positive) > 0 {
		threshold = max(threshold, percentile(positive, s.cfg.ThresholdPercent))
	}

	order := make([]int, len(eligible))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	limit := min(s.cfg.Limit, len(eligible)-1)
	matches := make([]Match, 0, limit)
	for _, i := range order[:limit] {
		if scores[i] < threshold {
			continue
		}
		matches = append(matches, Match{
			Name:         eligible[i].Name,
			Score:        scores[i],
			Reason:       Reasons(ref, eligible[i]),
			TextScore:    text[i],
			NumericScore: numeric[i],
		})
	}
	return matches, threshold, nil
}

// suggest ranks eligible names by edit distance to name.
func suggest(eligible []member.Record, name string, n int) []string {
	if n <= 0 || strings.TrimSpace(name) == "" {
		return nil
	}
	type candidate struct {
		name string
		dist int
	}
	want := strings.ToLower(name)
	seen := make(map[string]struct{}, len(eligible))
	cands := make([]candidate, 0, len(eligible))
	for _, r := range eligible {
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		cands = append(cands, candidate{r.Name, levenshtein.ComputeDistance(want, strings.ToLower(r.Name))})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	out := make([]string, 0, n)
	for _, c := range cands[:min(n, len(cands))] {
		out = append(out, c.name)
	}
	return out
}
