package matchmaking

import "github.com/celera/directory/pkg/textsim"

// Status is the outcome of one matchmaking run.
type Status string

const (
	StatusOK               Status = "ok"
	StatusInsufficientData Status = "insufficient_data"
	StatusNotFound         Status = "not_found"
	StatusComputationError Status = "computation_error"
)

// Match is one recommended member for the query record.
type Match struct {
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	Reason       string  `json:"reason"`
	TextScore    float64 `json:"textScore"`
	NumericScore float64 `json:"numericScore"`
}

// Result carries the ranked matches and the run diagnostics. Matches is empty
// unless Status is StatusOK.
type Result struct {
	Status      Status   `json:"status"`
	Detail      string   `json:"detail,omitempty"`
	Query       string   `json:"query"`
	Threshold   float64  `json:"threshold"`
	Eligible    int      `json:"eligible"`
	Excluded    int      `json:"excluded"`
	Matches     []Match  `json:"matches"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// BestScore is the top match score, 0 without matches.
func (r Result) BestScore() float64 {
	if len(r.Matches) == 0 {
		return 0
	}
	return r.Matches[0].Score
}

// MeanScore averages the match scores, 0 without matches.
func (r Result) MeanScore() float64 {
	if len(r.Matches) == 0 {
		return 0
	}
	var sum float64
	for _, m := range r.Matches {
		sum += m.Score
	}
	return sum / float64(len(r.Matches))
}

// Config holds the ranking heuristics.
type Config struct {
	TextWeight       float64
	NumericWeight    float64
	PenaltyAbove     float64
	Penalty          float64
	ThresholdFloor   float64
	ThresholdPercent float64
	Limit            int
	Suggestions      int
	Features         Weights
	Vectorizer       textsim.Config
}

func DefaultConfig() Config {
	return Config{
		TextWeight:       0.70,
		NumericWeight:    0.30,
		PenaltyAbove:     0.95,
		Penalty:          0.05,
		ThresholdFloor:   0.1,
		ThresholdPercent: 25,
		Limit:            15,
		Suggestions:      3,
		Features:         DefaultWeights(),
		Vectorizer:       textsim.DefaultConfig(),
	}
}
