// Package textsim scores documents against each other with TF-IDF vectors and
// cosine similarity.
package textsim

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var ErrEmptyVocabulary = errors.New("empty vocabulary after pruning")

// Config controls vocabulary construction.
type Config struct {
	// MaxDF drops terms found in more than this share of documents.
	MaxDF float64
	// MinDF drops terms found in fewer documents than this.
	MinDF int
	// MaxFeatures caps the vocabulary; 0 means no cap.
	MaxFeatures int
	// NGramMax is the longest n-gram; 2 gives unigrams and bigrams.
	NGramMax int
}

func DefaultConfig() Config {
	return Config{MaxDF: 0.95, MinDF: 1, MaxFeatures: 1500, NGramMax: 2}
}

var wordRun = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lower-cases text, keeps word runs of two or more characters and
// removes English stop words.
func Tokenize(text string) []string {
	runs := wordRun.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(runs))
	for _, w := range runs {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		if _, stop := englishStopWords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}

func terms(text string, nmax int) []string {
	tokens := Tokenize(text)
	out := append([]string(nil), tokens...)
	for n := 2; n <= nmax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// Model holds L2-normalized TF-IDF rows, one per fitted document.
type Model struct {
	vocab  map[string]int
	idf    []float64
	matrix *mat.Dense
}

// Fit builds the vocabulary and the document matrix.
func Fit(docs []string, cfg Config) (*Model, error) {
	if cfg.NGramMax < 1 {
		cfg.NGramMax = 1
	}
	n := len(docs)
	counts := make([]map[string]int, n)
	df := make(map[string]int)
	total := make(map[string]int)
	for i, d := range docs {
		c := make(map[string]int)
		for _, t := range terms(d, cfg.NGramMax) {
			c[t]++
			total[t]++
		}
		for t := range c {
			df[t]++
		}
		counts[i] = c
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	maxDoc := cfg.MaxDF * float64(n)
	kept := make([]string, 0, len(df))
	for t, f := range df {
		if cfg.MaxDF > 0 && float64(f) > maxDoc {
			continue
		}
		if f < cfg.MinDF {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return nil, ErrEmptyVocabulary
	}
	sort.Slice(kept, func(i, j int) bool {
		if total[kept[i]] != total[kept[j]] {
			return total[kept[i]] > total[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if cfg.MaxFeatures > 0 && len(kept) > cfg.MaxFeatures {
		kept = kept[:cfg.MaxFeatures]
	}
	sort.Strings(kept)

	m := &Model{
		vocab: make(map[string]int, len(kept)),
		idf:   make([]float64, len(kept)),
	}
	for j, t := range kept {
		m.vocab[t] = j
		m.idf[j] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}

	m.matrix = mat.NewDense(n, len(kept), nil)
	for i, c := range counts {
		row := m.matrix.RawRowView(i)
		for t, tf := range c {
			j, ok := m.vocab[t]
			if !ok {
				continue
			}
			row[j] = (1 + math.Log(float64(tf))) * m.idf[j]
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
	}
	return m, nil
}

// Docs is the number of fitted documents.
func (m *Model) Docs() int {
	r, _ := m.matrix.Dims()
	return r
}

// Features is the vocabulary size.
func (m *Model) Features() int {
	return len(m.idf)
}

// Similarities returns the cosine similarity of document q with every fitted
// document, itself included, clamped to [0,1].
func (m *Model) Similarities(q int) ([]float64, error) {
	if q < 0 || q >= m.Docs() {
		return nil, fmt.Errorf("document %d out of range [0,%d)", q, m.Docs())
	}
	var out mat.VecDense
	out.MulVec(m.matrix, m.matrix.RowView(q))
	sims := make([]float64, out.Len())
	for i := range sims {
		sims[i] = clamp01(out.AtVec(i))
	}
	return sims, nil
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
