package directory

import (
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/celera/directory/pkg/member"
)

const topN = 5

// pairSep joins first industry and role category into one counter key.
const pairSep = "\x00"

// Count is one value and the number of members carrying it.
type Count struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// CohortRole is the most common role category of one cohort.
type CohortRole struct {
	Cohort  int    `json:"cohort"`
	Members int    `json:"members"`
	Role    string `json:"role"`
	Count   int    `json:"count"`
}

// Hub is the most common location among members of one industry.
type Hub struct {
	Industry string `json:"industry"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// Insights summarizes the community.
type Insights struct {
	Members           int          `json:"members"`
	Cohorts           int          `json:"cohorts"`
	Locations         int          `json:"locations"`
	FieldsOfStudy     int          `json:"fieldsOfStudy"`
	MeanExperience    *float64     `json:"meanExperience,omitempty"`
	MedianExperience  *float64     `json:"medianExperience,omitempty"`
	TopIndustries     []Count      `json:"topIndustries"`
	TopRoles          []Count      `json:"topRoles"`
	TopLocations      []Count      `json:"topLocations"`
	TopActionAreas    []Count      `json:"topActionAreas"`
	TopSuperpowers    []Count      `json:"topSuperpowers"`
	UniqueSuperpowers int          `json:"uniqueSuperpowers"`
	DominantIndustry  string       `json:"dominantIndustry,omitempty"`
	DominantRole      string       `json:"dominantRole,omitempty"`
	DominantCount     int          `json:"dominantCount,omitempty"`
	RolesByCohort     []CohortRole `json:"rolesByCohort"`
	IndustryHubs      []Hub        `json:"industryHubs"`
	MatchReady        int          `json:"matchReady"`
	MatchCoverage     float64      `json:"matchCoverage"`
}

type counter struct {
	order []string
	n     map[string]int
}

func newCounter() *counter { return &counter{n: make(map[string]int)} }

func (c *counter) add(v string) {
	if v == "" {
		return
	}
	if _, ok := c.n[v]; !ok {
		c.order = append(c.order, v)
	}
	c.n[v]++
}

// top sorts by count desc, then value asc.
func (c *counter) top(limit, total int) []Count {
	vals := slices.Clone(c.order)
	sort.SliceStable(vals, func(i, j int) bool {
		if c.n[vals[i]] != c.n[vals[j]] {
			return c.n[vals[i]] > c.n[vals[j]]
		}
		return vals[i] < vals[j]
	})
	if limit > 0 && len(vals) > limit {
		vals = vals[:limit]
	}
	out := make([]Count, 0, len(vals))
	for _, v := range vals {
		share := 0.0
		if total > 0 {
			share = float64(c.n[v]) / float64(total)
		}
		out = append(out, Count{Value: v, Count: c.n[v], Share: share})
	}
	return out
}

func (c *counter) first() string {
	if t := c.top(1, 0); len(t) > 0 {
		return t[0].Value
	}
	return ""
}

// Summarize computes the community statistics of records.
func Summarize(records []member.Record) Insights {
	total := len(records)
	industries, pairs := newCounter(), newCounter()
	roles, locations, areas, powers, fields := newCounter(), newCounter(), newCounter(), newCounter(), newCounter()
	cohortRoles := make(map[int]*counter)
	var years []float64
	ready := 0

	for _, r := range records {
		for _, v := range r.Industries {
			industries.add(v)
		}
		if len(r.Industries) > 0 && r.RoleCategory != "" {
			pairs.add(r.Industries[0] + pairSep + r.RoleCategory)
		}
		roles.add(r.RoleCategory)
		locations.add(r.Location)
		for _, v := range r.ActionAreas {
			areas.add(v)
		}
		powers.add(r.Superpower)
		fields.add(r.FieldOfStudy)
		if r.ExperienceYears != nil {
			years = append(years, *r.ExperienceYears)
		}
		if r.Cohort != nil {
			c, ok := cohortRoles[*r.Cohort]
			if !ok {
				c = newCounter()
				cohortRoles[*r.Cohort] = c
			}
			c.add(r.RoleCategory)
		}
		if len(r.Industries) > 0 || r.HasRole() {
			ready++
		}
	}

	in := Insights{
		Members:        total,
		Cohorts:        len(cohortRoles),
		Locations:      len(locations.order),
		FieldsOfStudy:  len(fields.order),
		TopIndustries:  industries.top(topN, total),
		TopRoles:       roles.top(topN, total),
		TopLocations:   locations.top(topN, total),
		TopActionAreas: areas.top(3, total),
		TopSuperpowers: powers.top(topN, total),
		RolesByCohort:  []CohortRole{},
		IndustryHubs:   []Hub{},
		MatchReady:     ready,
	}
	if pair := pairs.first(); pair != "" {
		in.DominantIndustry, in.DominantRole, _ = strings.Cut(pair, pairSep)
		in.DominantCount = pairs.n[pair]
	}
	for _, v := range powers.order {
		if powers.n[v] == 1 {
			in.UniqueSuperpowers++
		}
	}
	if total > 0 {
		in.MatchCoverage = float64(ready) / float64(total)
	}
	if len(years) > 0 {
		mean := stat.Mean(years, nil)
		median := median(years)
		in.MeanExperience, in.MedianExperience = &mean, &median
	}

	cohorts := make([]int, 0, len(cohortRoles))
	for c := range cohortRoles {
		cohorts = append(cohorts, c)
	}
	slices.Sort(cohorts)
	for _, c := range cohorts {
		cr := cohortRoles[c]
		members := 0
		for _, n := range cr.n {
			members += n
		}
		role := cr.first()
		in.RolesByCohort = append(in.RolesByCohort, CohortRole{Cohort: c, Members: members, Role: role, Count: cr.n[role]})
	}

	for _, ind := range industries.top(3, total) {
		hub := newCounter()
		for _, r := range records {
			if slices.Contains(r.Industries, ind.Value) {
				hub.add(r.Location)
			}
		}
		if loc := hub.first(); loc != "" {
			in.IndustryHubs = append(in.IndustryHubs, Hub{Industry: ind.Value, Location: loc, Count: hub.n[loc]})
		}
	}
	return in
}

func median(values []float64) float64 {
	s := slices.Clone(values)
	slices.Sort(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
