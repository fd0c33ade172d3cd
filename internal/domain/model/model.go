// Package model contains the record and result types passed between stages.
package model

// RawRecord is a loosely-typed row as returned by the external store.
// Keys are column names; values carry whatever type the store produced.
type RawRecord map[string]any

// FreelancerRecord is a normalized freelancer profile row.
type FreelancerRecord struct {
	FreelancerID int64
	Name         string
	Skills       []string
	HourlyRate   float64
	Rating       *float64 // nil means unrated
	Category     string
	Location     string
	Available    bool
	Phone        *string
	Address      *string
}

// RatingOrZero returns the aggregate rating, treating unrated as zero.
func (f FreelancerRecord) RatingOrZero() float64 {
	if f.Rating == nil {
		return 0
	}
	return *f.Rating
}

// GigRecord is a normalized gig posting row.
type GigRecord struct {
	GigID     int64
	Title     string
	Skills    []string
	BudgetMin float64
	BudgetMax float64
	Category  string
	Location  string
	Remote    bool
	Status    string
}

// AssessmentRow pairs one freelancer with one gig together with the
// comparison features computed from them. Rows live only for the duration
// of a single assessment request.
type AssessmentRow struct {
	Freelancer FreelancerRecord
	Gig        GigRecord

	SkillOverlap  int
	BudgetFit     int
	LocationMatch int
	CategoryMatch bool
}

// ScoredGig is the per-gig output of the scoring engine, carrying the
// gig's display fields alongside the computed score.
type ScoredGig struct {
	GigID     int64   `json:"gig_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	Category  string  `json:"category"`
	Location  string  `json:"location"`
	Remote    bool    `json:"remote"`
	BudgetMin float64 `json:"budget_min"`
	BudgetMax float64 `json:"budget_max"`
}

// RankedResult is the ordered, truncated output of one assessment.
type RankedResult struct {
	TopGigs []ScoredGig `json:"top_gigs"`
}
