// Package assessment joins one freelancer row against a gig table,
// computing the comparison features consumed by the scoring engine.
package assessment

import (
	"fmt"
	"strings"

	"github.com/tugela/gigmatch/internal/domain/model"
	"github.com/tugela/gigmatch/internal/domain/tabular"
)

// Construct produces one AssessmentRow per gig row. The freelancer table
// must hold exactly one row; the endpoint is defined as a single freelancer
// compared against many gigs.
func Construct(freelancers tabular.FreelancerTable, gigs tabular.GigTable) ([]model.AssessmentRow, error) {
	if n := len(freelancers.Rows); n != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInput, n)
	}
	freelancer := freelancers.Rows[0]

	skillSet := make(map[string]struct{}, len(freelancer.Skills))
	for _, s := range freelancer.Skills {
		skillSet[s] = struct{}{}
	}

	rows := make([]model.AssessmentRow, 0, len(gigs.Rows))
	for _, gig := range gigs.Rows {
		rows = append(rows, model.AssessmentRow{
			Freelancer:    freelancer,
			Gig:           gig,
			SkillOverlap:  skillOverlap(skillSet, gig.Skills),
			BudgetFit:     budgetFit(freelancer.HourlyRate, gig),
			LocationMatch: locationMatch(freelancer.Location, gig),
			CategoryMatch: categoryMatch(freelancer.Category, gig.Category),
		})
	}
	return rows, nil
}

// skillOverlap counts gig skills also present in the freelancer's set.
// Skill tags are canonicalized by the normalizer, so plain equality holds.
func skillOverlap(freelancerSkills map[string]struct{}, gigSkills []string) int {
	overlap := 0
	for _, s := range gigSkills {
		if _, ok := freelancerSkills[s]; ok {
			overlap++
		}
	}
	return overlap
}

// budgetFit reports 1 when the hourly rate falls within the gig's budget
// range, bounds inclusive.
func budgetFit(hourlyRate float64, gig model.GigRecord) int {
	if hourlyRate >= gig.BudgetMin && hourlyRate <= gig.BudgetMax {
		return 1
	}
	return 0
}

// locationMatch reports 1 for remote gigs or a location equal to the
// freelancer's.
func locationMatch(location string, gig model.GigRecord) int {
	if gig.Remote || strings.EqualFold(location, gig.Location) {
		return 1
	}
	return 0
}

// categoryMatch requires both sides to declare a category.
func categoryMatch(freelancerCategory, gigCategory string) bool {
	return freelancerCategory != "" && gigCategory != "" &&
		strings.EqualFold(freelancerCategory, gigCategory)
}
