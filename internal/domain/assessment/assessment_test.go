package assessment_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tugela/gigmatch/internal/domain/assessment"
	"github.com/tugela/gigmatch/internal/domain/model"
	"github.com/tugela/gigmatch/internal/domain/tabular"
)

func freelancerTable(rows ...model.FreelancerRecord) tabular.FreelancerTable {
	return tabular.FreelancerTable{Rows: rows}
}

func gigTable(rows ...model.GigRecord) tabular.GigTable {
	return tabular.GigTable{Rows: rows}
}

func TestConstruct(t *testing.T) {
	Convey("Given a freelancer and a set of gigs", t, func() {
		rating := 4.5
		freelancer := model.FreelancerRecord{
			FreelancerID: 42,
			Skills:       []string{"python", "sql"},
			HourlyRate:   40,
			Rating:       &rating,
			Location:     "NG",
		}

		Convey("When constructing against two gigs", func() {
			gigs := gigTable(
				model.GigRecord{
					GigID: 1, Skills: []string{"python"},
					BudgetMin: 30, BudgetMax: 50,
					Location: "NG", Remote: false, Category: "data",
				},
				model.GigRecord{
					GigID: 2, Skills: []string{"python", "sql"},
					BudgetMin: 20, BudgetMax: 30,
					Remote: true, Category: "design",
				},
			)

			rows, err := assessment.Construct(freelancerTable(freelancer), gigs)

			Convey("Then one row per gig comes back", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
			})

			Convey("And the comparison features are computed per pair", func() {
				So(err, ShouldBeNil)

				So(rows[0].SkillOverlap, ShouldEqual, 1)
				So(rows[0].BudgetFit, ShouldEqual, 1) // 40 within [30,50]
				So(rows[0].LocationMatch, ShouldEqual, 1)
				So(rows[0].CategoryMatch, ShouldBeFalse)

				So(rows[1].SkillOverlap, ShouldEqual, 2)
				So(rows[1].BudgetFit, ShouldEqual, 0) // 40 outside [20,30]
				So(rows[1].LocationMatch, ShouldEqual, 1) // remote
			})
		})

		Convey("When the budget is a single value", func() {
			gigs := gigTable(model.GigRecord{GigID: 3, BudgetMin: 40, BudgetMax: 40})

			rows, err := assessment.Construct(freelancerTable(freelancer), gigs)

			Convey("Then an exact rate match fits, bounds inclusive", func() {
				So(err, ShouldBeNil)
				So(rows[0].BudgetFit, ShouldEqual, 1)
			})
		})

		Convey("When categories match case-insensitively", func() {
			freelancer.Category = "Data"
			gigs := gigTable(model.GigRecord{GigID: 4, Category: "data"})

			rows, err := assessment.Construct(freelancerTable(freelancer), gigs)

			So(err, ShouldBeNil)
			So(rows[0].CategoryMatch, ShouldBeTrue)
		})

		Convey("When both categories are empty", func() {
			gigs := gigTable(model.GigRecord{GigID: 5})

			rows, err := assessment.Construct(freelancerTable(freelancer), gigs)

			Convey("Then they do not count as a match", func() {
				So(err, ShouldBeNil)
				So(rows[0].CategoryMatch, ShouldBeFalse)
			})
		})

		Convey("When the freelancer table is empty", func() {
			_, err := assessment.Construct(freelancerTable(), gigTable())

			Convey("Then construction fails with the invalid-input kind", func() {
				So(err, ShouldWrap, assessment.ErrInvalidInput)
			})
		})

		Convey("When the freelancer table has two rows", func() {
			_, err := assessment.Construct(freelancerTable(freelancer, freelancer), gigTable())

			So(err, ShouldWrap, assessment.ErrInvalidInput)
		})

		Convey("When the gig table is empty", func() {
			rows, err := assessment.Construct(freelancerTable(freelancer), gigTable())

			Convey("Then construction succeeds with zero rows", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})
}
