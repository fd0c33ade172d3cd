package tabular_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tugela/gigmatch/internal/domain/model"
	"github.com/tugela/gigmatch/internal/domain/tabular"
)

func TestNormalizeFreelancers(t *testing.T) {
	Convey("Given raw freelancer records", t, func() {
		Convey("When the record is complete", func() {
			raws := []model.RawRecord{{
				"freelancer_id": 7,
				"name":          "Ada",
				"skills":        []any{"Python ", "SQL", "python"},
				"hourly_rate":   40.0,
				"rating":        4.5,
				"location":      "NG",
				"available":     false,
			}}

			table := tabular.NormalizeFreelancers(raws)

			Convey("Then it produces one typed row", func() {
				So(table.Skipped, ShouldEqual, 0)
				So(table.Rows, ShouldHaveLength, 1)

				row := table.Rows[0]
				So(row.FreelancerID, ShouldEqual, 7)
				So(row.HourlyRate, ShouldEqual, 40.0)
				So(row.Rating, ShouldNotBeNil)
				So(*row.Rating, ShouldEqual, 4.5)
				So(row.Available, ShouldBeFalse)
			})

			Convey("And skill tags are canonicalized without duplicates", func() {
				So(table.Rows[0].Skills, ShouldResemble, []string{"python", "sql"})
			})
		})

		Convey("When optional fields are absent", func() {
			table := tabular.NormalizeFreelancers([]model.RawRecord{{
				"freelancer_id": 3,
				"name":          "Grace",
				"skills":        []any{"go"},
				"hourly_rate":   55.0,
			}})

			Convey("Then defaults apply", func() {
				So(table.Rows, ShouldHaveLength, 1)
				row := table.Rows[0]
				So(row.Rating, ShouldBeNil)
				So(row.Phone, ShouldBeNil)
				So(row.Address, ShouldBeNil)
				So(row.Available, ShouldBeTrue)
				So(row.Location, ShouldEqual, "unspecified")
			})
		})

		Convey("When numeric fields arrive as strings", func() {
			table := tabular.NormalizeFreelancers([]model.RawRecord{{
				"freelancer_id": "11",
				"hourly_rate":   "40",
				"rating":        "3.5",
				"skills":        []any{"sql"},
			}})

			Convey("Then they are coerced into numbers", func() {
				So(table.Rows, ShouldHaveLength, 1)
				So(table.Rows[0].FreelancerID, ShouldEqual, 11)
				So(table.Rows[0].HourlyRate, ShouldEqual, 40.0)
				So(*table.Rows[0].Rating, ShouldEqual, 3.5)
			})
		})

		Convey("When the id is missing or malformed", func() {
			table := tabular.NormalizeFreelancers([]model.RawRecord{
				{"name": "no id", "hourly_rate": 10.0},
				{"freelancer_id": "not-a-number"},
				{"freelancer_id": -4},
			})

			Convey("Then every record is skipped and counted", func() {
				So(table.Rows, ShouldBeEmpty)
				So(table.Skipped, ShouldEqual, 3)
			})
		})

		Convey("When the rating is out of range", func() {
			table := tabular.NormalizeFreelancers([]model.RawRecord{{
				"freelancer_id": 5,
				"rating":        6.2,
			}})

			Convey("Then the record is skipped, not clamped", func() {
				So(table.Rows, ShouldBeEmpty)
				So(table.Skipped, ShouldEqual, 1)
			})
		})
	})
}

func TestNormalizeGigs(t *testing.T) {
	Convey("Given raw gig records", t, func() {
		Convey("When the record is complete", func() {
			table := tabular.NormalizeGigs([]model.RawRecord{{
				"gig_id":     1,
				"title":      "Data pipeline",
				"skills":     []any{"Python"},
				"budget_min": 30.0,
				"budget_max": 50.0,
				"category":   "data",
				"location":   "NG",
				"remote":     false,
				"status":     "open",
			}})

			Convey("Then it produces one typed row", func() {
				So(table.Skipped, ShouldEqual, 0)
				So(table.Rows, ShouldHaveLength, 1)
				row := table.Rows[0]
				So(row.GigID, ShouldEqual, 1)
				So(row.BudgetMin, ShouldEqual, 30.0)
				So(row.BudgetMax, ShouldEqual, 50.0)
				So(row.Skills, ShouldResemble, []string{"python"})
			})
		})

		Convey("When the budget arrives in alternate shapes", func() {
			Convey("And it is a scalar", func() {
				table := tabular.NormalizeGigs([]model.RawRecord{{
					"gig_id": 2, "skills": []any{"sql"}, "category": "data", "budget": 45.0,
				}})
				So(table.Rows, ShouldHaveLength, 1)
				So(table.Rows[0].BudgetMin, ShouldEqual, 45.0)
				So(table.Rows[0].BudgetMax, ShouldEqual, 45.0)
			})

			Convey("And it is a two-element range", func() {
				table := tabular.NormalizeGigs([]model.RawRecord{{
					"gig_id": 3, "skills": []any{"sql"}, "category": "data", "budget": []any{20, 30},
				}})
				So(table.Rows, ShouldHaveLength, 1)
				So(table.Rows[0].BudgetMin, ShouldEqual, 20.0)
				So(table.Rows[0].BudgetMax, ShouldEqual, 30.0)
			})

			Convey("And it is a numeric string", func() {
				table := tabular.NormalizeGigs([]model.RawRecord{{
					"gig_id": 4, "skills": []any{"sql"}, "category": "data", "budget": "60",
				}})
				So(table.Rows, ShouldHaveLength, 1)
				So(table.Rows[0].BudgetMin, ShouldEqual, 60.0)
			})

			Convey("And it cannot be coerced", func() {
				table := tabular.NormalizeGigs([]model.RawRecord{{
					"gig_id": 5, "skills": []any{"sql"}, "category": "data", "budget": "lots",
				}})
				So(table.Rows, ShouldBeEmpty)
				So(table.Skipped, ShouldEqual, 1)
			})
		})

		Convey("When required fields are missing", func() {
			table := tabular.NormalizeGigs([]model.RawRecord{
				{"gig_id": 6, "skills": []any{"sql"}, "category": "data"},           // no budget
				{"gig_id": 7, "budget": 40.0, "category": "data"},                   // no skills
				{"gig_id": 8, "budget": 40.0, "skills": []any{"sql"}},               // no category
				{"budget": 40.0, "skills": []any{"sql"}, "category": "data"},        // no id
				{"gig_id": 9, "budget_min": 50.0, "budget_max": 30.0, "skills": []any{"sql"}, "category": "data"}, // inverted range
			})

			Convey("Then every record is skipped and counted", func() {
				So(table.Rows, ShouldBeEmpty)
				So(table.Skipped, ShouldEqual, 5)
			})
		})

		Convey("When a malformed record sits among valid ones", func() {
			table := tabular.NormalizeGigs([]model.RawRecord{
				{"gig_id": 1, "budget": 40.0, "skills": []any{"sql"}, "category": "data"},
				{"gig_id": 2, "skills": []any{"sql"}, "category": "data"},
				{"gig_id": 3, "budget": 50.0, "skills": []any{"go"}, "category": "data"},
			})

			Convey("Then only the malformed one is dropped", func() {
				So(table.Rows, ShouldHaveLength, 2)
				So(table.Skipped, ShouldEqual, 1)
			})
		})

		Convey("When optional gig fields are absent", func() {
			table := tabular.NormalizeGigs([]model.RawRecord{{
				"gig_id": 10, "budget": 25.0, "skills": []any{"figma"}, "category": "design",
			}})

			Convey("Then defaults apply", func() {
				So(table.Rows, ShouldHaveLength, 1)
				row := table.Rows[0]
				So(row.Location, ShouldEqual, "unspecified")
				So(row.Remote, ShouldBeFalse)
				So(row.Status, ShouldEqual, "open")
			})
		})
	})
}
