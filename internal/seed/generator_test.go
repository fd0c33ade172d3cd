package seed_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tugela/gigmatch/internal/adapters/repository"
	"github.com/tugela/gigmatch/internal/domain/model"
	"github.com/tugela/gigmatch/internal/domain/tabular"
	"github.com/tugela/gigmatch/internal/seed"
	"github.com/tugela/gigmatch/pkg/logger"
)

func TestGenerator(t *testing.T) {
	Convey("Given a generator with a fixed seed", t, func() {
		So(logger.Init(), ShouldBeNil)
		gen := seed.NewGenerator(seed.WithSeed(1))

		Convey("When generating a freelancer record", func() {
			rec := gen.Freelancer(1)

			Convey("Then it normalizes cleanly", func() {
				table := tabular.NormalizeFreelancers([]model.RawRecord{rec})
				So(table.Skipped, ShouldEqual, 0)
				So(table.Rows, ShouldHaveLength, 1)
				So(table.Rows[0].FreelancerID, ShouldEqual, 1)
				So(table.Rows[0].Skills, ShouldNotBeEmpty)
			})
		})

		Convey("When generating a gig record", func() {
			rec := gen.Gig(7)

			Convey("Then it normalizes cleanly", func() {
				table := tabular.NormalizeGigs([]model.RawRecord{rec})
				So(table.Skipped, ShouldEqual, 0)
				So(table.Rows, ShouldHaveLength, 1)
				So(table.Rows[0].GigID, ShouldEqual, 7)
				So(table.Rows[0].BudgetMax, ShouldBeGreaterThanOrEqualTo, table.Rows[0].BudgetMin)
				So(table.Rows[0].Status, ShouldEqual, "open")
			})
		})

		Convey("When two generators share a seed", func() {
			a := seed.NewGenerator(seed.WithSeed(9)).Freelancer(1)
			b := seed.NewGenerator(seed.WithSeed(9)).Freelancer(1)

			Convey("Then the drawn attributes match", func() {
				So(a["hourly_rate"], ShouldEqual, b["hourly_rate"])
				So(a["location"], ShouldEqual, b["location"])
			})
		})
	})
}

func TestGenerator_Populate(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()
		store := repository.NewMemStore()
		gen := seed.NewGenerator(seed.WithSeed(3))

		Convey("When populating freelancers and gigs", func() {
			So(gen.Populate(ctx, store, "gigs", 3, 5), ShouldBeNil)

			Convey("Then every row is retrievable", func() {
				for id := int64(1); id <= 3; id++ {
					_, err := store.GetFreelancer(ctx, id)
					So(err, ShouldBeNil)
				}

				recs, err := store.ListGigs(ctx, "gigs")
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 5)
			})
		})
	})
}
