package logger_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tugela/gigmatch/pkg/logger"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When logging at every level", func() {
			ctx := context.Background()
			log := logger.Get()

			So(func() {
				log.Debug(ctx, "debug", logger.String("k", "v"))
				log.Info(ctx, "info", logger.Int("n", 1))
				log.Warn(ctx, "warn", logger.Float64("f", 1.5))
				log.Error(ctx, "error", logger.Error(nil))
			}, ShouldNotPanic)
		})

		Convey("When deriving a named logger", func() {
			So(logger.Named("app"), ShouldNotBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level names", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known names parse", func() {
			for _, level := range []string{"debug", "info", "WARN", "warning", "error", ""} {
				So(logger.SetLevelString(level), ShouldBeNil)
			}
		})

		Convey("Then unknown names fail", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}

func TestNop(t *testing.T) {
	Convey("Given the no-op logger", t, func() {
		log := logger.Nop()

		Convey("Then it swallows everything", func() {
			So(func() {
				log.Info(context.Background(), "dropped", logger.Bool("ok", true))
				log.Named("x").Debug(context.Background(), "dropped too")
			}, ShouldNotPanic)
		})
	})
}
