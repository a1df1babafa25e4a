package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"vizterm/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have the documented defaults", func() {
			convey.So(cfg.Source, convey.ShouldEqual, config.DefaultSource)
			convey.So(cfg.Variant, convey.ShouldEqual, "auto")
			convey.So(cfg.ResizeQuiet, convey.ShouldEqual, 500*time.Millisecond)
			convey.So(cfg.ExportWidth, convey.ShouldEqual, 960)
			convey.So(cfg.ExportHeight, convey.ShouldEqual, 600)
			convey.So(cfg.FetchTimeout, convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestLoad_FileAndEnv(t *testing.T) {
	convey.Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "vizterm.yaml")
		body := "source: ./global-temperature.json\nvariant: heatmap\npadding: 12\nresize_quiet: 250ms\nlog:\n  level: debug\n"
		convey.So(os.WriteFile(path, []byte(body), 0o644), convey.ShouldBeNil)

		convey.Convey("When loading without env overrides", func() {
			cfg, err := config.Load(path)

			convey.Convey("Then file values replace defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Source, convey.ShouldEqual, "./global-temperature.json")
				convey.So(cfg.Variant, convey.ShouldEqual, "heatmap")
				convey.So(cfg.Padding, convey.ShouldEqual, 12)
				convey.So(cfg.ResizeQuiet, convey.ShouldEqual, 250*time.Millisecond)
				convey.So(cfg.Log.Level, convey.ShouldEqual, "debug")
				convey.So(cfg.Watch, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When env overrides are set", func() {
			t.Setenv("VIZTERM_VARIANT", "scatter")
			t.Setenv("VIZTERM_RELOAD_ON_RESIZE", "true")
			t.Setenv("VIZTERM_LOG__FORMAT", "console")
			cfg, err := config.Load(path)

			convey.Convey("Then env wins over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Variant, convey.ShouldEqual, "scatter")
				convey.So(cfg.ReloadOnResize, convey.ShouldBeTrue)
				convey.So(cfg.Log.Format, convey.ShouldEqual, "console")
			})
		})
	})
}

func TestLoad_Errors(t *testing.T) {
	convey.Convey("Given a missing config file", t, func() {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		convey.Convey("Then a load error is returned", func() {
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given an invalid variant", t, func() {
		t.Setenv("VIZTERM_VARIANT", "pie")
		_, err := config.Load("")

		convey.Convey("Then validation fails", func() {
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
