package where

import (
	"path/filepath"
	"testing"

	"github.com/gotw-cli/gotw/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override", func() {
			t.Setenv(EnvConfigPath, "/custom/gotw")
			So(Config(), ShouldEqual, "/custom/gotw")
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() and Scripts() live under Config()", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
			So(filepath.Dir(Scripts()), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(Scripts())), ShouldBeTrue)
		})

		Convey("Session() and Journal() live under Cache()", func() {
			So(filepath.Dir(Session()), ShouldEqual, Cache())
			So(filepath.Dir(Journal()), ShouldEqual, Cache())
		})
	})
}
