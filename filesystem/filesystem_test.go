package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("WriteAtomic creates parents and leaves no temporary file", func() {
			So(WriteAtomic("/a/b/file.txt", []byte("hello"), 0o644), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/a/b/file.txt"))), ShouldEqual, "hello")
			So(lo.Must(API().Exists("/a/b/file.txt.tmp")), ShouldBeFalse)
		})

		Convey("WriteAtomic replaces existing content", func() {
			So(WriteAtomic("/f", []byte("one"), 0o644), ShouldBeNil)
			So(WriteAtomic("/f", []byte("two"), 0o644), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/f"))), ShouldEqual, "two")
		})

		Convey("GacheFs writes through the active backend", func() {
			var g GacheFs
			So(g.MkdirAll("/cache", 0o755), ShouldBeNil)
			So(lo.Must(API().IsDir("/cache")), ShouldBeTrue)
		})
	})
}
