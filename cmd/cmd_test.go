package cmd

import (
	"path/filepath"
	"testing"

	"github.com/gotw-cli/gotw/config"
	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGrowthSteps(t *testing.T) {
	Convey("Growth steps follow (c+1)*2", t, func() {
		steps, err := growthSteps(15)
		So(err, ShouldBeNil)
		So(steps, ShouldResemble, []growthStep{
			{Push: 1, From: 0, To: 2},
			{Push: 3, From: 2, To: 6},
			{Push: 7, From: 6, To: 14},
			{Push: 15, From: 14, To: 30},
		})
	})

	Convey("No pushes means no steps", t, func() {
		steps, err := growthSteps(0)
		So(err, ShouldBeNil)
		So(steps, ShouldBeEmpty)
	})
}

func TestConfigHelpers(t *testing.T) {
	Convey("A misspelled key suggests the closest one", t, func() {
		So(closestKey("stack.max_slot"), ShouldEqual, key.StackMaxSlots)
		So(errUnknownKey("stack.max_slot").Error(), ShouldContainSubstring, key.StackMaxSlots)
	})

	Convey("Values are parsed to the type of their default", t, func() {
		v, err := parseValue(config.Default[key.StackMaxSlots], "12")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 12)

		v, err = parseValue(config.Default[key.SessionPersist], "false")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(config.Default[key.IconsVariant], "emoji")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "emoji")

		_, err = parseValue(config.Default[key.StackMaxSlots], "many")
		So(err, ShouldNotBeNil)
	})

	Convey("Every field has an environment variable", t, func() {
		names := envNames()
		So(names, ShouldHaveLength, len(config.Default)+1)
		So(names, ShouldContain, where.EnvConfigPath)
		So(names, ShouldContain, "GOTW_STACK_MAX_SLOTS")
	})
}

func TestScripts(t *testing.T) {
	Convey("Given a script in the scripts directory", t, func() {
		path := filepath.Join(where.Scripts(), "hello.lua")
		So(afero.WriteFile(filesystem.API(), path, []byte(`print("hello")`), 0644), ShouldBeNil)

		Convey("It resolves by name with or without extension", func() {
			So(resolveScript("hello"), ShouldEqual, path)
			So(resolveScript("hello.lua"), ShouldEqual, path)
		})

		Convey("An existing path is used as is", func() {
			So(resolveScript(path), ShouldEqual, path)
		})

		Convey("It is listed", func() {
			So(scriptNames(), ShouldContain, "hello")
		})
	})
}
