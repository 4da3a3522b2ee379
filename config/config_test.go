package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetBool(key.SessionPersist), ShouldBeTrue)
			So(viper.GetInt(key.StackMaxSlots), ShouldEqual, 0)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("stack.max_slots")
			So(result, ShouldEqual, "stack_max_slots")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the max slots field", t, func() {
		_ = Setup()
		field := Default[key.StackMaxSlots]

		Convey("Env is prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "GOTW_STACK_MAX_SLOTS")
		})

		Convey("MarshalJSON reports value, default and type", func() {
			raw, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(raw, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.StackMaxSlots)
			So(decoded["type"], ShouldEqual, "int")
			So(decoded["default"], ShouldEqual, float64(0))
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.StackMaxSlots)
		})
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv(where.EnvConfigPath, "/gotw-config")
	file := filepath.Join(where.Config(), "gotw.toml")

	Convey("Given a gotw.toml under GOTW_CONFIG_PATH", t, func() {
		Reset(func() {
			So(filesystem.API().WriteFile(file, nil, 0o644), ShouldBeNil)
			So(Setup(), ShouldBeNil)
		})

		Convey("Its values override the defaults", func() {
			So(filesystem.API().WriteFile(file, []byte("[stack]\nmax_slots = 16\n"), 0o644), ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.StackMaxSlots), ShouldEqual, 16)
		})

		Convey("A malformed file is reported", func() {
			So(filesystem.API().WriteFile(file, []byte("[stack\n"), 0o644), ShouldBeNil)
			err := Setup()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "gotw.toml")
		})

		Convey("A negative count is rejected", func() {
			So(filesystem.API().WriteFile(file, []byte("[session]\njournal_size = -1\n"), 0o644), ShouldBeNil)
			err := Setup()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.SessionJournalSize)
		})
	})

	Convey("Given GOTW_STACK_MAX_SLOTS=-1", t, func() {
		t.Setenv("GOTW_STACK_MAX_SLOTS", "-1")

		err := Setup()
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.StackMaxSlots)
	})
}
