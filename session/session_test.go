package session

import (
	"errors"
	"testing"

	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/stack"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func reset() {
	viper.Set(key.SessionPersist, true)
	viper.Set(key.StackMaxSlots, 0)
	viper.Set(key.StackInitialCapacity, 0)
	So(Drop(), ShouldBeNil)
}

func TestSession(t *testing.T) {
	Convey("Given no saved session", t, func() {
		reset()

		Convey("Load returns an empty stack", func() {
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.Empty(), ShouldBeTrue)
			So(s.Capacity(), ShouldEqual, 0)
		})

		Convey("Load honours the initial capacity", func() {
			viper.Set(key.StackInitialCapacity, 5)
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.Capacity(), ShouldEqual, 5)
		})

		Convey("When a stack is saved", func() {
			s, err := Load()
			So(err, ShouldBeNil)
			for _, v := range []string{"a", "b", "c"} {
				So(s.Push(v), ShouldBeNil)
			}
			So(Save(s), ShouldBeNil)

			Convey("The saved stack is not changed by saving", func() {
				So(s.Size(), ShouldEqual, 3)
				So(s.Capacity(), ShouldEqual, 6)
				So(Items(s), ShouldResemble, []string{"a", "b", "c"})
			})

			Convey("Load restores elements and capacity", func() {
				loaded, err := Load()
				So(err, ShouldBeNil)
				So(loaded.Capacity(), ShouldEqual, 6)
				So(Items(loaded), ShouldResemble, []string{"a", "b", "c"})

				top, err := loaded.Pop()
				So(err, ShouldBeNil)
				So(top, ShouldEqual, "c")
			})

			Convey("Drop forgets it", func() {
				So(Drop(), ShouldBeNil)
				loaded, err := Load()
				So(err, ShouldBeNil)
				So(loaded.Empty(), ShouldBeTrue)
			})

			Convey("Nothing is read back when persistence is off", func() {
				viper.Set(key.SessionPersist, false)
				loaded, err := Load()
				So(err, ShouldBeNil)
				So(loaded.Empty(), ShouldBeTrue)
			})
		})

		Convey("Saving with persistence off keeps the previous snapshot", func() {
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.Push("kept"), ShouldBeNil)
			So(Save(s), ShouldBeNil)

			viper.Set(key.SessionPersist, false)
			So(s.Push("lost"), ShouldBeNil)
			So(Save(s), ShouldBeNil)

			viper.Set(key.SessionPersist, true)
			loaded, err := Load()
			So(err, ShouldBeNil)
			So(Items(loaded), ShouldResemble, []string{"kept"})
		})

		Convey("A slot limit bounds growth", func() {
			viper.Set(key.StackMaxSlots, 2)
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.Push("a"), ShouldBeNil)
			So(s.Push("b"), ShouldBeNil)

			err = s.Push("c")
			So(errors.Is(err, stack.ErrAllocation), ShouldBeTrue)
			So(Items(s), ShouldResemble, []string{"a", "b"})
		})
	})

	Convey("Items of an empty stack is empty", t, func() {
		So(Items(stack.New[string]()), ShouldBeEmpty)
	})
}
