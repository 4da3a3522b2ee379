package stack

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var copies, moves int

func resetCounters() {
	copies, moves = 0, 0
}

// counter counts how often it is copied and moved.
type counter struct {
	t string
}

func (c counter) Copy() (counter, error) {
	copies++
	return counter{t: c.t}, nil
}

func (c counter) Move() counter {
	moves++
	return counter{t: c.t}
}

func TestMoves(t *testing.T) {
	Convey("Given a stack holding foo and bar", t, func() {
		s := New[counter]()
		So(s.Emplace(value(counter{t: "foo"})), ShouldBeNil)
		So(s.Emplace(value(counter{t: "bar"})), ShouldBeNil)
		resetCounters()

		Convey("Growth moves instead of copying", func() {
			So(s.Emplace(value(counter{t: "buz"})), ShouldBeNil)
			So(copies, ShouldEqual, 0)
			So(moves, ShouldEqual, 2)
		})

		Convey("Copies are independent", func() {
			c, err := s.Copy()
			So(err, ShouldBeNil)
			So(copies, ShouldEqual, 2)
			So(c.Capacity(), ShouldEqual, s.Capacity())

			So(drain(c), ShouldResemble, []counter{{t: "bar"}, {t: "foo"}})
			So(drain(s), ShouldResemble, []counter{{t: "bar"}, {t: "foo"}})
		})

		Convey("Mutating a copy does not touch the original", func() {
			c, err := s.Copy()
			So(err, ShouldBeNil)
			So(c.Push(counter{t: "baz"}), ShouldBeNil)
			_, err = s.Pop()
			So(err, ShouldBeNil)

			So(c.Size(), ShouldEqual, 3)
			So(s.Size(), ShouldEqual, 1)
		})

		Convey("Moving hands over the buffer without touching elements", func() {
			capacity := s.Capacity()
			m := s.Move()

			So(copies, ShouldEqual, 0)
			So(moves, ShouldEqual, 0)
			So(s.Empty(), ShouldBeTrue)
			So(s.Capacity(), ShouldEqual, 0)
			So(m.Capacity(), ShouldEqual, capacity)
			So(drain(m), ShouldResemble, []counter{{t: "bar"}, {t: "foo"}})
		})

		Convey("Move assignment swaps contents", func() {
			d := New[counter]()
			So(d.Emplace(value(counter{t: "qux"})), ShouldBeNil)
			resetCounters()

			d.MoveAssign(s)
			So(copies, ShouldEqual, 0)
			So(moves, ShouldEqual, 0)
			So(drain(d), ShouldResemble, []counter{{t: "bar"}, {t: "foo"}})
			So(drain(s), ShouldResemble, []counter{{t: "qux"}})
		})

		Convey("Copy assignment replaces contents", func() {
			d := New[counter]()
			So(d.Emplace(value(counter{t: "qux"})), ShouldBeNil)

			So(d.Assign(s), ShouldBeNil)
			So(drain(d), ShouldResemble, []counter{{t: "bar"}, {t: "foo"}})
			So(s.Size(), ShouldEqual, 2)
		})

		Convey("Self assignment keeps contents", func() {
			So(s.Assign(s), ShouldBeNil)
			So(drain(s), ShouldResemble, []counter{{t: "bar"}, {t: "foo"}})
		})
	})
}

func TestNested(t *testing.T) {
	Convey("Given a stack of stacks", t, func() {
		inner := New[int]()
		So(inner.Push(1), ShouldBeNil)
		So(inner.Push(2), ShouldBeNil)

		outer := New[*Stack[int]]()
		So(outer.Push(inner), ShouldBeNil)

		Convey("Push copies the inner stack deeply", func() {
			So(inner.Push(3), ShouldBeNil)

			top, err := outer.Pop()
			So(err, ShouldBeNil)
			So(drain(top), ShouldResemble, []int{2, 1})
		})

		Convey("Growth moves inner stacks", func() {
			for i := 0; i < 5; i++ {
				So(outer.Emplace(value(New[int]())), ShouldBeNil)
			}
			So(outer.Capacity(), ShouldEqual, 6)

			var bottom *Stack[int]
			for !outer.Empty() {
				bottom, _ = outer.Pop()
			}
			So(drain(bottom), ShouldResemble, []int{2, 1})
		})
	})
}
