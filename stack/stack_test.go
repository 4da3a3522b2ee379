package stack

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func value[T any](v T) func() (T, error) {
	return func() (T, error) { return v, nil }
}

func drain[T any](s *Stack[T]) []T {
	var out []T
	for !s.Empty() {
		v, err := s.Pop()
		So(err, ShouldBeNil)
		out = append(out, v)
	}
	return out
}

func TestStack(t *testing.T) {
	Convey("Given a new stack", t, func() {
		s := New[int]()

		Convey("It is empty", func() {
			So(s.Empty(), ShouldBeTrue)
			So(s.Size(), ShouldEqual, 0)
			So(s.Capacity(), ShouldEqual, 0)
		})

		Convey("Popping fails and leaves it empty", func() {
			_, err := s.Pop()
			So(err, ShouldEqual, ErrEmptyContainer)
			So(s.Empty(), ShouldBeTrue)

			_, err = s.Pop()
			So(err, ShouldEqual, ErrEmptyContainer)
			So(s.Size(), ShouldEqual, 0)
		})

		Convey("When pushing once", func() {
			So(s.Push(1), ShouldBeNil)
			So(s.Size(), ShouldEqual, 1)
			So(s.Capacity(), ShouldEqual, 2)
		})

		Convey("When pushing 1, 2, 3, 4", func() {
			for i := 1; i <= 4; i++ {
				So(s.Push(i), ShouldBeNil)
			}
			So(s.Size(), ShouldEqual, 4)

			Convey("Pop returns the last pushed value", func() {
				v, err := s.Pop()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 4)
				So(s.Size(), ShouldEqual, 3)
			})
		})

		Convey("When pushing and popping", func() {
			So(s.Push(1), ShouldBeNil)
			v, err := s.Pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1)
			So(s.Empty(), ShouldBeTrue)

			So(s.Push(1), ShouldBeNil)
			So(s.Push(2), ShouldBeNil)
			So(s.Push(3), ShouldBeNil)
			v, err = s.Pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 3)
			So(s.Empty(), ShouldBeFalse)
			So(s.Size(), ShouldEqual, 2)
		})

		Convey("When pushing many values", func() {
			const count = 100000
			var err error
			for i := 0; i < count && err == nil; i++ {
				err = s.Push(i)
			}
			So(err, ShouldBeNil)
			So(s.Size(), ShouldEqual, count)

			Convey("They pop in reverse order", func() {
				mismatch := -1
				for i := count - 1; i >= 0; i-- {
					v, err := s.Pop()
					if err != nil || v != i {
						mismatch = i
						break
					}
				}
				So(mismatch, ShouldEqual, -1)
				So(s.Size(), ShouldEqual, 0)
				So(s.Empty(), ShouldBeTrue)
			})
		})

		Convey("Emplace stores the constructed value", func() {
			So(s.Emplace(value(7)), ShouldBeNil)
			v, err := s.Pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 7)
		})
	})

	Convey("The zero value is usable", t, func() {
		var s Stack[string]
		So(s.Empty(), ShouldBeTrue)
		So(s.Push("a"), ShouldBeNil)
		So(drain(&s), ShouldResemble, []string{"a"})
	})
}

func TestGrowth(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		s := New[int]()

		Convey("Capacity only grows when full, by (c+1)*2", func() {
			var seen []int
			for i := 0; i < 40; i++ {
				before := s.Capacity()
				full := s.Size() == before

				So(s.Push(i), ShouldBeNil)

				if full {
					So(s.Capacity(), ShouldEqual, (before+1)*2)
					seen = append(seen, s.Capacity())
				} else {
					So(s.Capacity(), ShouldEqual, before)
				}
			}
			So(seen, ShouldResemble, []int{2, 6, 14, 30, 62})
		})

		Convey("Copying it yields another empty stack", func() {
			c, err := s.Copy()
			So(err, ShouldBeNil)
			So(c, ShouldNotBeNil)
			So(c.Capacity(), ShouldEqual, 0)
			So(c.Empty(), ShouldBeTrue)
			So(c, ShouldNotPointTo, s)
		})

		Convey("NextCapacity follows the formula", func() {
			So(NextCapacity(0), ShouldEqual, 2)
			So(NextCapacity(2), ShouldEqual, 6)
			So(NextCapacity(6), ShouldEqual, 14)
		})
	})
}

func TestReserve(t *testing.T) {
	Convey("Given a stack holding 1, 2, 3", t, func() {
		s := New[int]()
		for i := 1; i <= 3; i++ {
			So(s.Push(i), ShouldBeNil)
		}
		So(s.Capacity(), ShouldEqual, 6)

		Convey("Reserving more keeps the elements", func() {
			So(s.Reserve(100), ShouldBeNil)
			So(s.Capacity(), ShouldEqual, 100)
			So(drain(s), ShouldResemble, []int{3, 2, 1})
		})

		Convey("Reserving the same capacity is a no-op", func() {
			So(s.Reserve(6), ShouldBeNil)
			So(s.Capacity(), ShouldEqual, 6)
			So(s.Size(), ShouldEqual, 3)
		})

		Convey("Reserving less fails without shrinking", func() {
			err := s.Reserve(4)
			So(errors.Is(err, ErrCapacityShrink), ShouldBeTrue)
			So(s.Capacity(), ShouldEqual, 6)
			So(s.Size(), ShouldEqual, 3)
		})

		Convey("Pushing after a reserve does not grow", func() {
			So(s.Reserve(10), ShouldBeNil)
			for i := 4; i <= 10; i++ {
				So(s.Push(i), ShouldBeNil)
			}
			So(s.Capacity(), ShouldEqual, 10)
		})
	})
}

func TestDestroy(t *testing.T) {
	Convey("Given a stack of tracked elements", t, func() {
		var log []int
		s := New[tracked]()
		for i := 1; i <= 3; i++ {
			So(s.Emplace(value(tracked{id: i, log: &log})), ShouldBeNil)
		}
		log = nil

		Convey("Destroy destructs from the top down and frees the buffer", func() {
			s.Destroy()
			So(log, ShouldResemble, []int{3, 2, 1})
			So(s.Empty(), ShouldBeTrue)
			So(s.Capacity(), ShouldEqual, 0)

			Convey("And the stack can be reused", func() {
				So(s.Emplace(value(tracked{id: 9, log: &log})), ShouldBeNil)
				So(s.Size(), ShouldEqual, 1)
			})
		})

		Convey("Pop hands the element over without destroying it", func() {
			v, err := s.Pop()
			So(err, ShouldBeNil)
			So(v.id, ShouldEqual, 3)
			So(log, ShouldBeEmpty)
		})
	})
}
