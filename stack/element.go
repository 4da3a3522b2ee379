package stack

import "github.com/samber/mo"

// Copier is implemented by element types whose copies may fail.
type Copier[T any] interface {
	Copy() (T, error)
}

// Mover is implemented by element types that can hand their contents to a new value without failing.
// The receiver must be left empty; it is not destroyed afterwards.
type Mover[T any] interface {
	Move() T
}

// Destroyer is implemented by element types that release resources when their slot is destructed.
type Destroyer interface {
	Destroy()
}

// transfer is how elements travel from one buffer to another.
type transfer int

const (
	assignTransfer transfer = iota
	copyTransfer
	moveTransfer
)

// traits records which element capabilities the static type T offers.
type traits[T any] struct {
	copier, mover, destroyer bool
}

func traitsOf[T any]() traits[T] {
	var zero T
	v := any(zero)

	_, copier := v.(Copier[T])
	_, mover := v.(Mover[T])
	_, destroyer := v.(Destroyer)

	return traits[T]{copier: copier, mover: mover, destroyer: destroyer}
}

// strategy picks move when it cannot fail, copy otherwise.
func (t traits[T]) strategy() transfer {
	switch {
	case t.mover:
		return moveTransfer
	case t.copier:
		return copyTransfer
	default:
		return assignTransfer
	}
}

func (t traits[T]) copy(v T) (T, error) {
	if t.copier {
		return any(v).(Copier[T]).Copy()
	}
	return v, nil
}

func (t traits[T]) move(v T) T {
	if t.mover {
		return any(v).(Mover[T]).Move()
	}
	return v
}

func (t traits[T]) destroy(v T) {
	if t.destroyer {
		any(v).(Destroyer).Destroy()
	}
}

// destroyAll destructs live slots from the top down and leaves them empty.
func (t traits[T]) destroyAll(slots []mo.Option[T]) {
	for i := len(slots) - 1; i >= 0; i-- {
		if v, ok := slots[i].Get(); ok {
			t.destroy(v)
		}
		slots[i] = mo.None[T]()
	}
}
