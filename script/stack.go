package script

import (
	"fmt"

	"github.com/gotw-cli/gotw/stack"
	lua "github.com/yuin/gopher-lua"
)

const metatableName = "gotw.stack"

type luaStack = stack.Stack[lua.LValue]

// Loader opens the stack module. Register it with PreloadModule.
func Loader(L *lua.LState) int {
	mt := L.NewTypeMetatable(metatableName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__len", L.NewFunction(stackSize))
	L.SetField(mt, "__tostring", L.NewFunction(stackString))

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":           newStack,
		"next_capacity": nextCapacity,
	})

	L.Push(mod)
	return 1
}

var methods = map[string]lua.LGFunction{
	"push":     stackPush,
	"pop":      stackPop,
	"size":     stackSize,
	"capacity": stackCapacity,
	"empty":    stackEmpty,
	"reserve":  stackReserve,
	"copy":     stackCopy,
	"move":     stackMove,
	"assign":   stackAssign,
	"swap":     stackSwap,
	"destroy":  stackDestroy,
}

func wrap(L *lua.LState, s *luaStack) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(metatableName))
	return ud
}

func check(L *lua.LState, n int) *luaStack {
	ud := L.CheckUserData(n)
	if s, ok := ud.Value.(*luaStack); ok {
		return s
	}

	L.ArgError(n, "stack expected")
	return nil
}

func raise(L *lua.LState, err error) {
	L.RaiseError("%s", err.Error())
}

// stack.new([limit]) creates an empty stack, drawing from a slot budget when limit is positive.
func newStack(L *lua.LState) int {
	var s *luaStack
	if limit := L.OptInt(1, 0); limit > 0 {
		s = stack.New[lua.LValue](stack.WithAllocator(stack.NewBudget(limit)))
	} else {
		s = stack.New[lua.LValue]()
	}

	L.Push(wrap(L, s))
	return 1
}

func nextCapacity(L *lua.LState) int {
	L.Push(lua.LNumber(stack.NextCapacity(L.CheckInt(1))))
	return 1
}

func stackPush(L *lua.LState) int {
	s := check(L, 1)
	for i := 2; i <= L.GetTop(); i++ {
		if err := s.Push(L.Get(i)); err != nil {
			raise(L, err)
		}
	}
	return 0
}

func stackPop(L *lua.LState) int {
	v, err := check(L, 1).Pop()
	if err != nil {
		raise(L, err)
	}

	L.Push(v)
	return 1
}

func stackSize(L *lua.LState) int {
	L.Push(lua.LNumber(check(L, 1).Size()))
	return 1
}

func stackCapacity(L *lua.LState) int {
	L.Push(lua.LNumber(check(L, 1).Capacity()))
	return 1
}

func stackEmpty(L *lua.LState) int {
	L.Push(lua.LBool(check(L, 1).Empty()))
	return 1
}

func stackReserve(L *lua.LState) int {
	if err := check(L, 1).Reserve(L.CheckInt(2)); err != nil {
		raise(L, err)
	}
	return 0
}

func stackCopy(L *lua.LState) int {
	c, err := check(L, 1).Copy()
	if err != nil {
		raise(L, err)
	}

	L.Push(wrap(L, c))
	return 1
}

func stackMove(L *lua.LState) int {
	L.Push(wrap(L, check(L, 1).Move()))
	return 1
}

func stackAssign(L *lua.LState) int {
	if err := check(L, 1).Assign(check(L, 2)); err != nil {
		raise(L, err)
	}
	return 0
}

func stackSwap(L *lua.LState) int {
	check(L, 1).Swap(check(L, 2))
	return 0
}

func stackDestroy(L *lua.LState) int {
	check(L, 1).Destroy()
	return 0
}

func stackString(L *lua.LState) int {
	s := check(L, 1)
	L.Push(lua.LString(fmt.Sprintf("stack(size=%d, capacity=%d)", s.Size(), s.Capacity())))
	return 1
}
