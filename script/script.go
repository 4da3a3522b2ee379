// Package script runs Lua programs that build and inspect stacks.
package script

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gotw-cli/gotw/constant"
	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/log"
	"github.com/gotw-cli/gotw/util"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

type compiled struct {
	modTime time.Time
	proto   *lua.FunctionProto
}

// protos caches compiled chunks by path. An entry is reused while the file's modification time is unchanged.
var protos sync.Map

// Run executes the Lua script at path. Output of print goes to out.
func Run(path string, out io.Writer) error {
	proto, err := compile(path)
	if err != nil {
		return err
	}

	L := newState(out)
	defer L.Close()

	log.WithFields(logrus.Fields{"script": path}).Debug("running script")

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// RunString executes src as a chunk called name. Output of print goes to out.
func RunString(name, src string, out io.Writer) error {
	L := newState(out)
	defer L.Close()

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return err
	}

	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

func compile(path string) (*lua.FunctionProto, error) {
	info, err := filesystem.API().Stat(path)
	if err != nil {
		return nil, err
	}

	if cached, ok := protos.Load(path); ok {
		if c := cached.(compiled); c.modTime.Equal(info.ModTime()) {
			return c.proto, nil
		}
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", util.FileStem(path), err)
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", util.FileStem(path), err)
	}

	protos.Store(path, compiled{modTime: info.ModTime(), proto: proto})
	return proto, nil
}

func newState(out io.Writer) *lua.LState {
	L := lua.NewState()
	if viper.GetBool(key.ScriptPreloadLibs) {
		libs.Preload(L)
	}

	L.PreloadModule(constant.ScriptModule, Loader)
	L.SetGlobal("print", L.NewFunction(printer(out)))
	return L
}

func printer(out io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		args := make([]string, L.GetTop())
		for i := range args {
			args[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}

		_, _ = fmt.Fprintln(out, strings.Join(args, "\t"))
		return 0
	}
}
