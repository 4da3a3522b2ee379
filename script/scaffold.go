package script

import (
	"bytes"
	"fmt"
	"os/user"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/gotw-cli/gotw/constant"
	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/util"
	"github.com/gotw-cli/gotw/where"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Scaffold writes a starter script called name into the scripts directory and returns its path.
// An existing script is never overwritten.
func Scaffold(name string) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("invalid script name %q: use letters, digits, dashes and underscores", name)
	}

	target := filepath.Join(where.Scripts(), name+".lua")
	if exists, err := filesystem.API().Exists(target); err != nil {
		return "", err
	} else if exists {
		return "", fmt.Errorf("script %s already exists", target)
	}

	author := "Anonymous"
	if usr, err := user.Current(); err == nil {
		author = usr.Username
	}

	tmpl, err := template.New("script").Funcs(template.FuncMap{
		"repeat": strings.Repeat,
		"plus":   func(a, b int) int { return a + b },
		"max":    util.Max[int],
	}).Parse(constant.ScriptTemplate)
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	err = tmpl.Execute(&b, struct {
		Name, Author, Module string
	}{
		Name:   name,
		Author: author,
		Module: constant.ScriptModule,
	})
	if err != nil {
		return "", err
	}

	if err := filesystem.WriteAtomic(target, b.Bytes(), 0o644); err != nil {
		return "", err
	}

	return target, nil
}
