// Package config loads gotw settings from gotw.toml, GOTW_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gotw-cli/gotw/constant"
	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps dotted keys such as stack.max_slots onto the GOTW_STACK_MAX_SLOTS form.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// counts lists the keys holding slot or entry counts, which must not be negative.
var counts = []string{
	key.StackMaxSlots,
	key.StackInitialCapacity,
	key.SessionJournalSize,
}

// Setup wires defaults, GOTW_* variables and the gotw.toml found under where.Config into viper.
// A missing file is fine; a malformed one or a negative count is an error.
func Setup() error {
	viper.SetFs(filesystem.API())
	bindEnv()
	setDefaults()

	if err := readFile(where.Config()); err != nil {
		return err
	}
	return validate()
}

func bindEnv() {
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}
}

func setDefaults() {
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}
}

func readFile(dir string) error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.AddConfigPath(dir)

	err := viper.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s.toml: %w", constant.App, err)
	}
	return nil
}

func validate() error {
	for _, name := range counts {
		if n := viper.GetInt(name); n < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, n)
		}
	}
	return nil
}
