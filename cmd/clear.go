package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gotw-cli/gotw/icon"
	"github.com/gotw-cli/gotw/session"
	"github.com/gotw-cli/gotw/util"
	"github.com/gotw-cli/gotw/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"session stack", "session", mo.Some("s"), session.Drop},
	{"value journal", "journal", mo.Some("j"), session.Forget},
	{"logs", "logs", mo.Some("l"), deleteDir(where.Logs)},
	{"cache directory", "cache", mo.Some("c"), deleteDir(where.Cache)},
}

// deleteDir removes the directory at location, which may already be gone.
func deleteDir(location func() string) func() error {
	return func() error {
		if err := util.Delete(location()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the session, journal, logs or cache",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
