package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/icon"
	"github.com/gotw-cli/gotw/open"
	"github.com/gotw-cli/gotw/script"
	"github.com/gotw-cli/gotw/style"
	"github.com/gotw-cli/gotw/util"
	"github.com/gotw-cli/gotw/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// resolveScript finds a script by path, or by name in the scripts directory.
func resolveScript(arg string) string {
	if exists, _ := filesystem.API().Exists(arg); exists {
		return arg
	}

	name := arg
	if !strings.HasSuffix(name, ".lua") {
		name += ".lua"
	}
	return filepath.Join(where.Scripts(), name)
}

// scriptNames lists the stems of the scripts in the scripts directory.
func scriptNames() []string {
	entries, err := filesystem.API().ReadDir(where.Scripts())
	if err != nil {
		return nil
	}

	return lo.FilterMap(entries, func(e os.FileInfo, _ int) (string, bool) {
		return util.FileStem(e.Name()), !e.IsDir() && filepath.Ext(e.Name()) == ".lua"
	})
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Run and scaffold Lua stack scripts",
}

func init() {
	scriptCmd.AddCommand(scriptRunCmd)
	scriptRunCmd.SetOut(os.Stdout)
}

var scriptRunCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a Lua script by path or by name",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return scriptNames(), cobra.ShellCompDirectiveDefault
	},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(script.Run(resolveScript(args[0]), cmd.OutOrStdout()))
	},
}

func init() {
	scriptCmd.AddCommand(scriptNewCmd)
	scriptNewCmd.SetOut(os.Stdout)
}

var scriptNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a starter script in the scripts directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := script.Scaffold(args[0])
		handleErr(err)

		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Lua)), path)
	},
}

func init() {
	scriptCmd.AddCommand(scriptListCmd)
	scriptListCmd.SetOut(os.Stdout)
}

var scriptListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the scripts in the scripts directory",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scriptNames() {
			cmd.Println(name)
		}
	},
}

func init() {
	scriptCmd.AddCommand(scriptEditCmd)
	scriptEditCmd.Flags().StringP("editor", "e", "", "Program to open the script with, defaults to $EDITOR")
}

var scriptEditCmd = &cobra.Command{
	Use:   "edit <script>",
	Short: "Open a script in an editor",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return scriptNames(), cobra.ShellCompDirectiveDefault
	},
	Run: func(cmd *cobra.Command, args []string) {
		editor := lo.Must(cmd.Flags().GetString("editor"))
		if editor == "" {
			editor = os.Getenv("EDITOR")
		}

		handleErr(open.RunWith(resolveScript(args[0]), editor))
	},
}
