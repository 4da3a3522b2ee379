// Package cmd implements the gotw command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/constant"
	"github.com/gotw-cli/gotw/icon"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/log"
	"github.com/gotw-cli/gotw/style"
	"github.com/gotw-cli/gotw/tui"
	"github.com/gotw-cli/gotw/util"
	"github.com/gotw-cli/gotw/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (plain, emoji, nerd, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().IntP("max-slots", "m", 0, "Limit the number of slots the session stack may allocate, 0 for no limit")
	lo.Must0(viper.BindPFlag(key.StackMaxSlots, rootCmd.PersistentFlags().Lookup("max-slots")))

	rootCmd.PersistentFlags().BoolP("persist", "P", true, "Save the session stack between runs")
	lo.Must0(viper.BindPFlag(key.SessionPersist, rootCmd.PersistentFlags().Lookup("persist")))

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd opens the interactive console when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A growable stack you can drive from the shell, Lua or a console",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - A growable stack you can drive from the shell, Lua or a console"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(tui.Run())
	},
}

// Execute wires the command tree and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
