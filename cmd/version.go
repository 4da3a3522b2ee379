package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/constant"
	"github.com/gotw-cli/gotw/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
}

const versionTemplate = `{{ cyan "▇▇▇" }} {{ cyan .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := struct {
			App, Version, Revision, BuiltAt, BuiltBy, OS, Arch string
		}{
			App:      constant.App,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
		}

		t, err := template.New("version").Funcs(template.FuncMap{
			"faint": style.Faint,
			"bold":  style.Bold,
			"cyan":  style.Fg(color.Cyan),
		}).Parse(versionTemplate)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), info))
	},
}
