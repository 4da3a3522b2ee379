package cmd

import (
	"os"

	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/config"
	"github.com/gotw-cli/gotw/style"
	"github.com/gotw-cli/gotw/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")

	envCmd.SetOut(os.Stdout)
}

// envNames lists every environment variable the application reads, sorted.
func envNames() []string {
	names := lo.Map(lo.Values(config.Default), func(f config.Field, _ int) string {
		return f.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables gotw reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
