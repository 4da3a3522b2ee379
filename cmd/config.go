package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/config"
	"github.com/gotw-cli/gotw/constant"
	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/icon"
	"github.com/gotw-cli/gotw/log"
	"github.com/gotw-cli/gotw/style"
	"github.com/gotw-cli/gotw/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// closestKey returns the known configuration key nearest to k by edit distance.
func closestKey(k string) string {
	return lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

func errUnknownKey(k string) error {
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closestKey(k)),
	)
}

func mustKnowKey(k string) config.Field {
	field, ok := config.Default[k]
	if !ok {
		handleErr(errUnknownKey(k))
	}
	return field
}

// parseValue converts raw into the type of the field's default value.
func parseValue(field config.Field, raw string) (any, error) {
	switch field.Value.(type) {
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", field.Key, raw)
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", field.Key, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

func writeConfig() {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		handleErr(viper.SafeWriteConfig())
	default:
		handleErr(err)
	}
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field {
				return mustKnowKey(k)
			})
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			switch {
			case a.Key < b.Key:
				return -1
			case a.Key > b.Key:
				return 1
			}
			return 0
		})

		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())

			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		mustKnowKey(args[0])
		cmd.Println(viper.Get(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Change the value of a key and write it to the config file",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := mustKnowKey(args[0])

		v, err := parseValue(field, args[1])
		handleErr(err)

		viper.Set(field.Key, v)
		writeConfig()
		log.Infof("config %s set to %v", field.Key, v)

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(fmt.Sprint(v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a key, or every key, to its default value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		switch {
		case all:
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
		case len(args) == 1:
			field := mustKnowKey(args[0])
			viper.Set(field.Key, field.Value)
		default:
			handleErr(errors.New("a key or --all is required"))
		}

		writeConfig()

		what := "all config values"
		if !all {
			what = style.Fg(color.Purple)(args[0])
		}
		fmt.Printf("%s reset %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), what)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		fmt.Printf(
			"%s deleted %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			configFilePath(),
		)
	},
}
