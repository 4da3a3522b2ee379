package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gotw-cli/gotw/color"
	"github.com/gotw-cli/gotw/icon"
	"github.com/gotw-cli/gotw/log"
	"github.com/gotw-cli/gotw/session"
	"github.com/gotw-cli/gotw/stack"
	"github.com/gotw-cli/gotw/style"
	"github.com/gotw-cli/gotw/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// stackOutput is what stack show --json prints.
type stackOutput struct {
	Size     int      `json:"size" jsonschema:"description=Number of live elements,minimum=0"`
	Capacity int      `json:"capacity" jsonschema:"description=Number of allocated slots,minimum=0"`
	Items    []string `json:"items" jsonschema:"description=Elements from bottom to top"`
}

// growthStep records a push that made the stack grow.
type growthStep struct {
	Push     int
	From, To int
}

// growthSteps pushes count values onto a scratch stack and reports every reallocation.
func growthSteps(count int) ([]growthStep, error) {
	s := stack.New[int]()
	defer s.Destroy()

	var steps []growthStep
	for i := 1; i <= count; i++ {
		before := s.Capacity()
		if err := s.Push(i); err != nil {
			return nil, err
		}
		if s.Capacity() != before {
			steps = append(steps, growthStep{Push: i, From: before, To: s.Capacity()})
		}
	}

	return steps, nil
}

func slotBar(s *stack.Stack[string]) string {
	return style.Fg(color.Live)(strings.Repeat("■", s.Size())) +
		style.Fg(color.Allocated)(strings.Repeat("□", s.Capacity()-s.Size()))
}

func summary(s *stack.Stack[string]) string {
	return style.Faint(fmt.Sprintf(
		"%s, %s",
		util.Quantify(s.Size(), "element", "elements"),
		util.Quantify(s.Capacity(), "slot", "slots"),
	))
}

func loadSession() *stack.Stack[string] {
	s, err := session.Load()
	handleErr(err)
	return s
}

func completionJournal(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return session.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(stackCmd)
}

var stackCmd = &cobra.Command{
	Use:     "stack",
	Short:   "Work with the session stack",
	Aliases: []string{"s"},
}

func init() {
	stackCmd.AddCommand(stackPushCmd)
	stackPushCmd.SetOut(os.Stdout)
}

var stackPushCmd = &cobra.Command{
	Use:               "push <values...>",
	Short:             "Push values onto the session stack",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionJournal,
	Run: func(cmd *cobra.Command, args []string) {
		s := loadSession()

		for _, v := range args {
			if err := s.Push(v); err != nil {
				handleErr(fmt.Errorf("push %s: %w", v, err))
			}
		}

		handleErr(session.Save(s))
		handleErr(session.Remember(args...))

		cmd.Printf(
			"%s pushed %s\n%s\n",
			style.Fg(color.Green)(icon.Get(icon.Push)),
			util.Quantify(len(args), "value", "values"),
			summary(s),
		)
	},
}

func init() {
	stackCmd.AddCommand(stackPopCmd)
	stackPopCmd.Flags().IntP("count", "n", 1, "How many values to pop")
	stackPopCmd.SetOut(os.Stdout)
}

var stackPopCmd = &cobra.Command{
	Use:   "pop",
	Short: "Pop values off the session stack and print them",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := loadSession()

		for i := lo.Must(cmd.Flags().GetInt("count")); i > 0; i-- {
			v, err := s.Pop()
			if err != nil {
				handleErr(session.Save(s))
				handleErr(err)
			}
			cmd.Println(v)
		}

		handleErr(session.Save(s))
	},
}

func init() {
	stackCmd.AddCommand(stackShowCmd)
	stackShowCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	stackShowCmd.SetOut(os.Stdout)
}

var stackShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print the session stack from the top down",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := loadSession()
		items := session.Items(s)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(stackOutput{
				Size:     s.Size(),
				Capacity: s.Capacity(),
				Items:    items,
			}))
			return
		}

		for i := len(items) - 1; i >= 0; i-- {
			cmd.Printf("%s %s\n", style.Faint(fmt.Sprintf("%3d", i)), items[i])
		}

		cmd.Println(slotBar(s))
		cmd.Println(summary(s))
	},
}

func init() {
	stackCmd.AddCommand(stackReserveCmd)
	stackReserveCmd.SetOut(os.Stdout)
}

var stackReserveCmd = &cobra.Command{
	Use:   "reserve <capacity>",
	Short: "Grow the session stack to hold at least capacity elements",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		capacity, err := strconv.Atoi(args[0])
		if err != nil {
			handleErr(fmt.Errorf("invalid capacity: %s", args[0]))
		}

		s := loadSession()
		handleErr(s.Reserve(capacity))
		handleErr(session.Save(s))

		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), summary(s))
	},
}

func init() {
	stackCmd.AddCommand(stackGrowthCmd)
	stackGrowthCmd.Flags().IntP("count", "n", 64, "How many values to push")
	stackGrowthCmd.SetOut(os.Stdout)
}

var stackGrowthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Show how capacity grows while pushing onto an empty stack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		steps, err := growthSteps(lo.Must(cmd.Flags().GetInt("count")))
		handleErr(err)

		for _, step := range steps {
			cmd.Printf(
				"%s %s %s %s\n",
				style.Faint(fmt.Sprintf("push %-6d", step.Push)),
				style.Fg(color.Allocated)(strconv.Itoa(step.From)),
				style.Faint("→"),
				style.Fg(color.Live)(strconv.Itoa(step.To)),
			)
		}
	},
}

func init() {
	stackCmd.AddCommand(stackDropCmd)
	stackDropCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var stackDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Forget the saved session stack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: "Destroy every element of the session stack?",
				Default: false,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		handleErr(session.Drop())
		log.Info("session stack dropped")
		fmt.Printf("%s session stack dropped\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	stackCmd.AddCommand(stackSchemaCmd)
}

var stackSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of stack show --json",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.DoNotReference = true

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&stackOutput{})))
	},
}
