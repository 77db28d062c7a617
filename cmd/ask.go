package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sagekit/sage/internal/engine"
	"github.com/sagekit/sage/internal/mastery"
)

var (
	stageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a technical question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		showStages, _ := cmd.Flags().GetBool("stages")
		seed, _ := cmd.Flags().GetInt64("seed")

		log := newLogger(cmd)
		defer log.Sync() //nolint:errcheck

		gen, err := newGenerator(cmd, log)
		if err != nil {
			return err
		}

		eng := engine.New(gen, engine.Options{
			Oracle: mastery.NewRandomOracle(seed),
			Logger: log,
		})

		var observe func(engine.StageEvent)
		if showStages {
			observe = func(ev engine.StageEvent) {
				fmt.Fprintf(os.Stderr, "%s %s (%s)\n",
					stageStyle.Render("▸"), ev.Stage, ev.Elapsed.Round(time.Millisecond))
			}
		}

		answer, err := eng.RunObserved(cmd.Context(), question, observe)
		if err != nil {
			return err
		}

		fmt.Println(render(answer))
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("stages", false, "Print each pipeline stage as it completes")
	askCmd.Flags().Int64("seed", 1, "Seed for the simulated diagnostic quiz")
}

// render colors markdown headings when stdout is a terminal and leaves the
// text untouched otherwise (pipes, redirects).
func render(answer string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return answer
	}
	lines := strings.Split(answer, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "#") {
			lines[i] = headerStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
