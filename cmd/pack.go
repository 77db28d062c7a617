package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sagekit/sage/internal/knowledge"
)

var packCmd = &cobra.Command{
	Use:   "pack [domain]",
	Short: "Print the knowledge pack for a domain",
	Long: "Generates (or, without an LLM configured, templates) the domain pack —\n" +
		"taxonomy, glossary, question bank and tool recipes — and prints it as JSON.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain := strings.Join(args, " ")

		log := newLogger(cmd)
		defer log.Sync() //nolint:errcheck

		gen, err := newGenerator(cmd, log)
		if err != nil {
			return err
		}

		pack, err := gen.Generate(cmd.Context(), domain)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "generation failed, falling back to template:", err)
			pack = knowledge.Template(domain)
		}
		if err := knowledge.Validate(pack); err != nil {
			return fmt.Errorf("generated pack is invalid: %w", err)
		}

		out, err := json.MarshalIndent(pack, "", "  ")
		if err != nil {
			return fmt.Errorf("encode pack: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}
