package cmd

import (
	"fmt"

	"github.com/sagekit/sage/internal/knowledge"
	"github.com/sagekit/sage/internal/llm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "sage",
	Short: "AI mentor for technical questions",
	Long: "Sage — terminal AI mentor that tailors technical answers to what you\n" +
		"already know: it detects the domain, probes your experience, finds your\n" +
		"knowledge gaps and plans the answer around them.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger: silent by default, development
// output with --verbose.
func newLogger(cmd *cobra.Command) *zap.Logger {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	return zap.NewNop()
}

// newGenerator wires the pack generator from environment config. Provider
// "mock" (the default without API keys) means the deterministic template.
func newGenerator(cmd *cobra.Command, log *zap.Logger) (knowledge.Generator, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("LLM config: %w", err)
	}
	if cfg.Provider == "mock" {
		return knowledge.TemplateGenerator{}, nil
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	return knowledge.NewLLMGenerator(provider, log), nil
}
