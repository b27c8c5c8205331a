package main

import (
	"fmt"

	"bizbot/internal/repository"
	"bizbot/internal/usecases"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bizbot",
		Short: "Small business assistant chatbot",
		Long: `bizbot helps turn a business idea into a plan: step-by-step guides, name suggestions,
logo prompts, social media copy and innovation ideas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewChatCommand())
	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewTokenCommand())

	return rootCmd
}

// setup loads config, applies the log level and builds the content generator
func setup(cmd *cobra.Command) (*Config, *usecases.ContentGenerator, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	applyLogLevel(config.LogLevel, debug)

	catalog, err := repository.LoadCatalog(config.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load content catalog: %w", err)
	}
	return config, usecases.NewContentGenerator(catalog, nil), nil
}
