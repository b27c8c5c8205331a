package main

import (
	"fmt"
	"io"
	"strings"

	"bizbot/internal/usecases"

	"github.com/spf13/cobra"
)

var demoIdeas = []string{
	"coffee shop",
	"online tutoring service",
	"handmade jewelry business",
	"food truck",
}

const (
	demoStepsShown = 4
	demoNameCount  = 4
)

func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Generate plans, names and ideas for a few sample businesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, generator, err := setup(cmd)
			if err != nil {
				return err
			}
			runDemo(cmd.OutOrStdout(), generator, demoIdeas)
			return nil
		},
	}
}

func runDemo(w io.Writer, generator *usecases.ContentGenerator, ideas []string) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w, "🤖 Small Business Assistant Chatbot - Demo")
	fmt.Fprintln(w, rule)

	for _, idea := range ideas {
		fmt.Fprintf(w, "\n🚀 Business Idea: %s\n", usecases.TitleCase(idea))
		fmt.Fprintln(w, strings.Repeat("-", 40))

		fmt.Fprintln(w, "\n📋 Business Steps:")
		steps := generator.GenerateSteps(idea)
		shown := min(demoStepsShown, len(steps))
		for _, step := range steps[:shown] {
			fmt.Fprintf(w, "  %s\n", step)
		}
		fmt.Fprintf(w, "  ... and %d more comprehensive steps\n", len(steps)-shown)

		fmt.Fprintln(w, "\n🏷️ Creative Business Names:")
		for _, name := range generator.GenerateNames(idea, demoNameCount) {
			fmt.Fprintf(w, "  • %s\n", name)
		}

		fmt.Fprintln(w, "\n💡 Innovation Ideas:")
		for i, innovation := range generator.GenerateIdeas(idea) {
			fmt.Fprintf(w, "  %d. %s\n", i+1, innovation)
		}

		fmt.Fprintln(w, "\n"+rule)
	}

	fmt.Fprintln(w, "\n✨ Demo completed! Run `bizbot serve` for the HTTP API and Telegram bot.")
}
