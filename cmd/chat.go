package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"bizbot/internal/entities"
	"bizbot/internal/usecases"

	"github.com/spf13/cobra"
)

func NewChatCommand() *cobra.Command {
	var idea, name string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Send a single message to the assistant and print the reply",
		Example: `  bizbot chat "give me the steps" --idea "coffee shop"
  bizbot chat "create an instagram post" --idea "food truck" --name "Rolling Bites" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, generator, err := setup(cmd)
			if err != nil {
				return err
			}
			service := usecases.NewMessageService(generator, nil)
			service.SetNameCount(config.NameCount)

			resp := service.Reply(entities.Message{
				Content:      strings.Join(args, " "),
				Platform:     "cli",
				BusinessIdea: strings.TrimSpace(idea),
				BusinessName: strings.TrimSpace(name),
			})

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			_, err = fmt.Fprintln(out, usecases.FormatReply(resp))
			return err
		},
	}

	cmd.Flags().StringVar(&idea, "idea", "", "Business idea, e.g. \"coffee shop\"")
	cmd.Flags().StringVar(&name, "name", "", "Business name, used for logos and social posts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response envelope as JSON")

	return cmd
}
