package usecases

import (
	"fmt"
	"strings"

	"bizbot/internal/entities"
)

// FormatReply renders a response envelope as plain text for chat platforms and the CLI
func FormatReply(resp entities.Response) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(resp.Message, "\n"))

	switch data := resp.Data.(type) {
	case []string:
		if len(data) == 0 {
			break
		}
		sb.WriteString("\n\n")
		for i, item := range data {
			switch resp.Type {
			case entities.TypeNames:
				sb.WriteString("• " + item)
			case entities.TypeIdeas:
				sb.WriteString(fmt.Sprintf("%d. %s", i+1, item))
			default:
				sb.WriteString(item)
			}
			if i < len(data)-1 {
				sb.WriteString("\n")
			}
		}
	case string:
		sb.WriteString("\n\n" + data)
	case entities.SocialPost:
		sb.WriteString("\n\n" + data.Content)
	}

	return sb.String()
}
