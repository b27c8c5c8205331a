package usecases

import (
	"fmt"
	"strings"

	"bizbot/internal/entities"
	"bizbot/internal/interfaces"

	"github.com/rs/zerolog/log"
)

// DefaultNameCount is how many random names a name request asks for
const DefaultNameCount = 5

const welcomeMessage = `Welcome to your Small Business Assistant! 🚀

I'm here to help you turn your business idea into reality. Here's what I can do for you:

📋 **Business Planning**: Get step-by-step guidance for starting your business
🏷️ **Name Generation**: Creative and catchy business names
🎨 **Logo Creation**: Detailed prompts for logo design
📱 **Social Media**: LinkedIn posts, Instagram ads, and Facebook content
💡 **Innovation**: Fresh ideas to make your business stand out

Just tell me your business idea and what you'd like help with!

Examples:
- "I want to start a coffee shop, give me the steps"
- "Suggest names for my online tutoring business"
- "Create a LinkedIn post for my consulting firm"
- "Give me innovative ideas for my bakery"
`

// rule is one entry of the dispatch table. content is the lower-cased message.
type rule struct {
	name    string
	matches func(content string) bool
	handle  func(msg entities.Message, content string) entities.Response
}

// MessageService answers chat messages with a priority-ordered rule table:
// steps → names → logo → social media → ideas → welcome.
type MessageService struct {
	messengerClient interfaces.Messenger
	generator       *ContentGenerator
	nameCount       int
	rules           []rule
}

// NewMessageService creates the rule-based message service. messenger may be nil
// when replies are only returned synchronously (HTTP, CLI).
func NewMessageService(generator *ContentGenerator, messenger interfaces.Messenger) *MessageService {
	s := &MessageService{
		messengerClient: messenger,
		generator:       generator,
		nameCount:       DefaultNameCount,
	}
	s.rules = []rule{
		{name: "steps", matches: keywordMatcher("steps", "plan", "how to start"), handle: s.handleSteps},
		{name: "names", matches: isNameRequest, handle: s.handleNames},
		{name: "logo", matches: keywordMatcher("logo"), handle: s.handleLogo},
		{name: "social_media", matches: keywordMatcher("linkedin", "instagram", "facebook", "social media"), handle: s.handleSocial},
		{name: "ideas", matches: keywordMatcher("ideas", "innovative", "suggestions"), handle: s.handleIdeas},
	}
	return s
}

// SetNameCount overrides how many names a name request generates
func (s *MessageService) SetNameCount(n int) {
	if n > 0 {
		s.nameCount = n
	}
}

// RuleNames lists the dispatch rules in the order they are tried
func (s *MessageService) RuleNames() []string {
	names := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		names = append(names, r.name)
	}
	return names
}

// Reply runs the first matching rule and returns its response envelope.
// A message matching no rule gets the welcome text.
func (s *MessageService) Reply(msg entities.Message) entities.Response {
	content := strings.ToLower(msg.Content)
	for _, r := range s.rules {
		if r.matches(content) {
			log.Debug().Str("rule", r.name).Str("platform", msg.Platform).Str("from", msg.From).Msg("[BOT] matched rule")
			return r.handle(msg, content)
		}
	}
	log.Debug().Str("rule", "welcome").Str("platform", msg.Platform).Str("from", msg.From).Msg("[BOT] no rule matched")
	return entities.TextResponse(welcomeMessage)
}

// ProcessMessage answers msg and pushes the rendered reply through the messenger
func (s *MessageService) ProcessMessage(msg entities.Message) error {
	return s.sendReply(msg, FormatReply(s.Reply(msg)))
}

func (s *MessageService) sendReply(msg entities.Message, text string) error {
	if s.messengerClient == nil {
		return fmt.Errorf("no messaging client available")
	}
	return s.messengerClient.SendMessage(msg.From, text)
}

func keywordMatcher(keywords ...string) func(string) bool {
	return func(content string) bool {
		return containsAny(content, keywords...)
	}
}

func isNameRequest(content string) bool {
	return strings.Contains(content, "name") && containsAny(content, "suggest", "generate")
}

func (s *MessageService) handleSteps(msg entities.Message, _ string) entities.Response {
	if msg.BusinessIdea == "" {
		return entities.TextResponse("I'd love to help you create a business plan! Could you tell me more about your business idea?")
	}
	return entities.Response{
		Message: fmt.Sprintf("Here's a comprehensive step-by-step plan for your %s business:", msg.BusinessIdea),
		Type:    entities.TypeSteps,
		Data:    s.generator.GenerateSteps(msg.BusinessIdea),
	}
}

func (s *MessageService) handleNames(msg entities.Message, _ string) entities.Response {
	if msg.BusinessIdea == "" {
		return entities.TextResponse("I'd be happy to suggest some creative names! What's your business idea?")
	}
	return entities.Response{
		Message: fmt.Sprintf("Here are some creative and catchy names for your %s business:", msg.BusinessIdea),
		Type:    entities.TypeNames,
		Data:    s.generator.GenerateNames(msg.BusinessIdea, s.nameCount),
	}
}

func (s *MessageService) handleLogo(msg entities.Message, _ string) entities.Response {
	if msg.BusinessName == "" || msg.BusinessIdea == "" {
		return entities.TextResponse("To create a logo, I'll need your business name and idea. Could you provide both?")
	}
	return entities.Response{
		Message: "Here's a detailed prompt for creating your logo. You can use this with AI image generators like DALL-E, Midjourney, or Stable Diffusion:",
		Type:    entities.TypeLogoPrompt,
		Data:    s.generator.GenerateLogoPrompt(msg.BusinessName, msg.BusinessIdea),
	}
}

func (s *MessageService) handleSocial(msg entities.Message, content string) entities.Response {
	if msg.BusinessIdea == "" {
		return entities.TextResponse("I'd love to create social media content for you! What's your business idea?")
	}
	name := msg.BusinessName
	if name == "" {
		name = TitleCase(msg.BusinessIdea) + " Business"
	}
	post := s.generator.GenerateSocialContent(detectPlatform(content), name, msg.BusinessIdea)
	return entities.Response{
		Message: fmt.Sprintf("Here's your %s:", post.Format),
		Type:    entities.TypeSocialMedia,
		Data:    post,
	}
}

func (s *MessageService) handleIdeas(msg entities.Message, _ string) entities.Response {
	if msg.BusinessIdea == "" {
		return entities.TextResponse("I'd be happy to suggest innovative ideas! What's your business concept?")
	}
	return entities.Response{
		Message: fmt.Sprintf("Here are some innovative ideas to enhance your %s business:", msg.BusinessIdea),
		Type:    entities.TypeIdeas,
		Data:    s.generator.GenerateIdeas(msg.BusinessIdea),
	}
}

// detectPlatform returns the first platform named in content, LinkedIn when only "social media" was said
func detectPlatform(content string) entities.Platform {
	for _, p := range entities.PlatformOrder {
		if strings.Contains(content, string(p)) {
			return p
		}
	}
	return entities.PlatformLinkedIn
}
