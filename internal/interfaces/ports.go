package interfaces

// Messenger delivers a rendered reply to a chat participant
type Messenger interface {
	SendMessage(to, content string) error
}
