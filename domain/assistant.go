package domain

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatExchange is a question and the reply it produced.
type ChatExchange struct {
	Question ChatMessage `json:"question"`
	Answer   ChatMessage `json:"answer"`
}
