package domain

import (
	"strings"
	"time"
)

// Message is one direction of a 1:1 chat. It belongs to exactly one
// conversation, derived from its sender/receiver pair; the only mutation
// it ever sees is the read-flag transition.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Conversation aggregates both directions of a 1:1 chat under a single
// canonical id. Group chats are not supported.
type Conversation struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
	LastMessage  *Message `json:"last_message,omitempty"`
	UnreadCount  int      `json:"unread_count"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// ConversationID derives the canonical conversation id for a participant
// pair: the two ids sorted lexicographically and joined with "-". The
// result is symmetric, so both directions of a chat share one id.
func ConversationID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// SplitConversationID decomposes a conversation id back into its two
// participant ids.
func SplitConversationID(id string) (string, string) {
	a, b, _ := strings.Cut(id, "-")
	return a, b
}
