package ports

import (
	"context"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// MessageService owns the message log and the conversation index derived
// from it.
type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error)
	// MarkAsRead flips the read flag and decrements the owning
	// conversation's unread count, never below zero. No-op when the
	// message does not exist.
	MarkAsRead(ctx context.Context, messageID string)
	// ConversationFor returns the first conversation containing userID,
	// or nil.
	ConversationFor(ctx context.Context, userID string) *domain.Conversation
	Conversations(ctx context.Context, userID string) []*domain.Conversation
	// MessagesIn returns every message exchanged between the two
	// participants encoded in conversationID, ascending by timestamp.
	MessagesIn(ctx context.Context, conversationID string) []*domain.Message
}
