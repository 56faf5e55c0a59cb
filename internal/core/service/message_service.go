package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

const (
	collectionMessages      = "messages"
	collectionConversations = "conversations"
)

// MessageService owns the message log and the conversation index derived
// from it. Both are snapshotted to the collection store after mutations.
type MessageService struct {
	mu            sync.RWMutex
	messages      []*domain.Message
	conversations []*domain.Conversation
	store         ports.CollectionStore
	notifier      ports.NotificationPublisher
	logger        zerolog.Logger
}

func NewMessageService(store ports.CollectionStore, notifier ports.NotificationPublisher, logger zerolog.Logger) *MessageService {
	return &MessageService{store: store, notifier: notifier, logger: logger}
}

// Restore loads cached messages and conversations from a previous run.
func (s *MessageService) Restore(ctx context.Context) {
	var messages []*domain.Message
	if err := s.store.Load(ctx, collectionMessages, &messages); err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn().Err(err).Msg("failed to restore messages")
		}
		return
	}
	var conversations []*domain.Conversation
	if err := s.store.Load(ctx, collectionConversations, &conversations); err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn().Err(err).Msg("failed to restore conversations")
		}
		return
	}
	s.mu.Lock()
	s.messages = messages
	s.conversations = conversations
	s.mu.Unlock()
	s.logger.Info().Int("messages", len(messages)).Int("conversations", len(conversations)).Msg("message index restored")
}

// Send appends a message and updates (or creates) the conversation for
// the sender/receiver pair.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error) {
	if senderID == "" || receiverID == "" {
		return nil, domain.ErrUserNotFound
	}

	msg := &domain.Message{
		ID:         newID("MSG"),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		Read:       false,
	}
	conversationID := domain.ConversationID(senderID, receiverID)

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	conv := s.findConversation(conversationID)
	if conv != nil {
		conv.LastMessage = msg
		conv.UnreadCount++
	} else {
		s.conversations = append(s.conversations, &domain.Conversation{
			ID:           conversationID,
			Participants: []string{senderID, receiverID},
			LastMessage:  msg,
			UnreadCount:  1,
		})
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.logger.Info().Str("message_id", msg.ID).Str("conversation_id", conversationID).Msg("message sent")

	if s.notifier != nil {
		s.notifier.Publish(ports.NotificationInput{
			UserID:  receiverID,
			Type:    domain.NotificationInfo,
			Title:   "New message",
			Message: "You have a new message",
		})
	}

	clone := *msg
	return &clone, nil
}

// MarkAsRead flips the message's read flag and decrements the owning
// conversation's unread count, never below zero. No-op when the message
// does not exist.
func (s *MessageService) MarkAsRead(ctx context.Context, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msg *domain.Message
	for _, m := range s.messages {
		if m.ID == messageID {
			msg = m
			break
		}
	}
	if msg == nil {
		return
	}

	msg.Read = true
	if conv := s.findConversation(domain.ConversationID(msg.SenderID, msg.ReceiverID)); conv != nil {
		if conv.UnreadCount > 0 {
			conv.UnreadCount--
		}
	}
	s.persist(ctx)
}

// ConversationFor returns the first conversation containing userID, or nil.
func (s *MessageService) ConversationFor(_ context.Context, userID string) *domain.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conv := range s.conversations {
		if conv.HasParticipant(userID) {
			clone := *conv
			return &clone
		}
	}
	return nil
}

// Conversations returns every conversation userID participates in.
func (s *MessageService) Conversations(_ context.Context, userID string) []*domain.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Conversation
	for _, conv := range s.conversations {
		if conv.HasParticipant(userID) {
			clone := *conv
			out = append(out, &clone)
		}
	}
	return out
}

// MessagesIn returns every message exchanged between the two participants
// encoded in conversationID, ascending by timestamp.
func (s *MessageService) MessagesIn(_ context.Context, conversationID string) []*domain.Message {
	a, b := domain.SplitConversationID(conversationID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Message
	for _, m := range s.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// findConversation returns the conversation with the given id. Caller
// holds the lock.
func (s *MessageService) findConversation(id string) *domain.Conversation {
	for _, conv := range s.conversations {
		if conv.ID == id {
			return conv
		}
	}
	return nil
}

// persist snapshots both collections. Best-effort. Caller holds the lock.
func (s *MessageService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, collectionMessages, s.messages); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache messages")
	}
	if err := s.store.Save(ctx, collectionConversations, s.conversations); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache conversations")
	}
}
