package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

func newMessageService() (*MessageService, *stubPublisher) {
	pub := &stubPublisher{}
	return NewMessageService(newStubStore(), pub, zerolog.Nop()), pub
}

func TestConversationID_Symmetric(t *testing.T) {
	if domain.ConversationID("alice", "bob") != domain.ConversationID("bob", "alice") {
		t.Fatalf("conversation id is not symmetric")
	}
	a, b := domain.SplitConversationID(domain.ConversationID("bob", "alice"))
	if a != "alice" || b != "bob" {
		t.Fatalf("unexpected decomposition: %s, %s", a, b)
	}
}

func TestMessageService_Send_CreatesConversation(t *testing.T) {
	svc, pub := newMessageService()

	msg, err := svc.Send(context.Background(), "alice", "bob", "hi bob")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.Read {
		t.Fatalf("new message must start unread")
	}

	conv := svc.ConversationFor(context.Background(), "bob")
	if conv == nil {
		t.Fatalf("conversation not created")
	}
	if conv.ID != domain.ConversationID("bob", "alice") {
		t.Fatalf("unexpected conversation id %s", conv.ID)
	}
	if conv.UnreadCount != 1 {
		t.Fatalf("expected unread count 1, got %d", conv.UnreadCount)
	}
	if conv.LastMessage == nil || conv.LastMessage.ID != msg.ID {
		t.Fatalf("last message not recorded")
	}
	if len(pub.published) != 1 || pub.published[0].UserID != "bob" {
		t.Fatalf("expected receiver notification, got %+v", pub.published)
	}
}

func TestMessageService_Send_UpdatesExistingConversation(t *testing.T) {
	svc, _ := newMessageService()

	if _, err := svc.Send(context.Background(), "alice", "bob", "first"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	second, err := svc.Send(context.Background(), "bob", "alice", "second")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	convs := svc.Conversations(context.Background(), "alice")
	if len(convs) != 1 {
		t.Fatalf("both directions must share one conversation, got %d", len(convs))
	}
	if convs[0].UnreadCount != 2 {
		t.Fatalf("expected unread count 2, got %d", convs[0].UnreadCount)
	}
	if convs[0].LastMessage.ID != second.ID {
		t.Fatalf("last message not updated")
	}
}

func TestMessageService_MarkAsRead_FloorsAtZero(t *testing.T) {
	svc, _ := newMessageService()
	msg, err := svc.Send(context.Background(), "alice", "bob", "hi")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	svc.MarkAsRead(context.Background(), msg.ID)
	svc.MarkAsRead(context.Background(), msg.ID)
	svc.MarkAsRead(context.Background(), msg.ID)

	conv := svc.ConversationFor(context.Background(), "alice")
	if conv.UnreadCount != 0 {
		t.Fatalf("unread count went below zero: %d", conv.UnreadCount)
	}

	msgs := svc.MessagesIn(context.Background(), conv.ID)
	if len(msgs) != 1 || !msgs[0].Read {
		t.Fatalf("message not marked read: %+v", msgs)
	}
}

func TestMessageService_MarkAsRead_MissingMessageIsNoop(t *testing.T) {
	svc, _ := newMessageService()
	svc.MarkAsRead(context.Background(), "MSG-NOPE") // must not panic
}

func TestMessageService_MessagesIn_OrderedBothDirections(t *testing.T) {
	svc, _ := newMessageService()
	first, _ := svc.Send(context.Background(), "alice", "bob", "one")
	second, _ := svc.Send(context.Background(), "bob", "alice", "two")
	svc.Send(context.Background(), "alice", "carol", "other thread")

	msgs := svc.MessagesIn(context.Background(), domain.ConversationID("alice", "bob"))
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].ID != first.ID || msgs[1].ID != second.ID {
		t.Fatalf("messages out of order: %+v", msgs)
	}
	if msgs[0].Timestamp.After(msgs[1].Timestamp) {
		t.Fatalf("timestamps not ascending")
	}
}
