package service

import (
	"context"
	"errors"
	"sync"
	"time"

	goaway "github.com/TwiN/go-away"
	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

const (
	collectionReports  = "reported_users"
	collectionContacts = "emergency_contacts"
)

// SafetyService owns content moderation, the reported-user registry and
// emergency contacts.
type SafetyService struct {
	mu        sync.RWMutex
	reports   []*domain.ReportedUser
	contacts  []*domain.EmergencyContact
	profanity *goaway.ProfanityDetector
	store     ports.CollectionStore
	logger    zerolog.Logger
}

func NewSafetyService(store ports.CollectionStore, logger zerolog.Logger) *SafetyService {
	return &SafetyService{
		profanity: goaway.NewProfanityDetector(),
		store:     store,
		logger:    logger,
	}
}

// Restore loads cached reports and contacts from a previous run.
func (s *SafetyService) Restore(ctx context.Context) {
	var reports []*domain.ReportedUser
	if err := s.store.Load(ctx, collectionReports, &reports); err == nil {
		s.mu.Lock()
		s.reports = reports
		s.mu.Unlock()
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.Warn().Err(err).Msg("failed to restore reported users")
	}

	var contacts []*domain.EmergencyContact
	if err := s.store.Load(ctx, collectionContacts, &contacts); err == nil {
		s.mu.Lock()
		s.contacts = contacts
		s.mu.Unlock()
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.Warn().Err(err).Msg("failed to restore emergency contacts")
	}
}

// FilterContent rewrites inappropriate words in text. Fail-open: any
// internal failure returns the original text unchanged.
func (s *SafetyService) FilterContent(text string) (filtered string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn().Interface("cause", r).Msg("content filter failed, passing text through")
			filtered = text
		}
	}()
	return s.profanity.Censor(text)
}

// ReportUser appends a pending report attributed to reporterID.
func (s *SafetyService) ReportUser(ctx context.Context, reporterID, userID, reason string) (*domain.ReportedUser, error) {
	report := &domain.ReportedUser{
		UserID:     userID,
		ReportedBy: reporterID,
		Reason:     reason,
		Timestamp:  time.Now().UTC(),
		Status:     domain.ReportPending,
	}

	s.mu.Lock()
	s.reports = append(s.reports, report)
	if err := s.store.Save(ctx, collectionReports, s.reports); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache reported users")
	}
	s.mu.Unlock()

	s.logger.Info().Str("user_id", userID).Str("reported_by", reporterID).Msg("user reported")

	clone := *report
	return &clone, nil
}

// IsReported reports whether at least one report exists against userID.
func (s *SafetyService) IsReported(_ context.Context, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// Reports returns the full registry.
func (s *SafetyService) Reports(_ context.Context) []*domain.ReportedUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ReportedUser, 0, len(s.reports))
	for _, r := range s.reports {
		clone := *r
		out = append(out, &clone)
	}
	return out
}

// AddEmergencyContact registers a contact for ownerID.
func (s *SafetyService) AddEmergencyContact(ctx context.Context, ownerID string, in ports.EmergencyContactInput) (*domain.EmergencyContact, error) {
	contact := &domain.EmergencyContact{
		ID:           newID("CTC"),
		OwnerID:      ownerID,
		Name:         in.Name,
		Phone:        in.Phone,
		Relationship: in.Relationship,
	}

	s.mu.Lock()
	s.contacts = append(s.contacts, contact)
	if err := s.store.Save(ctx, collectionContacts, s.contacts); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache emergency contacts")
	}
	s.mu.Unlock()

	clone := *contact
	return &clone, nil
}

// RemoveEmergencyContact deletes the contact when it belongs to ownerID.
// No-op otherwise.
func (s *SafetyService) RemoveEmergencyContact(ctx context.Context, ownerID, contactID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.contacts[:0]
	for _, c := range s.contacts {
		if c.ID == contactID && c.OwnerID == ownerID {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == len(s.contacts) {
		return
	}
	s.contacts = kept
	if err := s.store.Save(ctx, collectionContacts, s.contacts); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache emergency contacts")
	}
}

// EmergencyContacts returns ownerID's registered contacts.
func (s *SafetyService) EmergencyContacts(_ context.Context, ownerID string) []*domain.EmergencyContact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.EmergencyContact
	for _, c := range s.contacts {
		if c.OwnerID == ownerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out
}
