package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

func newSafetyService() *SafetyService {
	return NewSafetyService(newStubStore(), zerolog.Nop())
}

func TestSafetyService_FilterContent_CleanTextUnchanged(t *testing.T) {
	svc := newSafetyService()

	in := "can you help me move a couch on saturday?"
	if got := svc.FilterContent(in); got != in {
		t.Fatalf("clean text was altered: %q", got)
	}
}

func TestSafetyService_FilterContent_CensorsProfanity(t *testing.T) {
	svc := newSafetyService()

	got := svc.FilterContent("this job is shit")
	if strings.Contains(got, "shit") {
		t.Fatalf("profanity not censored: %q", got)
	}
	if !strings.Contains(got, "*") {
		t.Fatalf("expected substitution characters, got %q", got)
	}
}

func TestSafetyService_ReportUser(t *testing.T) {
	svc := newSafetyService()

	if svc.IsReported(context.Background(), "employer-1") {
		t.Fatalf("unexpected report before filing")
	}

	report, err := svc.ReportUser(context.Background(), "student-1", "employer-1", "no-show")
	if err != nil {
		t.Fatalf("ReportUser: %v", err)
	}
	if report.Status != domain.ReportPending {
		t.Fatalf("new reports must start pending, got %s", report.Status)
	}
	if report.Timestamp.IsZero() {
		t.Fatalf("report missing timestamp")
	}

	if !svc.IsReported(context.Background(), "employer-1") {
		t.Fatalf("report not registered")
	}
	if got := svc.Reports(context.Background()); len(got) != 1 || got[0].ReportedBy != "student-1" {
		t.Fatalf("unexpected registry: %+v", got)
	}
}

func TestSafetyService_EmergencyContacts(t *testing.T) {
	svc := newSafetyService()

	contact, err := svc.AddEmergencyContact(context.Background(), "student-1", ports.EmergencyContactInput{
		Name: "Dana", Phone: "555-0100", Relationship: "parent",
	})
	if err != nil {
		t.Fatalf("AddEmergencyContact: %v", err)
	}

	// Removing with the wrong owner is a no-op.
	svc.RemoveEmergencyContact(context.Background(), "student-2", contact.ID)
	if got := svc.EmergencyContacts(context.Background(), "student-1"); len(got) != 1 {
		t.Fatalf("contact removed by non-owner: %+v", got)
	}

	svc.RemoveEmergencyContact(context.Background(), "student-1", contact.ID)
	if got := svc.EmergencyContacts(context.Background(), "student-1"); len(got) != 0 {
		t.Fatalf("contact not removed: %+v", got)
	}
}
