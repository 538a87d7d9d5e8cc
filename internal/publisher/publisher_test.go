package publisher

import (
	"context"
	"testing"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/nats"
)

// MockBroker captures the last published event.
type MockBroker struct {
	PublishedSubject string
	PublishedData    any
	PublishError     error
}

func (m *MockBroker) Publish(_ context.Context, subject string, data any) error {
	m.PublishedSubject = subject
	m.PublishedData = data
	return m.PublishError
}

func TestEvents_DigestGenerated(t *testing.T) {
	mock := &MockBroker{}
	pub := New(mock)

	d := models.Digest{
		Date:    "2026-08-29",
		Entries: []models.DigestEntry{{JobID: 1}, {JobID: 2}},
	}
	if err := pub.DigestGenerated(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.PublishedSubject != nats.SubjectDigestGenerated {
		t.Errorf("subject = %s, want %s", mock.PublishedSubject, nats.SubjectDigestGenerated)
	}
	event, ok := mock.PublishedData.(DigestGeneratedEvent)
	if !ok {
		t.Fatalf("payload type = %T", mock.PublishedData)
	}
	if event.Entries != 2 {
		t.Errorf("entries = %d, want 2", event.Entries)
	}
}

func TestEvents_AnalysisCreated(t *testing.T) {
	mock := &MockBroker{}
	pub := New(mock)

	res := models.AnalysisResult{ID: "a1", Company: "Flipkart", Role: "SDE", FinalScore: 75}
	if err := pub.AnalysisCreated(context.Background(), res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.PublishedSubject != nats.SubjectAnalysisCreated {
		t.Errorf("subject = %s, want %s", mock.PublishedSubject, nats.SubjectAnalysisCreated)
	}
	event := mock.PublishedData.(AnalysisCreatedEvent)
	if event.ReadinessScore != 75 {
		t.Errorf("score = %d, want 75", event.ReadinessScore)
	}
}

func TestEvents_JobStatusChanged(t *testing.T) {
	mock := &MockBroker{}
	pub := New(mock)

	entry := models.StatusEntry{Status: models.StatusApplied, Date: "2026-08-29T10:00:00Z"}
	if err := pub.JobStatusChanged(context.Background(), 7, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	event := mock.PublishedData.(JobStatusEvent)
	if event.JobID != 7 || event.Status != models.StatusApplied {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestEvents_NilIsNoOp(t *testing.T) {
	var pub *Events
	if err := pub.DigestGenerated(context.Background(), models.Digest{}); err != nil {
		t.Fatalf("nil publisher should no-op, got %v", err)
	}
	if err := pub.AnalysisCreated(context.Background(), models.AnalysisResult{}); err != nil {
		t.Fatalf("nil publisher should no-op, got %v", err)
	}
	if err := pub.JobStatusChanged(context.Background(), 1, models.StatusEntry{}); err != nil {
		t.Fatalf("nil publisher should no-op, got %v", err)
	}
}
