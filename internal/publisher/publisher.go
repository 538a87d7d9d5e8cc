// Package publisher emits careerdesk events to NATS.
package publisher

import (
	"context"
	"fmt"

	"github.com/blockedby/careerdesk-os/internal/models"
	"github.com/blockedby/careerdesk-os/internal/nats"
)

// Broker is the slice of the nats client the publisher needs, kept as an
// interface so tests can capture published events.
type Broker interface {
	Publish(ctx context.Context, subject string, data any) error
}

// Events publishes domain events. A nil *Events is a no-op, so callers
// never need to branch on whether NATS is configured.
type Events struct {
	broker Broker
}

// New creates a publisher over the given broker.
func New(broker Broker) *Events {
	return &Events{broker: broker}
}

// DigestGeneratedEvent is the payload for digest.generated.
type DigestGeneratedEvent struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
}

// AnalysisCreatedEvent is the payload for analysis.created.
type AnalysisCreatedEvent struct {
	ID             string `json:"id"`
	Company        string `json:"company"`
	Role           string `json:"role"`
	ReadinessScore int    `json:"readinessScore"`
}

// JobStatusEvent is the payload for job.status.
type JobStatusEvent struct {
	JobID  int                      `json:"jobId"`
	Status models.ApplicationStatus `json:"status"`
	Date   string                   `json:"date"`
}

// DigestGenerated announces a freshly generated digest.
func (e *Events) DigestGenerated(ctx context.Context, d models.Digest) error {
	if e == nil {
		return nil
	}
	event := DigestGeneratedEvent{Date: d.Date, Entries: len(d.Entries)}
	if err := e.broker.Publish(ctx, nats.SubjectDigestGenerated, event); err != nil {
		return fmt.Errorf("publish digest event: %w", err)
	}
	return nil
}

// AnalysisCreated announces a saved JD analysis.
func (e *Events) AnalysisCreated(ctx context.Context, res models.AnalysisResult) error {
	if e == nil {
		return nil
	}
	event := AnalysisCreatedEvent{
		ID:             res.ID,
		Company:        res.Company,
		Role:           res.Role,
		ReadinessScore: res.FinalScore,
	}
	if err := e.broker.Publish(ctx, nats.SubjectAnalysisCreated, event); err != nil {
		return fmt.Errorf("publish analysis event: %w", err)
	}
	return nil
}

// JobStatusChanged announces an application status change.
func (e *Events) JobStatusChanged(ctx context.Context, jobID int, entry models.StatusEntry) error {
	if e == nil {
		return nil
	}
	event := JobStatusEvent{JobID: jobID, Status: entry.Status, Date: entry.Date}
	if err := e.broker.Publish(ctx, nats.SubjectJobStatus, event); err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}
	return nil
}
