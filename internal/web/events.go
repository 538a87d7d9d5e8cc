package web

import (
	"encoding/json"

	"github.com/blockedby/careerdesk-os/internal/models"
)

// WebSocket event types
const (
	EventJobStatus       = "job.status"
	EventDigestGenerated = "digest.generated"
)

// WSEvent represents a structured WebSocket message
type WSEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// JobStatusPayload is the payload for EventJobStatus
type JobStatusPayload struct {
	JobID  int    `json:"jobId"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

// DigestGeneratedPayload is the payload for EventDigestGenerated
type DigestGeneratedPayload struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
}

// JobStatusEvent creates a JSON message for a status change.
func JobStatusEvent(jobID int, entry models.StatusEntry) []byte {
	evt := WSEvent{
		Type: EventJobStatus,
		Payload: JobStatusPayload{
			JobID:  jobID,
			Status: string(entry.Status),
			Date:   entry.Date,
		},
	}
	b, _ := json.Marshal(evt)
	return b
}

// DigestGeneratedEvent creates a JSON message for a fresh digest.
func DigestGeneratedEvent(d models.Digest) []byte {
	evt := WSEvent{
		Type: EventDigestGenerated,
		Payload: DigestGeneratedPayload{
			Date:    d.Date,
			Entries: len(d.Entries),
		},
	}
	b, _ := json.Marshal(evt)
	return b
}
