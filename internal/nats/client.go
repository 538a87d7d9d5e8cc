// Package nats provides a client for NATS JetStream pub/sub messaging.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Event stream layout. One stream carries every careerdesk event.
const (
	StreamName = "CAREERDESK"
)

// Subjects published on the event stream.
const (
	SubjectDigestGenerated = "digest.generated"
	SubjectAnalysisCreated = "analysis.created"
	SubjectJobStatus       = "job.status"
)

// Client wraps nats connection and jetstream context.
type Client struct {
	Conn *nats.Conn
	js   jetstream.JetStream
}

// New creates a new nats client with jetstream support and makes sure
// the event stream exists.
func New(ctx context.Context, natsURL string) (*Client, error) {
	conn, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	c := &Client{Conn: conn, js: js}
	if err := c.ensureStream(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) ensureStream(ctx context.Context) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{"digest.>", "analysis.>", "job.>"},
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", StreamName, err)
	}
	return nil
}

// Publish publishes a message to a subject.
func (c *Client) Publish(ctx context.Context, subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	_, err = c.js.Publish(ctx, subject, payload)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}

	return nil
}

// Close closes the nats connection.
func (c *Client) Close() {
	c.Conn.Close()
}

// IsConnected returns true if connected to nats.
func (c *Client) IsConnected() bool {
	return c.Conn.IsConnected()
}
