// Package messaging publishes store change events to NATS so external
// consumers (dashboards, analytics pipelines) can follow demo activity.
package messaging

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/demo"
)

// SubjectPrefix namespaces all change-event subjects.
const SubjectPrefix = "mezunhub.demo"

// Publisher fans a change event out to an external broker.
type Publisher interface {
	Publish(event demo.ChangeEvent)
	Close()
}

// NATSPublisher publishes change events on a subject derived from the action
// name, e.g. "mezunhub.demo.group.application.approved".
type NATSPublisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

// NewNATSPublisher connects to the broker at url.
func NewNATSPublisher(url string, logger zerolog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("mezunhub"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

func (p *NATSPublisher) Publish(event demo.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed to encode change event")
		return
	}
	subject := SubjectPrefix
	if event.Action != "" {
		subject = SubjectPrefix + "." + strings.ReplaceAll(event.Action, "/", ".")
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish change event")
	}
}

func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Error().Err(err).Msg("Failed to drain NATS connection")
	}
}

// NoopPublisher satisfies Publisher when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(demo.ChangeEvent) {}
func (NoopPublisher) Close()                   {}
