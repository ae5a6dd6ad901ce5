// Package notify delivers transfer lifecycle notifications to account holders
// and administrators through a message broker.
package notify

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies a notification event
type Kind string

const (
	KindTransferCreated   Kind = "NEW_TRANSFER_CREATED"
	KindTransferApproved  Kind = "TRANSFER_APPROVED"
	KindTransferCompleted Kind = "TRANSFER_COMPLETED"
	KindTransferRejected  Kind = "TRANSFER_REJECTED"
	KindTransferFailed    Kind = "TRANSFER_FAILED"
)

// Message is one notification addressed to one user
type Message struct {
	Payload     map[string]any `json:"payload"`
	Kind        Kind           `json:"type"`
	RecipientID uuid.UUID      `json:"recipientId"`
}

// RoutingKey returns the topic key the message is published under,
// for example "notification.transfer_completed".
func (m Message) RoutingKey() string {
	return "notification." + strings.ToLower(string(m.Kind))
}

// Publisher delivers messages to the broker
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}
