package service

import (
	"context"
)

// House change actions carried by HouseEvent.
const (
	HouseEventCreated = "created"
	HouseEventUpdated = "updated"
	HouseEventDeleted = "deleted"
	// HouseEventWriteRejected is the async side channel for optimistic
	// writes the store refused after the submit already returned.
	HouseEventWriteRejected = "write_rejected"
)

// HouseEvent describes a change to the house collection.
type HouseEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	EventID   string  `json:"event_id"`
	Action    string  `json:"action"`
	HouseID   string  `json:"house_id,omitempty"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Detail    string  `json:"detail,omitempty"` // Failure detail for write_rejected events.
}

// EventPublisher defines the interface for publishing house change events to
// a message queue.
type EventPublisher interface {
	// PublishHouseEvent publishes a house change event for async consumers.
	PublishHouseEvent(ctx context.Context, event *HouseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
