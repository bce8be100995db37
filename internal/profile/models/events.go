package models

import (
	"time"
)

type EventType string

const (
	EventTypeProfileCreated      EventType = "profile.created"
	EventTypeProfileUpdated      EventType = "profile.updated"
	EventTypeCompletenessChanged EventType = "profile.completeness.changed"
)

type ProfileEvent struct {
	EventType     EventType `json:"eventType"`
	UserID        string    `json:"userId"`
	Timestamp     time.Time `json:"timestamp"`
	ChangedFields []string  `json:"changedFields,omitempty"`
	IsComplete    bool      `json:"isComplete"`
}
