package watcher

import (
	"time"
)

// ConfigEventType represents the type of config file event
type ConfigEventType string

const (
	ConfigChanged ConfigEventType = "changed"
	ConfigCreated ConfigEventType = "created"
)

// ConfigEvent represents a change to the watched config file
type ConfigEvent struct {
	Path      string
	EventType ConfigEventType
	Timestamp time.Time
}
