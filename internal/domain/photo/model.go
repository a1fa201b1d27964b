package photo

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultBucket = "photos"
	DefaultFolder = "event-photos"
)

type EventRef struct {
	ID   int64
	Name string
}

// Photo points at an uploaded object in the storage service.
type Photo struct {
	ID            int64
	CreatedAt     time.Time
	Name          string
	EventID       int64
	StorageBucket string
	StoragePath   string
	Event         *EventRef
}

type Fields struct {
	Name          string
	EventID       int64
	StorageBucket string
	StoragePath   string
}

func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("photo name is required")
	}
	if f.EventID <= 0 {
		return fmt.Errorf("photo event id is required")
	}
	if strings.TrimSpace(f.StorageBucket) == "" {
		return fmt.Errorf("photo storage bucket is required")
	}
	if strings.TrimSpace(f.StoragePath) == "" {
		return fmt.Errorf("photo storage path is required")
	}
	return nil
}

type Patch struct {
	Name          *string
	EventID       *int64
	StorageBucket *string
	StoragePath   *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.EventID == nil && p.StorageBucket == nil && p.StoragePath == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return fmt.Errorf("photo patch has no fields")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("photo name cannot be blank")
	}
	if p.EventID != nil && *p.EventID <= 0 {
		return fmt.Errorf("photo event id must be positive")
	}
	if p.StorageBucket != nil && strings.TrimSpace(*p.StorageBucket) == "" {
		return fmt.Errorf("photo storage bucket cannot be blank")
	}
	if p.StoragePath != nil && strings.TrimSpace(*p.StoragePath) == "" {
		return fmt.Errorf("photo storage path cannot be blank")
	}
	return nil
}

func (p Photo) Apply(patch Patch) Photo {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.EventID != nil && *patch.EventID != p.EventID {
		p.EventID = *patch.EventID
		p.Event = nil
	}
	if patch.StorageBucket != nil {
		p.StorageBucket = *patch.StorageBucket
	}
	if patch.StoragePath != nil {
		p.StoragePath = *patch.StoragePath
	}
	return p
}
