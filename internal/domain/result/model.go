package result

import (
	"fmt"
	"time"
)

type PlayerRef struct {
	ID   int64
	Name string
}

type EventRef struct {
	ID   int64
	Name string
}

// Result records the points a player earned at an event.
type Result struct {
	ID        int64
	CreatedAt time.Time
	PlayerID  int64
	EventID   int64
	Points    int
	Player    *PlayerRef
	Event     *EventRef
}

type Fields struct {
	PlayerID int64
	EventID  int64
	Points   int
}

func (f Fields) Validate() error {
	if f.PlayerID <= 0 {
		return fmt.Errorf("result player id is required")
	}
	if f.EventID <= 0 {
		return fmt.Errorf("result event id is required")
	}
	if f.Points < 0 {
		return fmt.Errorf("result points must be >= 0")
	}
	return nil
}

type Patch struct {
	PlayerID *int64
	EventID  *int64
	Points   *int
}

func (p Patch) IsEmpty() bool {
	return p.PlayerID == nil && p.EventID == nil && p.Points == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return fmt.Errorf("result patch has no fields")
	}
	if p.PlayerID != nil && *p.PlayerID <= 0 {
		return fmt.Errorf("result player id must be positive")
	}
	if p.EventID != nil && *p.EventID <= 0 {
		return fmt.Errorf("result event id must be positive")
	}
	if p.Points != nil && *p.Points < 0 {
		return fmt.Errorf("result points must be >= 0")
	}
	return nil
}

func (r Result) Apply(patch Patch) Result {
	if patch.PlayerID != nil && *patch.PlayerID != r.PlayerID {
		r.PlayerID = *patch.PlayerID
		r.Player = nil
	}
	if patch.EventID != nil && *patch.EventID != r.EventID {
		r.EventID = *patch.EventID
		r.Event = nil
	}
	if patch.Points != nil {
		r.Points = *patch.Points
	}
	return r
}
