package event

import (
	"fmt"
	"strings"
	"time"
)

// SeriesRef is the joined summary of the owning series.
type SeriesRef struct {
	ID   int64
	Name string
}

// Event is one round of golf played at a course within a series.
type Event struct {
	ID         int64
	CreatedAt  time.Time
	Name       string
	CourseName string
	StartAt    time.Time
	EndAt      time.Time
	SeriesID   int64
	Series     *SeriesRef
}

type Fields struct {
	Name       string
	CourseName string
	StartAt    time.Time
	EndAt      time.Time
	SeriesID   int64
}

func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("event name is required")
	}
	if strings.TrimSpace(f.CourseName) == "" {
		return fmt.Errorf("event course name is required")
	}
	if f.StartAt.IsZero() || f.EndAt.IsZero() {
		return fmt.Errorf("event start and end are required")
	}
	if f.EndAt.Before(f.StartAt) {
		return fmt.Errorf("event end must not be before start")
	}
	if f.SeriesID <= 0 {
		return fmt.Errorf("event series id is required")
	}
	return nil
}

type Patch struct {
	Name       *string
	CourseName *string
	StartAt    *time.Time
	EndAt      *time.Time
	SeriesID   *int64
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.CourseName == nil && p.StartAt == nil && p.EndAt == nil && p.SeriesID == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return fmt.Errorf("event patch has no fields")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("event name cannot be blank")
	}
	if p.CourseName != nil && strings.TrimSpace(*p.CourseName) == "" {
		return fmt.Errorf("event course name cannot be blank")
	}
	if p.StartAt != nil && p.EndAt != nil && p.EndAt.Before(*p.StartAt) {
		return fmt.Errorf("event end must not be before start")
	}
	if p.SeriesID != nil && *p.SeriesID <= 0 {
		return fmt.Errorf("event series id must be positive")
	}
	return nil
}

// Apply returns a copy of e with the patch applied. The joined series is
// dropped when the foreign key changes.
func (e Event) Apply(patch Patch) Event {
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.CourseName != nil {
		e.CourseName = *patch.CourseName
	}
	if patch.StartAt != nil {
		e.StartAt = *patch.StartAt
	}
	if patch.EndAt != nil {
		e.EndAt = *patch.EndAt
	}
	if patch.SeriesID != nil && *patch.SeriesID != e.SeriesID {
		e.SeriesID = *patch.SeriesID
		e.Series = nil
	}
	return e
}
