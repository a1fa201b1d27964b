package series

import (
	"fmt"
	"strings"
	"time"
)

// Series groups events into a season-like window.
type Series struct {
	ID        int64
	CreatedAt time.Time
	Name      string
	StartAt   time.Time
	EndAt     time.Time
}

type Fields struct {
	Name    string
	StartAt time.Time
	EndAt   time.Time
}

func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("series name is required")
	}
	if f.StartAt.IsZero() {
		return fmt.Errorf("series start is required")
	}
	if f.EndAt.IsZero() {
		return fmt.Errorf("series end is required")
	}
	if f.EndAt.Before(f.StartAt) {
		return fmt.Errorf("series end must not be before start")
	}
	return nil
}

type Patch struct {
	Name    *string
	StartAt *time.Time
	EndAt   *time.Time
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.StartAt == nil && p.EndAt == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return fmt.Errorf("series patch has no fields")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("series name cannot be blank")
	}
	if p.StartAt != nil && p.StartAt.IsZero() {
		return fmt.Errorf("series start cannot be zero")
	}
	if p.EndAt != nil && p.EndAt.IsZero() {
		return fmt.Errorf("series end cannot be zero")
	}
	if p.StartAt != nil && p.EndAt != nil && p.EndAt.Before(*p.StartAt) {
		return fmt.Errorf("series end must not be before start")
	}
	return nil
}

func (s Series) Apply(patch Patch) Series {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.StartAt != nil {
		s.StartAt = *patch.StartAt
	}
	if patch.EndAt != nil {
		s.EndAt = *patch.EndAt
	}
	return s
}
