package player

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	MinHandicapIndex = -10.0
	MaxHandicapIndex = 54.0
)

// Player is a league member with an official handicap record.
type Player struct {
	ID            int64
	CreatedAt     time.Time
	Name          string
	GHINNo        string
	HandicapIndex float64
}

// Fields holds the columns a client may write on create.
type Fields struct {
	Name          string
	GHINNo        string
	HandicapIndex float64
}

func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	return validateHandicapIndex(f.HandicapIndex)
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Name          *string
	GHINNo        *string
	HandicapIndex *float64
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.GHINNo == nil && p.HandicapIndex == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return fmt.Errorf("player patch has no fields")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("player name cannot be blank")
	}
	if p.HandicapIndex != nil {
		return validateHandicapIndex(*p.HandicapIndex)
	}
	return nil
}

// Apply returns a copy of p with the patch applied.
func (p Player) Apply(patch Patch) Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.GHINNo != nil {
		p.GHINNo = *patch.GHINNo
	}
	if patch.HandicapIndex != nil {
		p.HandicapIndex = *patch.HandicapIndex
	}
	return p
}

func validateHandicapIndex(v float64) error {
	if v < MinHandicapIndex || v > MaxHandicapIndex {
		return fmt.Errorf("handicap index must be between %.1f and %.1f", MinHandicapIndex, MaxHandicapIndex)
	}
	// Stored as NUMERIC(4,1).
	if tenths := v * 10; math.Abs(tenths-math.Round(tenths)) > 1e-6 {
		return fmt.Errorf("handicap index %v has more than one decimal place", v)
	}
	return nil
}
