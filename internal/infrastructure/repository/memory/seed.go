package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/domain/series"
)

// DemoEntry is one player of the demo league and the points scored at the
// opening event.
type DemoEntry struct {
	Player player.Fields
	Points int
}

// DemoLeague is a tiny data set used to bootstrap empty stores for local runs.
type DemoLeague struct {
	Series  series.Fields
	Event   event.Fields
	Entries []DemoEntry
}

// SeedDemoLeague returns the demo data. Event.SeriesID is left zero and must be
// filled in once the series is stored.
func SeedDemoLeague() DemoLeague {
	return DemoLeague{
		Series: series.Fields{
			Name:    "Spring 2024",
			StartAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		Event: event.Fields{
			Name:       "Opener",
			CourseName: "Riverside Golf Club",
			StartAt:    time.Date(2024, 3, 9, 7, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2024, 3, 9, 13, 0, 0, 0, time.UTC),
		},
		Entries: []DemoEntry{
			{Player: player.Fields{Name: "Andre Santos", GHINNo: "1234567", HandicapIndex: 12.4}, Points: 36},
			{Player: player.Fields{Name: "Bea Reyes", GHINNo: "2345678", HandicapIndex: 5.1}, Points: 40},
			{Player: player.Fields{Name: "Carlo Mendoza", GHINNo: "3456789", HandicapIndex: 18.0}, Points: 31},
		},
	}
}

// Seed fills an empty store with the demo league.
func Seed(ctx context.Context, store *Store) error {
	demo := SeedDemoLeague()

	spring, err := NewSeriesRepository(store).Create(ctx, demo.Series)
	if err != nil {
		return fmt.Errorf("seed series: %w", err)
	}

	eventFields := demo.Event
	eventFields.SeriesID = spring.ID
	opener, err := NewEventRepository(store).Create(ctx, eventFields)
	if err != nil {
		return fmt.Errorf("seed event: %w", err)
	}

	playerRepo := NewPlayerRepository(store)
	resultRepo := NewResultRepository(store)
	for _, entry := range demo.Entries {
		created, err := playerRepo.Create(ctx, entry.Player)
		if err != nil {
			return fmt.Errorf("seed player %s: %w", entry.Player.Name, err)
		}
		if _, err := resultRepo.Create(ctx, result.Fields{PlayerID: created.ID, EventID: opener.ID, Points: entry.Points}); err != nil {
			return fmt.Errorf("seed result %s: %w", entry.Player.Name, err)
		}
	}

	return nil
}
