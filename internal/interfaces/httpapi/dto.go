package httpapi

import (
	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/domain/series"
)

type refDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type playerDTO struct {
	ID            int64   `json:"id"`
	CreatedAt     string  `json:"created_at"`
	Name          string  `json:"name"`
	GHINNo        string  `json:"ghin_no"`
	HandicapIndex float64 `json:"handicap_index"`
}

type seriesDTO struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	Name      string `json:"name"`
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
}

type eventDTO struct {
	ID         int64   `json:"id"`
	CreatedAt  string  `json:"created_at"`
	Name       string  `json:"name"`
	CourseName string  `json:"course_name"`
	StartAt    string  `json:"start_at"`
	EndAt      string  `json:"end_at"`
	SeriesID   int64   `json:"series_id"`
	Series     *refDTO `json:"series"`
}

type resultDTO struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"created_at"`
	PlayerID  int64   `json:"player_id"`
	EventID   int64   `json:"event_id"`
	Points    int     `json:"points"`
	Player    *refDTO `json:"player"`
	Event     *refDTO `json:"event"`
}

type photoDTO struct {
	ID            int64   `json:"id"`
	CreatedAt     string  `json:"created_at"`
	Name          string  `json:"name"`
	EventID       int64   `json:"event_id"`
	StorageBucket string  `json:"storage_bucket"`
	StoragePath   string  `json:"storage_path"`
	URL           string  `json:"url,omitempty"`
	Event         *refDTO `json:"event"`
}

type deletedDTO struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		CreatedAt:     formatTimestamp(p.CreatedAt),
		Name:          p.Name,
		GHINNo:        p.GHINNo,
		HandicapIndex: p.HandicapIndex,
	}
}

func seriesToDTO(s series.Series) seriesDTO {
	return seriesDTO{
		ID:        s.ID,
		CreatedAt: formatTimestamp(s.CreatedAt),
		Name:      s.Name,
		StartAt:   formatTimestamp(s.StartAt),
		EndAt:     formatTimestamp(s.EndAt),
	}
}

func eventToDTO(e event.Event) eventDTO {
	out := eventDTO{
		ID:         e.ID,
		CreatedAt:  formatTimestamp(e.CreatedAt),
		Name:       e.Name,
		CourseName: e.CourseName,
		StartAt:    formatTimestamp(e.StartAt),
		EndAt:      formatTimestamp(e.EndAt),
		SeriesID:   e.SeriesID,
	}
	if e.Series != nil {
		out.Series = &refDTO{ID: e.Series.ID, Name: e.Series.Name}
	}
	return out
}

func resultToDTO(r result.Result) resultDTO {
	out := resultDTO{
		ID:        r.ID,
		CreatedAt: formatTimestamp(r.CreatedAt),
		PlayerID:  r.PlayerID,
		EventID:   r.EventID,
		Points:    r.Points,
	}
	if r.Player != nil {
		out.Player = &refDTO{ID: r.Player.ID, Name: r.Player.Name}
	}
	if r.Event != nil {
		out.Event = &refDTO{ID: r.Event.ID, Name: r.Event.Name}
	}
	return out
}

func photoToDTO(p photo.Photo, publicURL func(bucket, path string) string) photoDTO {
	out := photoDTO{
		ID:            p.ID,
		CreatedAt:     formatTimestamp(p.CreatedAt),
		Name:          p.Name,
		EventID:       p.EventID,
		StorageBucket: p.StorageBucket,
		StoragePath:   p.StoragePath,
	}
	if publicURL != nil && p.StorageBucket != "" && p.StoragePath != "" {
		out.URL = publicURL(p.StorageBucket, p.StoragePath)
	}
	if p.Event != nil {
		out.Event = &refDTO{ID: p.Event.ID, Name: p.Event.Name}
	}
	return out
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
