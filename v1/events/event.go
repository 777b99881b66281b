package events

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pulsesearch/lyricml/v1/classifier"
)

// TypeLyricsAnalyzed is the type of the event emitted after an analysis.
const TypeLyricsAnalyzed = "lyrics.analyzed"

// Event describes one finished analysis. The embedding itself is not
// carried, only its dimension.
type Event struct {
	ID         uuid.UUID                 `json:"id"`
	Type       string                    `json:"type"`
	OccurredAt time.Time                 `json:"occurred_at"`
	Artist     string                    `json:"artist"`
	Title      string                    `json:"title"`
	Emotions   []classifier.EmotionScore `json:"emotions"`
	Dimension  int                       `json:"dimension"`
}

// NewAnalyzed builds a lyrics.analyzed event with a fresh id.
func NewAnalyzed(artist, title string, emotions []classifier.EmotionScore, dimension int) Event {
	if emotions == nil {
		emotions = []classifier.EmotionScore{}
	}
	return Event{
		ID:         uuid.New(),
		Type:       TypeLyricsAnalyzed,
		OccurredAt: time.Now().UTC(),
		Artist:     artist,
		Title:      title,
		Emotions:   emotions,
		Dimension:  dimension,
	}
}

// Key returns the partition/routing key "artist/title".
func (e Event) Key() string {
	return strings.TrimSpace(e.Artist) + "/" + strings.TrimSpace(e.Title)
}

// Marshal encodes the event as JSON.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
