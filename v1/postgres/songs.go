package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/observability"
)

type songRow struct {
	Artist    string
	Title     string
	Emotions  []byte
	Embedding pq.Float32Array
}

// Songs reads the whole song table. Rows with undecodable emotions keep
// their embedding and get no emotions.
func (p *Postgres) Songs(ctx context.Context) (songs []library.SongRecord, err error) {
	start := time.Now()
	defer func() {
		observability.Observe(p.observer, "postgres", "select", p.cfg.Table, start, err, int64(len(songs)))
	}()

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	var rows []songRow
	err = p.DB().WithContext(ctx).
		Table(p.cfg.Table).
		Select("artist", "title", "emotions", "embedding").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("[Postgres] read %s: %w", p.cfg.Table, TranslateError(err))
	}

	songs = make([]library.SongRecord, 0, len(rows))
	for _, r := range rows {
		songs = append(songs, r.toSongRecord(p.logger))
	}
	return songs, nil
}

func (r songRow) toSongRecord(logger Logger) library.SongRecord {
	rec := library.SongRecord{Artist: r.Artist, Title: r.Title}
	if len(r.Embedding) > 0 {
		rec.Embedding = []float32(r.Embedding)
	}
	if len(r.Emotions) == 0 {
		return rec
	}
	var raw any
	if err := json.Unmarshal(r.Emotions, &raw); err != nil {
		if logger != nil {
			logger.Warn("Skipping undecodable emotions", err, map[string]interface{}{
				"artist": r.Artist,
				"title":  r.Title,
			})
		}
		return rec
	}
	rec.Emotions = library.EmotionsFromAny(raw)
	return rec
}
