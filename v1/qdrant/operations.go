package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// Songs scrolls every point of the collection and converts it to a
// library.SongRecord. Points without a usable vector are returned without an
// embedding.
func (c *QdrantClient) Songs(ctx context.Context) (songs []library.SongRecord, err error) {
	start := time.Now()
	defer func() {
		observability.Observe(c.observer, "qdrant", "scroll", c.cfg.Collection, start, err, int64(len(songs)))
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	withVectors := qdrant.NewWithVectors(true)
	if c.cfg.VectorName != "" {
		withVectors = qdrant.NewWithVectorsInclude(c.cfg.VectorName)
	}

	var offset *qdrant.PointId
	for {
		points, next, err := c.api.ScrollAndOffset(ctx, &qdrant.ScrollPoints{
			CollectionName: c.cfg.Collection,
			Offset:         offset,
			Limit:          qdrant.PtrOf(c.cfg.PageSize),
			WithPayload:    qdrant.NewWithPayload(true),
			WithVectors:    withVectors,
		})
		if err != nil {
			return nil, fmt.Errorf("[Qdrant] scroll %s: %w", c.cfg.Collection, err)
		}
		for _, p := range points {
			songs = append(songs, toSongRecord(p, c.cfg.VectorName))
		}
		if next == nil || len(points) == 0 {
			return songs, nil
		}
		offset = next
	}
}
