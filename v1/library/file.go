package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileSource reads a JSON array of records from disk once and serves the
// cached result afterwards.
type FileSource struct {
	path string

	once  sync.Once
	songs []SongRecord
	err   error
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type fileRecord struct {
	Artist    string    `json:"artist"`
	Title     string    `json:"title"`
	Emotions  any       `json:"emotions"`
	Embedding []float32 `json:"embedding"`
}

// Songs returns the records of the file.
func (f *FileSource) Songs(context.Context) ([]SongRecord, error) {
	f.once.Do(func() {
		f.songs, f.err = f.read()
	})
	return f.songs, f.err
}

func (f *FileSource) read() ([]SongRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read song library: %w", err)
	}
	var raw []fileRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode song library %s: %w", f.path, err)
	}
	songs := make([]SongRecord, 0, len(raw))
	for _, r := range raw {
		songs = append(songs, SongRecord{
			Artist:    r.Artist,
			Title:     r.Title,
			Emotions:  EmotionsFromAny(r.Emotions),
			Embedding: r.Embedding,
		})
	}
	return songs, nil
}
