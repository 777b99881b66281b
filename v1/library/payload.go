package library

import (
	"fmt"
	"strconv"

	"github.com/pulsesearch/lyricml/v1/classifier"
)

// EmotionsFromAny converts a decoded emotions value into scores. It accepts
// a list whose items are either {"label", "score"} objects or bare label
// strings (score 0). Unknown item shapes are skipped.
func EmotionsFromAny(v any) []classifier.EmotionScore {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]classifier.EmotionScore, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case string:
			out = append(out, classifier.EmotionScore{Label: it})
		case map[string]any:
			label, _ := it["label"].(string)
			if label == "" {
				continue
			}
			out = append(out, classifier.EmotionScore{Label: label, Score: toFloat(it["score"])})
		}
	}
	return out
}

// StringFromAny returns v as a string, formatting numbers and booleans.
func StringFromAny(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}
