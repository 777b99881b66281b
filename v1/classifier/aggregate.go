package classifier

import (
	"sort"
	"strconv"
)

// Aggregate averages per-chunk distributions into one list. Scores of a
// label are averaged over the chunks that report it, rounded to four
// decimals, filtered by minScore and sorted by score descending. Labels with
// equal scores keep the order in which they were first seen.
func Aggregate(perChunk [][]EmotionScore, minScore float64) []EmotionScore {
	scores := make(map[string][]float64)
	var order []string
	for _, chunk := range perChunk {
		for _, s := range chunk {
			if _, seen := scores[s.Label]; !seen {
				order = append(order, s.Label)
			}
			scores[s.Label] = append(scores[s.Label], s.Score)
		}
	}

	out := make([]EmotionScore, 0, len(order))
	for _, label := range order {
		avg := Round4(mean(scores[label]))
		if avg < minScore {
			continue
		}
		out = append(out, EmotionScore{Label: label, Score: avg})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// Round4 rounds x to four decimals. Exact ties in the binary value go to
// the even digit.
func Round4(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 4, 64), 64)
	if err != nil {
		return x
	}
	return r
}
