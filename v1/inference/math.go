package inference

import "math"

// Sigmoid returns 1/(1+e^-x).
func Sigmoid(x float32) float64 {
	return 1 / (1 + math.Exp(-float64(x)))
}

// Softmax returns the softmax of logits, computed with the usual max shift.
func Softmax(logits []float32) []float64 {
	out := make([]float64, len(logits))
	if len(logits) == 0 {
		return out
	}
	maxLogit := float64(logits[0])
	for _, v := range logits[1:] {
		maxLogit = math.Max(maxLogit, float64(v))
	}
	var sum float64
	for i, v := range logits {
		out[i] = math.Exp(float64(v) - maxLogit)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// MeanPool averages the token vectors of a [seqLen x dim] row-major hidden
// state, counting only positions whose mask value is non-zero.
func MeanPool(hidden []float32, seqLen, dim int, mask []int64) []float32 {
	out := make([]float32, dim)
	var count float32
	for t := 0; t < seqLen && t < len(mask); t++ {
		if mask[t] == 0 {
			continue
		}
		row := hidden[t*dim : (t+1)*dim]
		for i, v := range row {
			out[i] += v
		}
		count++
	}
	if count == 0 {
		return out
	}
	for i := range out {
		out[i] /= count
	}
	return out
}

// L2Normalize returns v scaled to unit length. A zero vector is returned
// unchanged (as a copy).
func L2Normalize(v []float32) []float32 {
	out := make([]float32, len(v))
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		copy(out, v)
		return out
	}
	norm := math.Sqrt(sum)
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
