package qdrant

import (
	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/pulsesearch/lyricml/v1/library"
)

// toSongRecord converts a retrieved point to a song record.
func toSongRecord(p *qdrant.RetrievedPoint, vectorName string) library.SongRecord {
	payload := convertPayload(p.GetPayload())
	return library.SongRecord{
		Artist:    library.StringFromAny(payload["artist"]),
		Title:     library.StringFromAny(payload["title"]),
		Emotions:  library.EmotionsFromAny(payload["emotions"]),
		Embedding: extractVector(p.GetVectors(), vectorName),
	}
}

// extractVector returns the dense vector of a point, or nil.
func extractVector(v *qdrant.VectorsOutput, name string) []float32 {
	if v == nil {
		return nil
	}
	var out *qdrant.VectorOutput
	if name == "" {
		out = v.GetVector()
	} else {
		out = v.GetVectors().GetVectors()[name]
	}
	if out == nil {
		return nil
	}
	if dense := out.GetDense(); dense != nil {
		return dense.GetData()
	}
	return out.GetData()
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}
