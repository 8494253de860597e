package domain

import "encoding/json"

// Page is the normalized shape of every list endpoint. Some backend
// endpoints return a bare JSON array, others a {"content": [...]}
// wrapper; decoding accepts both and always yields the wrapper form
// with element order preserved.
type Page[T any] struct {
	Content []T `json:"content"`
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := firstNonSpace(data)
	if trimmed == '[' {
		return json.Unmarshal(data, &p.Content)
	}

	var wrapped struct {
		Content []T `json:"content"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	p.Content = wrapped.Content
	return nil
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b
		}
	}
	return 0
}
