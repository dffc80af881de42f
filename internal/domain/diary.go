package domain

import "encoding/json"

// DiaryItem is one journal entry. Summary and Content are optional and
// omitted from responses when absent.
type DiaryItem struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Date    string  `json:"date"` // ISO date string, e.g. "2024-01-01"
	Summary *string `json:"summary,omitempty"`
	Content *string `json:"content,omitempty"`
}

// DiaryList is the canonical ordered sequence of diary items. The on-disk
// file may hold either a bare array or an object wrapping the array under
// an "items" key; both decode into the same list.
type DiaryList struct {
	Items []DiaryItem
}

// UnmarshalJSON accepts the two supported file layouts. An object without
// an "items" key decodes to an empty list. Any other layout is an error.
func (l *DiaryList) UnmarshalJSON(data []byte) error {
	var items []DiaryItem
	if err := json.Unmarshal(data, &items); err == nil {
		l.Items = items
		return nil
	}

	var wrapped struct {
		Items []DiaryItem `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	l.Items = wrapped.Items
	return nil
}
