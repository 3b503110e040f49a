package model

// Paged is one window of a sorted listing plus its paging metadata.
// A page past the end yields an empty Data window with the real totals.
type Paged[T any] struct {
	Total    int64 `json:"total"`
	LastPage int64 `json:"lastPage"`
	Data     []T   `json:"data"`
}
