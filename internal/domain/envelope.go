package domain

// Response is the uniform success/failure envelope for single-object
// queries. Engines never let an error cross their boundary; callers
// inspect Success and Error instead.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PageEnvelope is the uniform envelope for paginated queries. Total is
// the exact count of matching rows before pagination. A failed query is
// distinguishable from an empty result: Success is false and Error is
// set, while "nothing found" is Success true with Total zero.
type PageEnvelope[T any] struct {
	Success  bool   `json:"success"`
	Data     []T    `json:"data"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	HasMore  bool   `json:"hasMore"`
	Error    string `json:"error,omitempty"`
}

// OK wraps data in a successful Response.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// Fail builds a failed Response with the given error message.
func Fail[T any](msg string) Response[T] {
	return Response[T]{Success: false, Error: msg}
}

// EmptyPage builds the failure envelope for a paginated query: no data,
// zero total, never more pages.
func EmptyPage[T any](page, pageSize int, msg string) PageEnvelope[T] {
	return PageEnvelope[T]{
		Success:  false,
		Data:     []T{},
		Total:    0,
		Page:     page,
		PageSize: pageSize,
		HasMore:  false,
		Error:    msg,
	}
}
