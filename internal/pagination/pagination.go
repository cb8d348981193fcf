// Package pagination implements the shared page/offset contract used by
// every paginated query in the directory. Two equivalent
// parameterizations exist in the surrounding UI: 1-based page numbers
// with a page size, and raw offset/limit. Both clamp their inputs
// server-side so the store is never asked for an unbounded scan.
package pagination

const (
	// DefaultPageSize is used when the caller does not specify one.
	DefaultPageSize = 20
	// MaxPageSize caps every page size and limit.
	MaxPageSize = 100
)

// Range is a normalized slice of a result set.
type Range struct {
	Page   int // 1-based page number
	Size   int // effective page size, within [1, MaxPageSize]
	Offset int // rows to skip
}

// FromPage builds a Range from a 1-based page number and page size.
// page < 1 clamps to 1; pageSize <= 0 falls back to defaultSize and is
// then clamped to [1, maxSize].
func FromPage(page, pageSize, defaultSize, maxSize int) Range {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return Range{
		Page:   page,
		Size:   pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// FromOffset builds a Range from a raw offset/limit pair. offset < 0
// clamps to 0; limit <= 0 falls back to defaultSize and is then clamped
// to [1, maxSize]. The derived page number matches what the UI shows
// for the same slice.
func FromOffset(offset, limit, defaultSize, maxSize int) Range {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultSize
	}
	if limit > maxSize {
		limit = maxSize
	}
	return Range{
		Page:   offset/limit + 1,
		Size:   limit,
		Offset: offset,
	}
}

// HasMore reports whether rows remain past this range, given the exact
// pre-pagination total.
func (r Range) HasMore(total int) bool {
	return r.Offset+r.Size < total
}
