package domain

// OffsetPage is a validated (offset, limit) pair bounding a list query.
//
// The derived page index is offset/limit, so an offset that is not a
// multiple of the limit snaps back to the enclosing page boundary. Callers
// must not assume finer granularity than the limit.
type OffsetPage struct {
	offset int
	limit  int
}

// NewOffsetPage validates offset >= 0 and limit >= 1.
func NewOffsetPage(offset, limit int) (OffsetPage, error) {
	if offset < 0 {
		return OffsetPage{}, NewValidationError("offset must not be less than zero")
	}
	if limit < 1 {
		return OffsetPage{}, NewValidationError("limit must not be less than one")
	}
	return OffsetPage{offset: offset, limit: limit}, nil
}

// Offset returns the requested row offset.
func (p OffsetPage) Offset() int { return p.offset }

// Limit returns the maximum number of rows per page.
func (p OffsetPage) Limit() int { return p.limit }

// PageIndex returns the zero-based page this offset falls on.
func (p OffsetPage) PageIndex() int { return p.offset / p.limit }

// RowOffset returns the first row of the enclosing page.
func (p OffsetPage) RowOffset() int { return p.PageIndex() * p.limit }
