package bagelpay

import (
	"net/url"
	"strconv"
)

const (
	defaultPageNum  = 1
	defaultPageSize = 10
)

// ListParams selects one page of a list endpoint. Pages are 1-based. Both
// fields are validated before any request is sent; values below 1 (including
// the zero value) are rejected with a ValidationError.
type ListParams struct {
	PageNum  int
	PageSize int
}

// DefaultListParams returns the first page with the provider default size.
func DefaultListParams() ListParams {
	return ListParams{PageNum: defaultPageNum, PageSize: defaultPageSize}
}

func (p ListParams) query() (url.Values, error) {
	if p.PageNum < 1 {
		return nil, validationError("pageNum must be at least 1, got %d", p.PageNum)
	}
	if p.PageSize < 1 {
		return nil, validationError("pageSize must be at least 1, got %d", p.PageSize)
	}
	q := url.Values{}
	q.Set("pageNum", strconv.Itoa(p.PageNum))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	return q, nil
}

// Page is one page of list results. Total is the authoritative count on the
// server; Items holds the requested page in server-defined order, which the
// client never re-sorts. The client does not auto-paginate: traversal is
// driven by the caller comparing the running page number against
// TotalPages.
type Page[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// TotalPages reports how many pages of the given size cover Total.
func (p Page[T]) TotalPages(pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (p.Total + pageSize - 1) / pageSize
}
