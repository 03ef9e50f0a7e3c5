package domain

import (
	"encoding/json"
	"math"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 50
	DefaultSortBy     = "Id"
)

// PagedRequest carries paging, sorting and search input for list endpoints.
// Page number and size are normalized on every assignment, so no consumer
// ever sees an out-of-range value.
type PagedRequest struct {
	pageNumber int
	pageSize   int
	SortBy     string
	SortDesc   bool
	SearchTerm string
}

// NewPagedRequest returns a request with defaults applied.
func NewPagedRequest() PagedRequest {
	return PagedRequest{
		pageNumber: DefaultPageNumber,
		pageSize:   DefaultPageSize,
		SortBy:     DefaultSortBy,
	}
}

func (r PagedRequest) PageNumber() int {
	if r.pageNumber < 1 {
		return DefaultPageNumber
	}
	return r.pageNumber
}

func (r PagedRequest) PageSize() int {
	if r.pageSize < 1 {
		return DefaultPageSize
	}
	return r.pageSize
}

// SetPageNumber clamps values below 1 to 1.
func (r *PagedRequest) SetPageNumber(n int) {
	if n < 1 {
		n = 1
	}
	r.pageNumber = n
}

// SetPageSize caps values above MaxPageSize and resets values below 1 to the default.
func (r *PagedRequest) SetPageSize(n int) {
	switch {
	case n > MaxPageSize:
		n = MaxPageSize
	case n < 1:
		n = DefaultPageSize
	}
	r.pageSize = n
}

// Offset is the number of filtered rows skipped before the page starts.
// It saturates at math.MaxInt instead of overflowing for huge page numbers.
func (r PagedRequest) Offset() int {
	skip, size := r.PageNumber()-1, r.PageSize()
	if skip > math.MaxInt/size {
		return math.MaxInt
	}
	return skip * size
}

// PagedResponse is one page of T plus totals. TotalPages is always derived
// from TotalRecords and PageSize.
type PagedResponse[T any] struct {
	PageNumber   int
	PageSize     int
	TotalRecords int
	Data         []T
}

func NewPagedResponse[T any](data []T, total, pageNumber, pageSize int) PagedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PagedResponse[T]{
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalRecords: total,
		Data:         data,
	}
}

func (p PagedResponse[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.TotalRecords) / float64(p.PageSize)))
}

func (p PagedResponse[T]) HasPrevious() bool {
	return p.PageNumber > 1
}

func (p PagedResponse[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}

func (p PagedResponse[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PageNumber   int  `json:"pageNumber"`
		PageSize     int  `json:"pageSize"`
		TotalPages   int  `json:"totalPages"`
		TotalRecords int  `json:"totalRecords"`
		Data         []T  `json:"data"`
		HasPrevious  bool `json:"hasPrevious"`
		HasNext      bool `json:"hasNext"`
	}{
		PageNumber:   p.PageNumber,
		PageSize:     p.PageSize,
		TotalPages:   p.TotalPages(),
		TotalRecords: p.TotalRecords,
		Data:         p.Data,
		HasPrevious:  p.HasPrevious(),
		HasNext:      p.HasNext(),
	})
}

// ApiResponse is the envelope for every JSON body the API returns.
type ApiResponse[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors"`
}

func SuccessResponse[T any](data T, message string) ApiResponse[T] {
	if message == "" {
		message = "Operation completed successfully"
	}
	return ApiResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  []string{},
	}
}

func ErrorResponse[T any](message string, errs ...string) ApiResponse[T] {
	if errs == nil {
		errs = []string{}
	}
	return ApiResponse[T]{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}

// RequestContext carries the authenticated identity taken from a bearer token.
type RequestContext struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
