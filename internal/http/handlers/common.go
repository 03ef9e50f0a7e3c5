package handlers

import (
	"net/http"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respond wraps data in the success envelope.
func respond[T any](c *gin.Context, status int, data T, message string) {
	c.JSON(status, domain.SuccessResponse(data, message))
}

// RespondError sends the failure envelope. errs defaults to the message itself.
func RespondError(c *gin.Context, status int, message string, errs ...string) {
	if len(errs) == 0 {
		errs = []string{message}
	}
	c.JSON(status, domain.ErrorResponse[any](message, errs...))
}

// BindJSONOrError ensures body is present, parsable and passes binding rules.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload", splitLines(err.Error())...)
		return false
	}
	return true
}

// ParseIDParam reads a uuid path parameter, answering 400 when it is malformed.
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err.Error())
		return uuid.Nil, false
	}
	return id, true
}

type pagedQuery struct {
	PageNumber int    `form:"pageNumber"`
	PageSize   int    `form:"pageSize"`
	SortBy     string `form:"sortBy"`
	SortDesc   bool   `form:"sortDesc"`
	SearchTerm string `form:"searchTerm"`
}

// PagedRequestFromQuery builds a normalized PagedRequest from the query string.
// Missing values take the defaults; out of range values are clamped.
func PagedRequestFromQuery(c *gin.Context) (domain.PagedRequest, bool) {
	var q pagedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid paging parameters", err.Error())
		return domain.PagedRequest{}, false
	}

	req := domain.NewPagedRequest()
	if _, ok := c.GetQuery("pageNumber"); ok {
		req.SetPageNumber(q.PageNumber)
	}
	if _, ok := c.GetQuery("pageSize"); ok {
		req.SetPageSize(q.PageSize)
	}
	if s := strings.TrimSpace(q.SortBy); s != "" {
		req.SortBy = s
	}
	req.SortDesc = q.SortDesc
	req.SearchTerm = strings.TrimSpace(q.SearchTerm)
	return req, true
}

func splitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseDateQuery reads an optional date query parameter. A plain YYYY-MM-DD
// upper bound covers the whole day.
func parseDateQuery(c *gin.Context, key string, upper bool) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid "+key, err.Error())
		return nil, false
	}
	if upper && len(raw) == len("2006-01-02") {
		t = utils.EndOfDay(t)
	}
	return &t, true
}

// dateRangeQuery reads the optional start and end query parameters.
func dateRangeQuery(c *gin.Context) (start, end *time.Time, ok bool) {
	if start, ok = parseDateQuery(c, "start", false); !ok {
		return nil, nil, false
	}
	if end, ok = parseDateQuery(c, "end", true); !ok {
		return nil, nil, false
	}
	return start, end, true
}
