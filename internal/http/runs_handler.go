package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-optimizer/internal/repository"
)

// RunsHandler provides HTTP handlers for optimization run history routes.
type RunsHandler struct {
	runs repository.RunsRepositoryInterface
}

// NewRunsHandler creates a new RunsHandler instance.
func NewRunsHandler(runs repository.RunsRepositoryInterface) *RunsHandler {
	return &RunsHandler{runs: runs}
}

// ListRuns handles GET /api/runs requests. Supported query parameters:
// request_id, status, start_time, end_time (RFC 3339), limit and skip.
func (h *RunsHandler) ListRuns(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.runs == nil {
		builder.Error(http.StatusNotFound, "run history is not enabled", nil)
		return
	}

	opts, err := parseRunQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	ctx := c.Request.Context()
	runs, err := h.runs.List(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to list runs", err)
		return
	}

	total, err := h.runs.Count(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to count runs", err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
		"total": total,
	})
}

// parseRunQuery translates query parameters into repository filter options.
func parseRunQuery(c *gin.Context) (repository.RunQueryOptions, error) {
	opts := repository.RunQueryOptions{
		RequestID: c.Query("request_id"),
		Status:    c.Query("status"),
		Limit:     100,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			return opts, &queryError{"limit must be a positive integer"}
		}
		opts.Limit = l
	}

	if skipStr := c.Query("skip"); skipStr != "" {
		s, err := strconv.Atoi(skipStr)
		if err != nil || s < 0 {
			return opts, &queryError{"skip must be a non-negative integer"}
		}
		opts.Skip = s
	}

	if startStr := c.Query("start_time"); startStr != "" {
		t, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return opts, &queryError{"start_time must be RFC 3339"}
		}
		opts.StartTime = &t
	}

	if endStr := c.Query("end_time"); endStr != "" {
		t, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return opts, &queryError{"end_time must be RFC 3339"}
		}
		opts.EndTime = &t
	}

	return opts, nil
}

type queryError struct {
	msg string
}

func (e *queryError) Error() string { return e.msg }
