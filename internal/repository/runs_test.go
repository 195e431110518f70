//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRunQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name     string
		opts     RunQueryOptions
		expected bson.M
	}{
		{
			name:     "empty options match everything",
			opts:     RunQueryOptions{},
			expected: bson.M{},
		},
		{
			name:     "request id filter",
			opts:     RunQueryOptions{RequestID: "abc-123"},
			expected: bson.M{"request_id": "abc-123"},
		},
		{
			name:     "status filter",
			opts:     RunQueryOptions{Status: "Infeasible"},
			expected: bson.M{"status": "Infeasible"},
		},
		{
			name: "time window",
			opts: RunQueryOptions{StartTime: &start, EndTime: &end},
			expected: bson.M{
				"created_at": bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			name: "combined filters",
			opts: RunQueryOptions{Status: "Optimal", StartTime: &start},
			expected: bson.M{
				"status":     "Optimal",
				"created_at": bson.M{"$gte": start},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.filter())
		})
	}
}
