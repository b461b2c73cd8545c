package sumup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMerchantCode(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    string
		found   bool
	}{
		{
			name: "nested merchant_profile",
			payload: map[string]any{
				"merchant_profile": map[string]any{"merchant_code": "M123"},
			},
			want:  "M123",
			found: true,
		},
		{
			name:    "top-level merchant_code",
			payload: map[string]any{"merchant_code": "M456"},
			want:    "M456",
			found:   true,
		},
		{
			name: "account object",
			payload: map[string]any{
				"account": map[string]any{"merchant_code": "M789"},
			},
			want:  "M789",
			found: true,
		},
		{
			name: "nested location wins over top-level",
			payload: map[string]any{
				"merchant_profile": map[string]any{"merchant_code": "NESTED"},
				"merchant_code":    "TOP",
			},
			want:  "NESTED",
			found: true,
		},
		{
			name:    "no known location",
			payload: map[string]any{"username": "someone"},
			found:   false,
		},
		{
			name: "empty string is not a code",
			payload: map[string]any{
				"merchant_profile": map[string]any{"merchant_code": ""},
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractMerchantCode(tt.payload)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnwrapTransactionList_AllShapes(t *testing.T) {
	// The same logical list must come out of every tolerated envelope.
	bodies := map[string]string{
		"items wrapper": `{"items": [{"id": "t1"}, {"id": "t2"}]}`,
		"data wrapper":  `{"data": [{"id": "t1"}, {"id": "t2"}]}`,
		"bare array":    `[{"id": "t1"}, {"id": "t2"}]`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			items, ok := unwrapTransactionList([]byte(body))
			require.True(t, ok)
			require.Len(t, items, 2)
			assert.Equal(t, "t1", items[0]["id"])
			assert.Equal(t, "t2", items[1]["id"])
		})
	}
}

func TestUnwrapTransactionList_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object without known wrapper", body: `{"results": [{"id": "t1"}]}`},
		{name: "list of non-objects", body: `[1, 2, 3]`},
		{name: "not json", body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := unwrapTransactionList([]byte(tt.body))
			assert.False(t, ok)
		})
	}
}

func TestUnwrapTransactionList_EmptyList(t *testing.T) {
	items, ok := unwrapTransactionList([]byte(`{"items": []}`))
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestFirstNumber(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    float64
		found   bool
	}{
		{name: "json number", payload: map[string]any{"amount": 12.5}, want: 12.5, found: true},
		{name: "numeric string", payload: map[string]any{"amount": "7.25"}, want: 7.25, found: true},
		{name: "fallback key", payload: map[string]any{"total_amount": 3.0}, want: 3.0, found: true},
		{name: "unparsable string", payload: map[string]any{"amount": "twelve"}, found: false},
		{name: "missing", payload: map[string]any{}, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstNumber(tt.payload, amountKeys)
			assert.Equal(t, tt.found, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFirstTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    time.Time
		found   bool
	}{
		{
			name:    "rfc3339",
			payload: map[string]any{"timestamp": "2024-03-01T10:30:00Z"},
			want:    time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			found:   true,
		},
		{
			name:    "space-separated layout via fallback key",
			payload: map[string]any{"local_time": "2024-03-01 10:30:00"},
			want:    time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			found:   true,
		},
		{
			name:    "date only",
			payload: map[string]any{"created_at": "2024-03-01"},
			want:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			found:   true,
		},
		{
			name:    "garbage",
			payload: map[string]any{"timestamp": "not-a-time"},
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstTimestamp(tt.payload, timestampKeys)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}
