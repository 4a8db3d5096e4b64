package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want Rating
	}{
		{`4`, 4},
		{`"5"`, 5},
		{`" 3 "`, 3},
		{`4.9`, 4},
		{`null`, 0},
		{`""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var r Rating
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &r))
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestRating_UnmarshalJSON_RejectsText(t *testing.T) {
	var req SubmitEvaluationRequest
	err := json.Unmarshal([]byte(`{"overallRating":"five"}`), &req)
	assert.Error(t, err)
}
