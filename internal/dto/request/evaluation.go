package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type SubmitEvaluationRequest struct {
	UserID        string         `json:"userId" validate:"required"`
	ProductName   string         `json:"productName" validate:"required"`
	Responses     map[string]any `json:"responses" validate:"required"`
	OverallRating Rating         `json:"overallRating" validate:"required"`
}

// Rating accepts a JSON number or a numeric string; fractions are truncated.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}

	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*r = 0
			return nil
		}
	}

	n := json.Number(raw)
	if i, err := n.Int64(); err == nil {
		*r = Rating(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("overallRating must be a number")
	}
	*r = Rating(int(f))
	return nil
}
