package response

import (
	"time"

	"beton-feedback/internal/data/entity"
)

type EvaluationAuthor struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

type EvaluationResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	ProductName   string           `json:"productName"`
	Responses     map[string]any   `json:"responses"`
	OverallRating int              `json:"overallRating"`
	CreatedAt     time.Time        `json:"createdAt"`
	User          EvaluationAuthor `json:"User"`
}

func EvaluationToResponse(eval *entity.EvaluationWithUser) EvaluationResponse {
	return EvaluationResponse{
		ID:            eval.ID.String(),
		UserID:        eval.UserID.String(),
		ProductName:   eval.ProductName,
		Responses:     eval.Responses,
		OverallRating: eval.OverallRating,
		CreatedAt:     eval.CreatedAt,
		User: EvaluationAuthor{
			Username: eval.Username,
			Phone:    eval.Phone,
		},
	}
}

type EvaluationsResponse struct {
	Success     bool                 `json:"success"`
	Evaluations []EvaluationResponse `json:"evaluations"`
}
