package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple carries the keys of rows that are written once
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// Evaluation is immutable once stored
type Evaluation struct {
	BaseSimple
	UserID        uuid.UUID      `db:"user_id"`
	ProductName   string         `db:"product_name"`
	Responses     map[string]any `db:"responses"`
	OverallRating int            `db:"overall_rating"`
}

// EvaluationWithUser joins the author's identity for listings and reports
type EvaluationWithUser struct {
	Evaluation
	Username string `db:"username"`
	Phone    string `db:"phone"`
}

type ProductStat struct {
	ProductName   string  `db:"product_name"`
	Count         int64   `db:"count"`
	AverageRating float64 `db:"average_rating"`
}
