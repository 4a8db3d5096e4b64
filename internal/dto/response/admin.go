package response

import "beton-feedback/internal/audit"

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ProductStat struct {
	ProductName   string  `json:"productName"`
	Count         int64   `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

type StatisticsResponse struct {
	Success       bool          `json:"success"`
	UsersCount    int64         `json:"usersCount"`
	EvalCount     int64         `json:"evalCount"`
	AdminsCount   int64         `json:"adminsCount"`
	ProductsStats []ProductStat `json:"productsStats"`
}

type LogsResponse struct {
	Success bool          `json:"success"`
	Logs    []audit.Entry `json:"logs"`
}

// Report is a rendered file ready to be sent as an attachment
type Report struct {
	Filename    string
	ContentType string
	Body        []byte
}
