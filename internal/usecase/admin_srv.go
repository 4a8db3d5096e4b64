package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"beton-feedback/internal/catalog"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/dto/response"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

// utf8BOM lets spreadsheet tools detect the encoding of Cyrillic exports
const utf8BOM = "\ufeff"

type AdminService interface {
	GetStatistics(ctx context.Context) (*response.StatisticsResponse, error)
	ExportEvaluations(ctx context.Context) (*response.Report, error)
	ExportUsers(ctx context.Context) (*response.Report, error)
	GetLogs(ctx context.Context) *response.LogsResponse
}

type adminService struct {
	repo  *repository.Repository
	state *State
	log   *zap.Logger
}

func NewAdminService(repo *repository.Repository, state *State, log *zap.Logger) AdminService {
	return &adminService{
		repo:  repo,
		state: state,
		log:   log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetStatistics(ctx context.Context) (*response.StatisticsResponse, error) {
	usersCount, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch statistics", err)
	}

	adminsCount, err := s.repo.User.CountAdmins(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch statistics", err)
	}

	evalCount, err := s.repo.Evaluation.CountAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch statistics", err)
	}

	stats, err := s.repo.Evaluation.ProductStats(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch statistics", err)
	}

	productsStats := make([]response.ProductStat, len(stats))
	for i, stat := range stats {
		productsStats[i] = response.ProductStat{
			ProductName:   stat.ProductName,
			Count:         stat.Count,
			AverageRating: stat.AverageRating,
		}
	}

	return &response.StatisticsResponse{
		Success:       true,
		UsersCount:    usersCount,
		EvalCount:     evalCount,
		AdminsCount:   adminsCount,
		ProductsStats: productsStats,
	}, nil
}

func (s *adminService) ExportEvaluations(ctx context.Context) (*response.Report, error) {
	evaluations, err := s.repo.Evaluation.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to export evaluations", err)
	}

	questions := catalog.Questions()
	header := []string{"id", "createdAt", "userId", "username", "phone", "productName", "overallRating"}
	for _, q := range questions {
		header = append(header, q.ResponseKey())
	}

	rows := make([][]string, 0, len(evaluations))
	for _, eval := range evaluations {
		row := []string{
			eval.ID.String(),
			eval.CreatedAt.UTC().Format(time.RFC3339),
			eval.UserID.String(),
			eval.Username,
			eval.Phone,
			eval.ProductName,
			strconv.Itoa(eval.OverallRating),
		}
		for _, q := range questions {
			row = append(row, csvValue(eval.Responses[q.ResponseKey()]))
		}
		rows = append(rows, row)
	}

	body, err := writeCSV(header, rows)
	if err != nil {
		return nil, utils.NewInternalError("Failed to export evaluations", err)
	}

	s.log.Info("Evaluations exported", zap.Int("rows", len(rows)))
	return &response.Report{
		Filename:    "evaluations.csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        body,
	}, nil
}

func (s *adminService) ExportUsers(ctx context.Context) (*response.Report, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to export users", err)
	}

	header := []string{"id", "username", "phone", "isAdmin", "createdAt"}
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, []string{
			user.ID.String(),
			user.Username,
			user.Phone,
			strconv.FormatBool(user.IsAdmin),
			user.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	body, err := writeCSV(header, rows)
	if err != nil {
		return nil, utils.NewInternalError("Failed to export users", err)
	}

	s.log.Info("Users exported", zap.Int("rows", len(rows)))
	return &response.Report{
		Filename:    "users.csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        body,
	}, nil
}

func (s *adminService) GetLogs(ctx context.Context) *response.LogsResponse {
	return &response.LogsResponse{Success: true, Logs: s.state.Audit.Recent()}
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}

	return buf.Bytes(), nil
}

func csvValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
