package usecase

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"beton-feedback/internal/audit"
	"beton-feedback/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_GetStatistics(t *testing.T) {
	f := newFixture()
	f.users.On("CountAll", mock.Anything).Return(int64(5), nil)
	f.users.On("CountAdmins", mock.Anything).Return(int64(1), nil)
	f.evals.On("CountAll", mock.Anything).Return(int64(7), nil)
	f.evals.On("ProductStats", mock.Anything).Return([]entity.ProductStat{
		{ProductName: "Бетон М300", Count: 4, AverageRating: 4.25},
	}, nil)

	resp, err := f.service().Admin.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.UsersCount)
	assert.Equal(t, int64(1), resp.AdminsCount)
	assert.Equal(t, int64(7), resp.EvalCount)
	require.Len(t, resp.ProductsStats, 1)
	assert.Equal(t, 4.25, resp.ProductsStats[0].AverageRating)
}

func TestAdminService_ExportEvaluations(t *testing.T) {
	f := newFixture()
	eval := storedEvaluation()
	f.evals.On("FindAll", mock.Anything).Return([]*entity.EvaluationWithUser{eval}, nil)

	file, err := f.service().Admin.ExportEvaluations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "evaluations.csv", file.Filename)

	body := string(file.Body)
	require.True(t, strings.HasPrefix(body, utf8BOM))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(body, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "question_1", records[0][7])
	assert.Equal(t, eval.ID.String(), records[1][0])
	assert.Equal(t, "Пескобетон", records[1][5])
	assert.Equal(t, "4", records[1][7])
	assert.Equal(t, "Не соответствовала", records[1][8])
	assert.Equal(t, "", records[1][9])
}

func TestAdminService_GetLogs_NewestFirst(t *testing.T) {
	f := newFixture()
	f.state.Audit.Record(audit.ActionAddProduct, nil, "")
	f.state.Audit.Record(audit.ActionDeleteProduct, nil, "")

	logs := f.service().Admin.GetLogs(context.Background()).Logs
	require.Len(t, logs, 2)
	assert.Equal(t, audit.ActionDeleteProduct, logs[0].Action)
}
