package usecase

import (
	"context"
	"sync"
	"time"

	"beton-feedback/internal/audit"
	"beton-feedback/internal/catalog"
	"beton-feedback/internal/data/entity"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindOrCreate(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Bool(1), args.Error(2)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	args := m.Called(ctx, phone)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindAdminByPhone(ctx context.Context, phone string) (*entity.User, error) {
	args := m.Called(ctx, phone)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockEvaluationRepo struct {
	mock.Mock
}

func (m *mockEvaluationRepo) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	return m.Called(ctx, evaluation).Error(0)
}

func (m *mockEvaluationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationWithUser, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*entity.EvaluationWithUser)
	return e, args.Error(1)
}

func (m *mockEvaluationRepo) FindAll(ctx context.Context) ([]*entity.EvaluationWithUser, error) {
	args := m.Called(ctx)
	evals, _ := args.Get(0).([]*entity.EvaluationWithUser)
	return evals, args.Error(1)
}

func (m *mockEvaluationRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEvaluationRepo) ProductStats(ctx context.Context) ([]entity.ProductStat, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]entity.ProductStat)
	return stats, args.Error(1)
}

func (m *mockEvaluationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type publishedEvent struct {
	Event string
	Data  any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(event string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Event: event, Data: data})
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Event
	}
	return out
}

type fixture struct {
	users  *mockUserRepo
	evals  *mockEvaluationRepo
	events *recordingPublisher
	state  *State
	repo   *repository.Repository
}

func newFixture() *fixture {
	users := &mockUserRepo{}
	evals := &mockEvaluationRepo{}
	events := &recordingPublisher{}

	return &fixture{
		users:  users,
		evals:  evals,
		events: events,
		state: &State{
			Audit:    audit.NewLog(10),
			Products: catalog.NewProducts([]string{"Бетон М300", "Пескобетон"}),
			Events:   events,
			Reports:  report.NewRenderer(catalog.Questions(), time.UTC),
		},
		repo: &repository.Repository{User: users, Evaluation: evals},
	}
}

func (f *fixture) service() *Service {
	return NewService(f.repo, f.state, nil, zap.NewNop())
}

func newUser(phone string, isAdmin bool) *entity.User {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     "Иван",
		Phone:        phone,
		IsAdmin:      isAdmin,
	}
}
