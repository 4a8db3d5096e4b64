package wire

import (
	"context"
	"sort"
	"sync"

	"beton-feedback/internal/data/entity"
	"beton-feedback/internal/data/repository"

	"github.com/google/uuid"
)

// memoryStore backs both repositories so user deletes can cascade
type memoryStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*entity.User
	evaluations map[uuid.UUID]*entity.Evaluation
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       make(map[uuid.UUID]*entity.User),
		evaluations: make(map[uuid.UUID]*entity.Evaluation),
	}
}

func (s *memoryStore) repository() *repository.Repository {
	return &repository.Repository{
		User:       memoryUsers{s},
		Evaluation: memoryEvaluations{s},
	}
}

type memoryUsers struct{ s *memoryStore }

func (m memoryUsers) FindOrCreate(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Phone == user.Phone {
			cp := *u
			return &cp, false, nil
		}
	}
	cp := *user
	m.s.users[user.ID] = &cp
	return user, true, nil
}

func (m memoryUsers) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if u, ok := m.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m memoryUsers) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m memoryUsers) FindAdminByPhone(ctx context.Context, phone string) (*entity.User, error) {
	u, err := m.FindByPhone(ctx, phone)
	if err != nil || u == nil || !u.IsAdmin {
		return nil, err
	}
	return u, nil
}

func (m memoryUsers) FindAll(ctx context.Context) ([]*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]*entity.User, 0, len(m.s.users))
	for _, u := range m.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memoryUsers) CountAll(ctx context.Context) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return int64(len(m.s.users)), nil
}

func (m memoryUsers) CountAdmins(ctx context.Context) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var n int64
	for _, u := range m.s.users {
		if u.IsAdmin {
			n++
		}
	}
	return n, nil
}

func (m memoryUsers) Update(ctx context.Context, user *entity.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for id, u := range m.s.users {
		if id != user.ID && u.Phone == user.Phone {
			return repository.ErrDuplicatePhone
		}
	}
	cp := *user
	m.s.users[user.ID] = &cp
	return nil
}

func (m memoryUsers) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var removed int64
	for evalID, e := range m.s.evaluations {
		if e.UserID == id {
			delete(m.s.evaluations, evalID)
			removed++
		}
	}
	delete(m.s.users, id)
	return removed, nil
}

type memoryEvaluations struct{ s *memoryStore }

func (m memoryEvaluations) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	cp := *evaluation
	m.s.evaluations[evaluation.ID] = &cp
	return nil
}

func (m memoryEvaluations) withUser(e *entity.Evaluation) *entity.EvaluationWithUser {
	out := &entity.EvaluationWithUser{Evaluation: *e}
	if u, ok := m.s.users[e.UserID]; ok {
		out.Username = u.Username
		out.Phone = u.Phone
	}
	return out
}

func (m memoryEvaluations) FindByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationWithUser, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if e, ok := m.s.evaluations[id]; ok {
		return m.withUser(e), nil
	}
	return nil, nil
}

func (m memoryEvaluations) FindAll(ctx context.Context) ([]*entity.EvaluationWithUser, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]*entity.EvaluationWithUser, 0, len(m.s.evaluations))
	for _, e := range m.s.evaluations {
		out = append(out, m.withUser(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memoryEvaluations) CountAll(ctx context.Context) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return int64(len(m.s.evaluations)), nil
}

func (m memoryEvaluations) ProductStats(ctx context.Context) ([]entity.ProductStat, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byName := map[string]*entity.ProductStat{}
	sums := map[string]int{}
	for _, e := range m.s.evaluations {
		stat, ok := byName[e.ProductName]
		if !ok {
			stat = &entity.ProductStat{ProductName: e.ProductName}
			byName[e.ProductName] = stat
		}
		stat.Count++
		sums[e.ProductName] += e.OverallRating
	}
	out := make([]entity.ProductStat, 0, len(byName))
	for name, stat := range byName {
		stat.AverageRating = float64(sums[name]) / float64(stat.Count)
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}

func (m memoryEvaluations) Delete(ctx context.Context, id uuid.UUID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.evaluations, id)
	return nil
}
