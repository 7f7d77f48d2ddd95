package service

import (
	"context"
	"io"
	"sort"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type memUniverseRepo struct {
	seq  int64
	rows map[int64]*domain.Universe
}

func newMemUniverseRepo() *memUniverseRepo {
	return &memUniverseRepo{rows: map[int64]*domain.Universe{}}
}

func (m *memUniverseRepo) List(ctx context.Context) ([]*domain.Universe, error) {
	out := make([]*domain.Universe, 0, len(m.rows))
	for _, u := range m.rows {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memUniverseRepo) GetByID(ctx context.Context, id int64) (*domain.Universe, error) {
	u, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUniverseRepo) Create(ctx context.Context, u *domain.Universe) (*domain.Universe, error) {
	m.seq++
	copied := *u
	copied.ID = m.seq
	m.rows[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (m *memUniverseRepo) Update(ctx context.Context, u *domain.Universe) error {
	if _, ok := m.rows[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *u
	m.rows[u.ID] = &copied
	return nil
}

func (m *memUniverseRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

type memEntityRepo struct {
	seq  int64
	rows map[int64]*domain.Entity
}

func newMemEntityRepo() *memEntityRepo {
	return &memEntityRepo{rows: map[int64]*domain.Entity{}}
}

func (m *memEntityRepo) ListByUniverse(ctx context.Context, universeID int64, entityType domain.EntityType) ([]*domain.Entity, error) {
	out := make([]*domain.Entity, 0)
	for _, e := range m.rows {
		if e.UniverseID != universeID {
			continue
		}
		if entityType != "" && e.Type != entityType {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memEntityRepo) GetByID(ctx context.Context, id int64) (*domain.Entity, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *memEntityRepo) Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	m.seq++
	copied := *e
	copied.ID = m.seq
	m.rows[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (m *memEntityRepo) Update(ctx context.Context, e *domain.Entity) error {
	if _, ok := m.rows[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *e
	m.rows[e.ID] = &copied
	return nil
}

func (m *memEntityRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memEntityRepo) DeleteByUniverse(ctx context.Context, universeID int64) error {
	for id, e := range m.rows {
		if e.UniverseID == universeID {
			delete(m.rows, id)
		}
	}
	return nil
}

type memTemplateRepo struct {
	seq  int64
	rows map[int64]*domain.Template
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{rows: map[int64]*domain.Template{}}
}

func (m *memTemplateRepo) List(ctx context.Context) ([]*domain.Template, error) {
	out := make([]*domain.Template, 0, len(m.rows))
	for _, t := range m.rows {
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	t, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *memTemplateRepo) Create(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	m.seq++
	copied := *t
	copied.ID = m.seq
	m.rows[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (m *memTemplateRepo) Update(ctx context.Context, t *domain.Template) error {
	if _, ok := m.rows[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *t
	m.rows[t.ID] = &copied
	return nil
}

func (m *memTemplateRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

// memFileStore records stored and deleted file keys.
type memFileStore struct {
	stored  map[string][]byte
	deleted []string
}

func newMemFileStore() *memFileStore {
	return &memFileStore{stored: map[string][]byte{}}
}

func (m *memFileStore) SendFile(fileKey string, file io.Reader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	m.stored[fileKey] = data
	return fileKey, nil
}

func (m *memFileStore) Delete(fileKey string) error {
	m.deleted = append(m.deleted, fileKey)
	delete(m.stored, fileKey)
	return nil
}

var (
	_ domain.UniverseRepository = (*memUniverseRepo)(nil)
	_ domain.EntityRepository   = (*memEntityRepo)(nil)
	_ domain.TemplateRepository = (*memTemplateRepo)(nil)
	_ domain.FileStore          = (*memFileStore)(nil)
)
