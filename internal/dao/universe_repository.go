package dao

import (
	"context"
	"errors"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/model"
	"github.com/demiurge-app/universe-wiki-service/pkg/timex"

	"gorm.io/gorm"
)

type universeRepository struct {
	dao *Dao
}

var _ domain.UniverseRepository = (*universeRepository)(nil)

// NewUniverseRepository creates the universe repository
// NewUniverseRepository 创建宇宙仓储
func NewUniverseRepository(dao *Dao) domain.UniverseRepository {
	return &universeRepository{dao: dao}
}

func (r *universeRepository) List(ctx context.Context) ([]*domain.Universe, error) {
	var rows []*model.Universe
	err := r.dao.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	list := make([]*domain.Universe, 0, len(rows))
	for _, row := range rows {
		list = append(list, universeToDomain(row))
	}
	return list, nil
}

func (r *universeRepository) GetByID(ctx context.Context, id int64) (*domain.Universe, error) {
	var row model.Universe
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return universeToDomain(&row), nil
}

func (r *universeRepository) Create(ctx context.Context, u *domain.Universe) (*domain.Universe, error) {
	row := universeToModel(u)
	row.ID = 0
	row.CreatedAt = timex.Now()
	if err := r.dao.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return universeToDomain(row), nil
}

func (r *universeRepository) Update(ctx context.Context, u *domain.Universe) error {
	row := universeToModel(u)
	result := r.dao.db.WithContext(ctx).
		Model(&model.Universe{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":        row.Name,
			"description": row.Description,
			"image_url":   row.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *universeRepository) Delete(ctx context.Context, id int64) error {
	result := r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Universe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound reports whether err is the record-missing error
// IsNotFound 判断 err 是否为记录不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func universeToDomain(row *model.Universe) *domain.Universe {
	return &domain.Universe{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt.Time(),
	}
}

func universeToModel(u *domain.Universe) *model.Universe {
	return &model.Universe{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		ImageURL:    u.ImageURL,
		CreatedAt:   timex.Time(u.CreatedAt),
	}
}
