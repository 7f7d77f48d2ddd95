package dao

import (
	"context"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/model"
	"github.com/demiurge-app/universe-wiki-service/pkg/timex"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type entityRepository struct {
	dao *Dao
}

var _ domain.EntityRepository = (*entityRepository)(nil)

// NewEntityRepository creates the entity repository
// NewEntityRepository 创建实体仓储
func NewEntityRepository(dao *Dao) domain.EntityRepository {
	return &entityRepository{dao: dao}
}

func (r *entityRepository) ListByUniverse(ctx context.Context, universeID int64, entityType domain.EntityType) ([]*domain.Entity, error) {
	query := r.dao.db.WithContext(ctx).Where("universe_id = ?", universeID)
	if entityType != "" {
		query = query.Where("type = ?", string(entityType))
	}
	var rows []*model.Entity
	err := query.Order("created_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	list := make([]*domain.Entity, 0, len(rows))
	for _, row := range rows {
		list = append(list, entityToDomain(row))
	}
	return list, nil
}

func (r *entityRepository) GetByID(ctx context.Context, id int64) (*domain.Entity, error) {
	var row model.Entity
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return entityToDomain(&row), nil
}

func (r *entityRepository) Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	row := entityToModel(e)
	row.ID = 0
	row.CreatedAt = timex.Now()
	if err := r.dao.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return entityToDomain(row), nil
}

func (r *entityRepository) Update(ctx context.Context, e *domain.Entity) error {
	row := entityToModel(e)
	result := r.dao.db.WithContext(ctx).
		Model(&model.Entity{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"name":        row.Name,
			"description": row.Description,
			"image_url":   row.ImageURL,
			"attributes":  row.Attributes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *entityRepository) Delete(ctx context.Context, id int64) error {
	result := r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Entity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *entityRepository) DeleteByUniverse(ctx context.Context, universeID int64) error {
	return r.dao.db.WithContext(ctx).
		Where("universe_id = ?", universeID).
		Delete(&model.Entity{}).Error
}

func entityToDomain(row *model.Entity) *domain.Entity {
	var attrs []domain.Attribute
	_ = copier.Copy(&attrs, &row.Attributes)
	return &domain.Entity{
		ID:          row.ID,
		UniverseID:  row.UniverseID,
		Type:        domain.EntityType(row.Type),
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Attributes:  attrs,
		CreatedAt:   row.CreatedAt.Time(),
	}
}

func entityToModel(e *domain.Entity) *model.Entity {
	var attrs model.AttributeList
	_ = copier.Copy(&attrs, &e.Attributes)
	if attrs == nil {
		attrs = model.AttributeList{}
	}
	return &model.Entity{
		ID:          e.ID,
		UniverseID:  e.UniverseID,
		Type:        string(e.Type),
		Name:        e.Name,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Attributes:  attrs,
		CreatedAt:   timex.Time(e.CreatedAt),
	}
}
