package dao

import (
	"context"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/model"
	"github.com/demiurge-app/universe-wiki-service/pkg/timex"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type templateRepository struct {
	dao *Dao
}

var _ domain.TemplateRepository = (*templateRepository)(nil)

// NewTemplateRepository creates the template repository
// NewTemplateRepository 创建模板仓储
func NewTemplateRepository(dao *Dao) domain.TemplateRepository {
	return &templateRepository{dao: dao}
}

func (r *templateRepository) List(ctx context.Context) ([]*domain.Template, error) {
	var rows []*model.Template
	err := r.dao.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	list := make([]*domain.Template, 0, len(rows))
	for _, row := range rows {
		list = append(list, templateToDomain(row))
	}
	return list, nil
}

func (r *templateRepository) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	var row model.Template
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return templateToDomain(&row), nil
}

func (r *templateRepository) Create(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	row := templateToModel(t)
	row.ID = 0
	row.CreatedAt = timex.Now()
	if err := r.dao.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return templateToDomain(row), nil
}

func (r *templateRepository) Update(ctx context.Context, t *domain.Template) error {
	row := templateToModel(t)
	result := r.dao.db.WithContext(ctx).
		Model(&model.Template{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":       row.Name,
			"type":       row.Type,
			"attributes": row.Attributes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *templateRepository) Delete(ctx context.Context, id int64) error {
	result := r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Template{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func templateToDomain(row *model.Template) *domain.Template {
	var attrs []domain.Attribute
	_ = copier.Copy(&attrs, &row.Attributes)
	return &domain.Template{
		ID:         row.ID,
		Name:       row.Name,
		Type:       domain.EntityType(row.Type),
		Attributes: attrs,
		CreatedAt:  row.CreatedAt.Time(),
	}
}

func templateToModel(t *domain.Template) *model.Template {
	var attrs model.AttributeList
	_ = copier.Copy(&attrs, &t.Attributes)
	if attrs == nil {
		attrs = model.AttributeList{}
	}
	return &model.Template{
		ID:         t.ID,
		Name:       t.Name,
		Type:       string(t.Type),
		Attributes: attrs,
		CreatedAt:  timex.Time(t.CreatedAt),
	}
}
