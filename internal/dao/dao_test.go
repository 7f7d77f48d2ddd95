package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	db, err := NewDBEngine(&DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "wiki-test.db"),
		AutoMigrate:  true,
		MaxIdleConns: 2,
		MaxOpenConns: 2,
	})
	require.NoError(t, err)
	return New(db, context.Background())
}

func TestUniverseCRUD(t *testing.T) {
	d := newTestDao(t)
	repo := NewUniverseRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Universe{Name: "Middle-earth", Description: "Arda"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Middle-earth", got.Name)

	got.Description = "The lands of Arda"
	got.ImageURL = "/uploads/cover.png"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The lands of Arda", updated.Description)
	assert.Equal(t, "/uploads/cover.png", updated.ImageURL)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}

func TestUniverseUpdateMissingRecord(t *testing.T) {
	d := newTestDao(t)
	repo := NewUniverseRepository(d)

	err := repo.Update(context.Background(), &domain.Universe{ID: 404, Name: "ghost"})
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(repo.Delete(context.Background(), 404)))
}

func TestUniverseListNewestFirst(t *testing.T) {
	d := newTestDao(t)
	repo := NewUniverseRepository(d)
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Universe{Name: "Alpha"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.Universe{Name: "Beta"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Same-second inserts fall back to id ordering
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestEntityCRUDWithAttributes(t *testing.T) {
	d := newTestDao(t)
	universes := NewUniverseRepository(d)
	entities := NewEntityRepository(d)
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Hyboria"})
	require.NoError(t, err)

	created, err := entities.Create(ctx, &domain.Entity{
		UniverseID:  uni.ID,
		Type:        domain.EntityTypeCharacter,
		Name:        "Conan",
		Description: "A wanderer",
		Attributes: []domain.Attribute{
			{Key: "Age", Value: "30"},
			{Key: "Occupation", Value: "Mercenary"},
		},
	})
	require.NoError(t, err)

	got, err := entities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Attributes, 2)
	assert.Equal(t, "Age", got.Attributes[0].Key)
	assert.Equal(t, "Occupation", got.Attributes[1].Key)

	got.Attributes = []domain.Attribute{{Key: "Title", Value: "King of Aquilonia"}}
	require.NoError(t, entities.Update(ctx, got))

	updated, err := entities.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, updated.Attributes, 1)
	assert.Equal(t, "Title", updated.Attributes[0].Key)

	require.NoError(t, entities.Delete(ctx, created.ID))
	_, err = entities.GetByID(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}

func TestEntityListFilterByType(t *testing.T) {
	d := newTestDao(t)
	universes := NewUniverseRepository(d)
	entities := NewEntityRepository(d)
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Discworld"})
	require.NoError(t, err)
	other, err := universes.Create(ctx, &domain.Universe{Name: "Roundworld"})
	require.NoError(t, err)

	_, err = entities.Create(ctx, &domain.Entity{UniverseID: uni.ID, Type: domain.EntityTypeCharacter, Name: "Rincewind"})
	require.NoError(t, err)
	_, err = entities.Create(ctx, &domain.Entity{UniverseID: uni.ID, Type: domain.EntityTypeLocation, Name: "Ankh-Morpork"})
	require.NoError(t, err)
	_, err = entities.Create(ctx, &domain.Entity{UniverseID: other.ID, Type: domain.EntityTypeCharacter, Name: "Stranger"})
	require.NoError(t, err)

	all, err := entities.ListByUniverse(ctx, uni.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	chars, err := entities.ListByUniverse(ctx, uni.ID, domain.EntityTypeCharacter)
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Equal(t, "Rincewind", chars[0].Name)
}

func TestEntityDeleteByUniverse(t *testing.T) {
	d := newTestDao(t)
	universes := NewUniverseRepository(d)
	entities := NewEntityRepository(d)
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Narnia"})
	require.NoError(t, err)
	keep, err := universes.Create(ctx, &domain.Universe{Name: "Charn"})
	require.NoError(t, err)

	_, err = entities.Create(ctx, &domain.Entity{UniverseID: uni.ID, Type: domain.EntityTypeCharacter, Name: "Aslan"})
	require.NoError(t, err)
	_, err = entities.Create(ctx, &domain.Entity{UniverseID: uni.ID, Type: domain.EntityTypeItem, Name: "Wardrobe"})
	require.NoError(t, err)
	survivor, err := entities.Create(ctx, &domain.Entity{UniverseID: keep.ID, Type: domain.EntityTypeCharacter, Name: "Jadis"})
	require.NoError(t, err)

	require.NoError(t, entities.DeleteByUniverse(ctx, uni.ID))

	gone, err := entities.ListByUniverse(ctx, uni.ID, "")
	require.NoError(t, err)
	assert.Empty(t, gone)

	still, err := entities.GetByID(ctx, survivor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jadis", still.Name)
}

func TestTemplateCRUD(t *testing.T) {
	d := newTestDao(t)
	repo := NewTemplateRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Template{
		Name: "Character Sheet",
		Type: domain.EntityTypeCharacter,
		Attributes: []domain.Attribute{
			{Key: "Age", Value: ""},
			{Key: "Occupation", Value: ""},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Attributes, 2)

	got.Name = "NPC Sheet"
	got.Attributes = append(got.Attributes, domain.Attribute{Key: "Faction", Value: ""})
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "NPC Sheet", updated.Name)
	assert.Len(t, updated.Attributes, 3)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}
