package service

import (
	"context"
	"testing"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/dto"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"

	"go.uber.org/zap"
)

func testUploadConfig() UploadConfig {
	return UploadConfig{
		URLPrefix: "/uploads",
		MaxSizeMB: 10,
		AllowExts: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
	}
}

func newUniverseFixture() (*Universe, *memUniverseRepo, *memEntityRepo, *memFileStore) {
	universes := newMemUniverseRepo()
	entities := newMemEntityRepo()
	store := newMemFileStore()
	svc := NewUniverse(universes, entities, store, testUploadConfig(), zap.NewNop())
	return svc, universes, entities, store
}

func TestUniverseCreateTrimsAndValidatesName(t *testing.T) {
	svc, _, _, _ := newUniverseFixture()
	ctx := context.Background()

	created, cerr := svc.Create(ctx, &dto.UniverseCreateRequest{Name: "  Aether  "})
	if cerr != nil {
		t.Fatalf("create: %v", cerr)
	}
	if created.Name != "Aether" {
		t.Fatalf("name not trimmed, got %q", created.Name)
	}

	_, cerr = svc.Create(ctx, &dto.UniverseCreateRequest{Name: "   "})
	if !code.ErrorUniverseNameRequired.Is(cerr) {
		t.Fatalf("want name-required error, got %v", cerr)
	}
}

func TestUniverseUpdatePartialFields(t *testing.T) {
	svc, _, _, _ := newUniverseFixture()
	ctx := context.Background()

	created, cerr := svc.Create(ctx, &dto.UniverseCreateRequest{Name: "Aether", Description: "old"})
	if cerr != nil {
		t.Fatalf("create: %v", cerr)
	}

	desc := "new description"
	updated, cerr := svc.Update(ctx, created.ID, &dto.UniverseUpdateRequest{Description: &desc})
	if cerr != nil {
		t.Fatalf("update: %v", cerr)
	}
	if updated.Name != "Aether" {
		t.Fatalf("absent name field must not change name, got %q", updated.Name)
	}
	if updated.Description != "new description" {
		t.Fatalf("description not updated, got %q", updated.Description)
	}

	blank := " "
	_, cerr = svc.Update(ctx, created.ID, &dto.UniverseUpdateRequest{Name: &blank})
	if !code.ErrorUniverseNameRequired.Is(cerr) {
		t.Fatalf("want name-required error, got %v", cerr)
	}
}

func TestUniverseGetMissing(t *testing.T) {
	svc, _, _, _ := newUniverseFixture()
	_, cerr := svc.Get(context.Background(), 404)
	if !code.ErrorUniverseNotFound.Is(cerr) {
		t.Fatalf("want not-found error, got %v", cerr)
	}
}

func TestUniverseDeleteCascades(t *testing.T) {
	svc, universes, entities, store := newUniverseFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether", ImageURL: "/uploads/uni.png"})
	if err != nil {
		t.Fatal(err)
	}
	other, err := universes.Create(ctx, &domain.Universe{Name: "Nether"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = entities.Create(ctx, &domain.Entity{UniverseID: uni.ID, Type: domain.EntityTypeCharacter, Name: "Mira", ImageURL: "/uploads/mira.png"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = entities.Create(ctx, &domain.Entity{UniverseID: uni.ID, Type: domain.EntityTypeItem, Name: "Blade"})
	if err != nil {
		t.Fatal(err)
	}
	survivor, err := entities.Create(ctx, &domain.Entity{UniverseID: other.ID, Type: domain.EntityTypeLore, Name: "Myth"})
	if err != nil {
		t.Fatal(err)
	}

	if cerr := svc.Delete(ctx, uni.ID); cerr != nil {
		t.Fatalf("delete: %v", cerr)
	}

	if _, err := universes.GetByID(ctx, uni.ID); err == nil {
		t.Fatal("universe record should be gone")
	}
	left, _ := entities.ListByUniverse(ctx, uni.ID, "")
	if len(left) != 0 {
		t.Fatalf("entities of deleted universe remain: %d", len(left))
	}
	if _, err := entities.GetByID(ctx, survivor.ID); err != nil {
		t.Fatal("entity of another universe must survive")
	}

	wantDeleted := map[string]bool{"uni.png": true, "mira.png": true}
	if len(store.deleted) != len(wantDeleted) {
		t.Fatalf("deleted files = %v, want uni.png and mira.png", store.deleted)
	}
	for _, key := range store.deleted {
		if !wantDeleted[key] {
			t.Fatalf("unexpected file deletion %q", key)
		}
	}
}

func TestUniverseDeleteMissing(t *testing.T) {
	svc, _, _, _ := newUniverseFixture()
	cerr := svc.Delete(context.Background(), 404)
	if !code.ErrorUniverseNotFound.Is(cerr) {
		t.Fatalf("want not-found error, got %v", cerr)
	}
}
