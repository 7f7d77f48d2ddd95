package service

import (
	"context"
	"testing"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/dto"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"
	"github.com/demiurge-app/universe-wiki-service/pkg/wikilink"

	"go.uber.org/zap"
)

func newEntityFixture() (*Entity, *memUniverseRepo, *memEntityRepo, *memTemplateRepo, *memFileStore) {
	universes := newMemUniverseRepo()
	entities := newMemEntityRepo()
	templates := newMemTemplateRepo()
	store := newMemFileStore()
	svc := NewEntity(entities, universes, templates, store, testUploadConfig(), zap.NewNop())
	return svc, universes, entities, templates, store
}

func TestEntityCreateValidation(t *testing.T) {
	svc, universes, _, _, _ := newEntityFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		params  *dto.EntityCreateRequest
		wantErr *code.Code
	}{
		{
			name:    "blank name",
			params:  &dto.EntityCreateRequest{UniverseID: uni.ID, Type: "character", Name: "  "},
			wantErr: code.ErrorEntityNameRequired,
		},
		{
			name:    "invalid type",
			params:  &dto.EntityCreateRequest{UniverseID: uni.ID, Type: "spaceship", Name: "Mira"},
			wantErr: code.ErrorInvalidEntityType,
		},
		{
			name:    "dangling universe",
			params:  &dto.EntityCreateRequest{UniverseID: 404, Type: "character", Name: "Mira"},
			wantErr: code.ErrorUniverseNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cerr := svc.Create(ctx, tt.params)
			if !tt.wantErr.Is(cerr) {
				t.Fatalf("want %v, got %v", tt.wantErr, cerr)
			}
		})
	}
}

func TestEntityCreateCopiesTemplate(t *testing.T) {
	svc, universes, entities, templates, _ := newEntityFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether"})
	if err != nil {
		t.Fatal(err)
	}
	tpl, err := templates.Create(ctx, &domain.Template{
		Name: "Character Sheet",
		Type: domain.EntityTypeCharacter,
		Attributes: []domain.Attribute{
			{Key: "Age", Value: ""},
			{Key: "Occupation", Value: "Unknown"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	created, cerr := svc.Create(ctx, &dto.EntityCreateRequest{
		UniverseID: uni.ID,
		Type:       "character",
		Name:       "Mira",
		TemplateID: tpl.ID,
	})
	if cerr != nil {
		t.Fatalf("create: %v", cerr)
	}
	if len(created.Attributes) != 2 || created.Attributes[0].Key != "Age" || created.Attributes[1].Key != "Occupation" {
		t.Fatalf("template attributes not copied in order, got %+v", created.Attributes)
	}

	// The copy is severed, later template edits never reach the entity
	tpl.Attributes = []domain.Attribute{{Key: "Renamed", Value: ""}}
	if err := templates.Update(ctx, tpl); err != nil {
		t.Fatal(err)
	}
	stored, err := entities.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Attributes[0].Key != "Age" {
		t.Fatalf("entity attributes changed after template edit: %+v", stored.Attributes)
	}
}

func TestEntityCreateMissingTemplateSilentlyIgnored(t *testing.T) {
	svc, universes, _, _, _ := newEntityFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether"})
	if err != nil {
		t.Fatal(err)
	}

	created, cerr := svc.Create(ctx, &dto.EntityCreateRequest{
		UniverseID: uni.ID,
		Type:       "lore",
		Name:       "The Sundering",
		TemplateID: 999,
	})
	if cerr != nil {
		t.Fatalf("missing template must not fail creation: %v", cerr)
	}
	if len(created.Attributes) != 0 {
		t.Fatalf("expected blank attribute list, got %+v", created.Attributes)
	}
}

func TestEntityUpdateReplacesAttributesWholesale(t *testing.T) {
	svc, universes, _, _, _ := newEntityFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether"})
	if err != nil {
		t.Fatal(err)
	}
	created, cerr := svc.Create(ctx, &dto.EntityCreateRequest{UniverseID: uni.ID, Type: "character", Name: "Mira"})
	if cerr != nil {
		t.Fatalf("create: %v", cerr)
	}

	attrs := []dto.AttributeDTO{
		{Key: "Rank", Value: "Captain"},
		{Key: "Rank", Value: "Former smuggler"},
	}
	updated, cerr := svc.Update(ctx, created.ID, &dto.EntityUpdateRequest{Attributes: &attrs})
	if cerr != nil {
		t.Fatalf("update: %v", cerr)
	}
	if len(updated.Attributes) != 2 {
		t.Fatalf("attribute list not replaced, got %+v", updated.Attributes)
	}
	if updated.Attributes[0].Value != "Captain" || updated.Attributes[1].Value != "Former smuggler" {
		t.Fatalf("duplicate keys must keep order, got %+v", updated.Attributes)
	}
	if updated.Name != "Mira" {
		t.Fatalf("absent fields must be untouched, got name %q", updated.Name)
	}

	// Empty but present list clears the attributes
	empty := []dto.AttributeDTO{}
	cleared, cerr := svc.Update(ctx, created.ID, &dto.EntityUpdateRequest{Attributes: &empty})
	if cerr != nil {
		t.Fatalf("update: %v", cerr)
	}
	if len(cleared.Attributes) != 0 {
		t.Fatalf("attributes not cleared, got %+v", cleared.Attributes)
	}
}

func TestEntityListValidatesTypeAndUniverse(t *testing.T) {
	svc, universes, _, _, _ := newEntityFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether"})
	if err != nil {
		t.Fatal(err)
	}

	_, cerr := svc.List(ctx, &dto.EntityListRequest{UniverseID: uni.ID, Type: "starship"})
	if !code.ErrorInvalidEntityType.Is(cerr) {
		t.Fatalf("want invalid-type error, got %v", cerr)
	}
	_, cerr = svc.List(ctx, &dto.EntityListRequest{UniverseID: 404})
	if !code.ErrorUniverseNotFound.Is(cerr) {
		t.Fatalf("want universe-not-found error, got %v", cerr)
	}
}

func TestEntityDeleteRemovesImage(t *testing.T) {
	svc, universes, entities, _, store := newEntityFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether"})
	if err != nil {
		t.Fatal(err)
	}
	e, err := entities.Create(ctx, &domain.Entity{
		UniverseID: uni.ID,
		Type:       domain.EntityTypeCharacter,
		Name:       "Mira",
		ImageURL:   "/uploads/mira.png",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cerr := svc.Delete(ctx, e.ID); cerr != nil {
		t.Fatalf("delete: %v", cerr)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "mira.png" {
		t.Fatalf("cover file not removed, deleted = %v", store.deleted)
	}
}

func TestEntityResolveLinks(t *testing.T) {
	svc, universes, entities, _, _ := newEntityFixture()
	ctx := context.Background()

	uni, err := universes.Create(ctx, &domain.Universe{Name: "Aether"})
	if err != nil {
		t.Fatal(err)
	}
	mira, err := entities.Create(ctx, &domain.Entity{UniverseID: uni.ID, Type: domain.EntityTypeCharacter, Name: "Mira"})
	if err != nil {
		t.Fatal(err)
	}
	subject, err := entities.Create(ctx, &domain.Entity{
		UniverseID:  uni.ID,
		Type:        domain.EntityTypeLore,
		Name:        "The Sundering",
		Description: "Led by [[mira]] against [[The Void]].",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, cerr := svc.ResolveLinks(ctx, subject.ID)
	if cerr != nil {
		t.Fatalf("resolve: %v", cerr)
	}
	want := []wikilink.Segment{
		{Kind: wikilink.KindText, Text: "Led by "},
		{Kind: wikilink.KindLink, Text: "mira", EntityID: mira.ID},
		{Kind: wikilink.KindText, Text: " against "},
		{Kind: wikilink.KindUnresolved, Text: "The Void"},
		{Kind: wikilink.KindText, Text: "."},
	}
	if len(got.Segments) != len(want) {
		t.Fatalf("segments = %+v, want %+v", got.Segments, want)
	}
	for i := range want {
		if got.Segments[i] != want[i] {
			t.Fatalf("segment %d = %+v, want %+v", i, got.Segments[i], want[i])
		}
	}
}

func TestEntityResolveLinksMissingEntity(t *testing.T) {
	svc, _, _, _, _ := newEntityFixture()
	_, cerr := svc.ResolveLinks(context.Background(), 404)
	if !code.ErrorEntityNotFound.Is(cerr) {
		t.Fatalf("want not-found error, got %v", cerr)
	}
}
