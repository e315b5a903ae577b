package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tyma/backend/internal/model"
	"github.com/tyma/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ZoneRepository
// ---------------------------------------------------------------------------

type mockZoneRepository struct {
	insertFunc     func(ctx context.Context, zone *model.Zone) error
	getBySlugFunc  func(ctx context.Context, slug string) (*model.Zone, error)
	getByNameFunc  func(ctx context.Context, name string) (*model.Zone, error)
	listFunc       func(ctx context.Context, limit, offset int) ([]*model.Zone, error)
	countFunc      func(ctx context.Context) (int, error)
	updateFunc     func(ctx context.Context, slug string, patch model.ZonePatch) (*model.Zone, error)
	deleteFunc     func(ctx context.Context, slug string) error
	nameExistsFunc func(ctx context.Context, name, excludeSlug string) (bool, error)
	slugsFunc      func(ctx context.Context) ([]string, error)
}

func (m *mockZoneRepository) Insert(ctx context.Context, zone *model.Zone) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, zone)
	}
	return nil
}

func (m *mockZoneRepository) GetBySlug(ctx context.Context, slug string) (*model.Zone, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return &model.Zone{ID: uuid.NewString(), Slug: slug}, nil
}

func (m *mockZoneRepository) GetByName(ctx context.Context, name string) (*model.Zone, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return &model.Zone{ID: uuid.NewString(), Name: name}, nil
}

func (m *mockZoneRepository) List(ctx context.Context, limit, offset int) ([]*model.Zone, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockZoneRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockZoneRepository) Update(ctx context.Context, slug string, patch model.ZonePatch) (*model.Zone, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, slug, patch)
	}
	return &model.Zone{Slug: slug}, nil
}

func (m *mockZoneRepository) Delete(ctx context.Context, slug string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, slug)
	}
	return nil
}

func (m *mockZoneRepository) NameExists(ctx context.Context, name, excludeSlug string) (bool, error) {
	if m.nameExistsFunc != nil {
		return m.nameExistsFunc(ctx, name, excludeSlug)
	}
	return false, nil
}

func (m *mockZoneRepository) Slugs(ctx context.Context) ([]string, error) {
	if m.slugsFunc != nil {
		return m.slugsFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestZoneService_Create_TitleCasesAndSlugs(t *testing.T) {
	var saved *model.Zone
	zones := &mockZoneRepository{
		insertFunc: func(ctx context.Context, zone *model.Zone) error {
			saved = zone
			return nil
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	zone, err := svc.Create(context.Background(), CreateZoneInput{Name: "  north zone ", Description: " Lakeside district "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected Insert to be called")
	}
	if saved.Name != "North Zone" {
		t.Errorf("expected title-cased name, got %q", saved.Name)
	}
	if saved.Slug != "north-zone" {
		t.Errorf("expected slug north-zone, got %q", saved.Slug)
	}
	if saved.Description != "Lakeside district" {
		t.Errorf("expected trimmed description, got %q", saved.Description)
	}
	if uuid.Validate(saved.ID) != nil {
		t.Errorf("expected a generated UUID id, got %q", saved.ID)
	}
	if zone != saved {
		t.Error("expected the persisted zone to be returned")
	}
}

func TestZoneService_Create_NameRequired(t *testing.T) {
	svc := NewZoneService(&mockZoneRepository{}, &mockOfficialRepository{})

	_, err := svc.Create(context.Background(), CreateZoneInput{Name: "   "})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Fields["name"] == "" {
		t.Errorf("expected error keyed by name, got %v", ve.Fields)
	}
}

func TestZoneService_Create_DuplicateName(t *testing.T) {
	zones := &mockZoneRepository{
		nameExistsFunc: func(ctx context.Context, name, excludeSlug string) (bool, error) {
			return true, nil
		},
		insertFunc: func(ctx context.Context, zone *model.Zone) error {
			t.Error("expected no insert for a duplicate name")
			return nil
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	_, err := svc.Create(context.Background(), CreateZoneInput{Name: "North Zone"})

	var cf *ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if cf.Message != "Zone 'North Zone' already exists" {
		t.Errorf("unexpected conflict message: %q", cf.Message)
	}
}

// TestZoneService_Create_InsertConflict maps a unique violation raced in
// between the existence check and the insert to the same conflict.
func TestZoneService_Create_InsertConflict(t *testing.T) {
	zones := &mockZoneRepository{
		insertFunc: func(ctx context.Context, zone *model.Zone) error {
			return repository.ErrConflict
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	_, err := svc.Create(context.Background(), CreateZoneInput{Name: "North Zone"})

	var cf *ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Get / List tests
// ---------------------------------------------------------------------------

func TestZoneService_Get_NotFound(t *testing.T) {
	zones := &mockZoneRepository{
		getBySlugFunc: func(ctx context.Context, slug string) (*model.Zone, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	_, err := svc.Get(context.Background(), "nowhere")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nf.Message != "Zone with slug 'nowhere' not found" {
		t.Errorf("unexpected message: %q", nf.Message)
	}
}

func TestZoneService_List_AssemblesPage(t *testing.T) {
	zones := &mockZoneRepository{
		countFunc: func(ctx context.Context) (int, error) {
			return 2, nil
		},
		listFunc: func(ctx context.Context, limit, offset int) ([]*model.Zone, error) {
			return []*model.Zone{{Slug: "east"}, {Slug: "west"}}, nil
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	page, err := svc.List(context.Background(), ZoneListInput{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount != 2 || page.TotalPages != 1 || len(page.Items) != 2 {
		t.Errorf("unexpected page shape: %+v", page)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestZoneService_Update_TitleCasesName(t *testing.T) {
	var capturedExclude string
	var capturedPatch model.ZonePatch
	zones := &mockZoneRepository{
		nameExistsFunc: func(ctx context.Context, name, excludeSlug string) (bool, error) {
			capturedExclude = excludeSlug
			return false, nil
		},
		updateFunc: func(ctx context.Context, slug string, patch model.ZonePatch) (*model.Zone, error) {
			capturedPatch = patch
			return &model.Zone{Slug: slug, Name: *patch.Name}, nil
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	name := " east zone "
	_, err := svc.Update(context.Background(), "east", UpdateZoneInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedExclude != "east" {
		t.Errorf("expected the zone's own slug excluded from the name check, got %q", capturedExclude)
	}
	if capturedPatch.Name == nil || *capturedPatch.Name != "East Zone" {
		t.Errorf("expected title-cased name in patch, got %v", capturedPatch.Name)
	}
}

func TestZoneService_Update_DuplicateName(t *testing.T) {
	zones := &mockZoneRepository{
		nameExistsFunc: func(ctx context.Context, name, excludeSlug string) (bool, error) {
			return true, nil
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	name := "West Zone"
	_, err := svc.Update(context.Background(), "east", UpdateZoneInput{Name: &name})

	var cf *ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if cf.Message != "Zone name 'West Zone' already exists" {
		t.Errorf("unexpected conflict message: %q", cf.Message)
	}
}

func TestZoneService_Update_NotFound(t *testing.T) {
	zones := &mockZoneRepository{
		updateFunc: func(ctx context.Context, slug string, patch model.ZonePatch) (*model.Zone, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	desc := "Updated"
	_, err := svc.Update(context.Background(), "nowhere", UpdateZoneInput{Description: &desc})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestZoneService_Update_EmptyNameRejected(t *testing.T) {
	svc := NewZoneService(&mockZoneRepository{}, &mockOfficialRepository{})

	name := "  "
	_, err := svc.Update(context.Background(), "east", UpdateZoneInput{Name: &name})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Fields["name"] == "" {
		t.Errorf("expected error keyed by name, got %v", ve.Fields)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestZoneService_Delete_RemovesZone(t *testing.T) {
	var deletedSlug string
	zones := &mockZoneRepository{
		deleteFunc: func(ctx context.Context, slug string) error {
			deletedSlug = slug
			return nil
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	if err := svc.Delete(context.Background(), "east"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedSlug != "east" {
		t.Errorf("expected delete of east, got %q", deletedSlug)
	}
}

// TestZoneService_Delete_GuardsAttachedOfficials verifies a zone with
// officials attached cannot be removed.
func TestZoneService_Delete_GuardsAttachedOfficials(t *testing.T) {
	zones := &mockZoneRepository{
		deleteFunc: func(ctx context.Context, slug string) error {
			t.Error("expected no delete while officials are attached")
			return nil
		},
	}
	officials := &mockOfficialRepository{
		countByZoneFunc: func(ctx context.Context, zoneID string) (int, error) {
			return 3, nil
		},
	}
	svc := NewZoneService(zones, officials)

	err := svc.Delete(context.Background(), "east")

	var cf *ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if cf.Message != "Cannot delete zone with associated officials" {
		t.Errorf("unexpected conflict message: %q", cf.Message)
	}
}

func TestZoneService_Delete_NotFound(t *testing.T) {
	zones := &mockZoneRepository{
		getBySlugFunc: func(ctx context.Context, slug string) (*model.Zone, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewZoneService(zones, &mockOfficialRepository{})

	err := svc.Delete(context.Background(), "nowhere")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Slug and title helpers
// ---------------------------------------------------------------------------

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"North Zone", nil, "north-zone"},
		{"  North Zone  ", nil, "north-zone"},
		{"St. John's Ward", nil, "st-johns-ward"},
		{"North Zone", []string{"north-zone"}, "nz"},
		{"North Zone", []string{"north-zone", "nz"}, "no"},
		{"North Zone", []string{"north-zone", "nz", "no"}, "nor"},
		{"Alpha", []string{"alpha"}, "al"},
	}
	for _, c := range cases {
		if got := generateSlug(c.name, c.existing); got != c.want {
			t.Errorf("generateSlug(%q, %v) = %q, want %q", c.name, c.existing, got, c.want)
		}
	}
}

// TestGenerateSlug_RandomFallback covers the final fallback once every
// prefix is exhausted.
func TestGenerateSlug_RandomFallback(t *testing.T) {
	got := generateSlug("A", []string{"a"})
	if !strings.HasPrefix(got, "a-") || len(got) != 3 {
		t.Errorf("expected a random single-letter suffix, got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"north zone", "North Zone"},
		{"NORTH ZONE", "North Zone"},
		{"north", "North"},
	}
	for _, c := range cases {
		if got := titleCase(c.in); got != c.want {
			t.Errorf("titleCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
