package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"welovepets/internal/domain/pets"

	"github.com/google/go-cmp/cmp"
)

const sampleFixtures = `
vaccines:
  - id: 1
    name: Rabies
  - id: 2
    name: Distemper
pets:
  - id: 2
    name: Mia
    species: Cat
    sex: F
    submission_date: 2024-03-10T00:00:00Z
  - id: 1
    name: Rex
    submitter: Ana
    species: Dog
    breed: Beagle
    sex: M
    age: 3
    submission_date: 2024-03-09T00:00:00Z
    vaccinations: [1, 2]
`

func TestPetRepo_ListAllOrderedWithoutVaccinations(t *testing.T) {
	items, err := ParseFixtures([]byte(sampleFixtures))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	repo, err := NewPetRepo(items...)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected ids [1 2], got %+v", got)
	}
	if got[0].Vaccinations != nil {
		t.Fatalf("listing must not carry vaccinations")
	}
}

func TestPetRepo_GetByID(t *testing.T) {
	items, err := ParseFixtures([]byte(sampleFixtures))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	repo, _ := NewPetRepo(items...)

	got, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	age := 3
	want := pets.Pet{
		ID:             1,
		Name:           "Rex",
		Submitter:      "Ana",
		Species:        "Dog",
		Breed:          "Beagle",
		Sex:            pets.SexMale,
		Age:            &age,
		SubmissionDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		Vaccinations:   []pets.Vaccine{{ID: 1, Name: "Rabies"}, {ID: 2, Name: "Distemper"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pet mismatch (-want +got):\n%s", diff)
	}
}

func TestPetRepo_GetByIDMissing(t *testing.T) {
	repo, _ := NewPetRepo()

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}
}

func TestPetRepo_EmptyListIsNotNil(t *testing.T) {
	repo, _ := NewPetRepo()

	got, err := repo.ListAll(context.Background())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v err=%v", got, err)
	}
}

func TestPetRepo_CallersCannotMutateStore(t *testing.T) {
	age := 1
	repo, _ := NewPetRepo(pets.Pet{ID: 1, Name: "Rex", Age: &age, Vaccinations: []pets.Vaccine{{ID: 1, Name: "Rabies"}}})
	ctx := context.Background()

	p, _ := repo.GetByID(ctx, 1)
	*p.Age = 99
	p.Vaccinations[0].Name = "changed"
	age = 50

	again, _ := repo.GetByID(ctx, 1)
	if *again.Age != 1 || again.Vaccinations[0].Name != "Rabies" {
		t.Fatalf("store state leaked through returned value: %+v", again)
	}
}

func TestNewPetRepo_RejectsBadSeed(t *testing.T) {
	if _, err := NewPetRepo(pets.Pet{ID: 0}); err == nil {
		t.Fatalf("expected error for non-positive id")
	}
	if _, err := NewPetRepo(pets.Pet{ID: 1}, pets.Pet{ID: 1}); err == nil {
		t.Fatalf("expected error for duplicated id")
	}
}

func TestParseFixtures_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown vaccine": "pets:\n  - id: 1\n    vaccinations: [9]\n",
		"bad sex":         "pets:\n  - id: 1\n    sex: X\n",
		"dup vaccine":     "vaccines:\n  - {id: 1, name: A}\n  - {id: 1, name: B}\n",
		"bad yaml":        "pets: [",
	}
	for name, in := range cases {
		if _, err := ParseFixtures([]byte(in)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadFixtures_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.yaml")
	if err := os.WriteFile(path, []byte(sampleFixtures), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	repo, err := LoadFixtures(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, _ := repo.ListAll(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 pets, got %d", len(got))
	}

	if _, err := LoadFixtures(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFixtures_BundledSample(t *testing.T) {
	repo, err := LoadFixtures(filepath.Join("..", "..", "..", "..", "fixtures", "pets.yaml"))
	if err != nil {
		t.Fatalf("load bundled fixtures: %v", err)
	}

	p, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Age != nil || len(p.Vaccinations) != 0 {
		t.Fatalf("expected pet without age or vaccinations, got %+v", p)
	}
}
