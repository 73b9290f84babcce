package memory

import (
	"fmt"
	"os"
	"time"

	"welovepets/internal/domain/pets"

	"gopkg.in/yaml.v3"
)

// Formato del archivo de fixtures:
//
//	vaccines:
//	  - id: 1
//	    name: Rabies
//	pets:
//	  - id: 1
//	    name: Rex
//	    sex: M
//	    submission_date: 2024-03-09T00:00:00Z
//	    vaccinations: [1]
type fixtureFile struct {
	Vaccines []fixtureVaccine `yaml:"vaccines"`
	Pets     []fixturePet     `yaml:"pets"`
}

type fixtureVaccine struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type fixturePet struct {
	ID             int64     `yaml:"id"`
	Name           string    `yaml:"name"`
	Submitter      string    `yaml:"submitter"`
	Species        string    `yaml:"species"`
	Breed          string    `yaml:"breed"`
	Description    string    `yaml:"description"`
	Sex            string    `yaml:"sex"`
	SubmissionDate time.Time `yaml:"submission_date"`
	Age            *int      `yaml:"age"`
	Vaccinations   []int64   `yaml:"vaccinations"`
}

// LoadFixtures lee un archivo YAML y devuelve un store precargado.
func LoadFixtures(path string) (*PetRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures %s: %w", path, err)
	}

	items, err := ParseFixtures(data)
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return NewPetRepo(items...)
}

// ParseFixtures decodifica y valida fixtures; las vacunas se resuelven por id.
func ParseFixtures(data []byte) ([]pets.Pet, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}

	vaccines := make(map[int64]pets.Vaccine, len(f.Vaccines))
	for _, v := range f.Vaccines {
		if v.ID <= 0 || v.Name == "" {
			return nil, fmt.Errorf("vaccine %d: id and name are required", v.ID)
		}
		if _, dup := vaccines[v.ID]; dup {
			return nil, fmt.Errorf("vaccine %d: duplicated id", v.ID)
		}
		vaccines[v.ID] = pets.Vaccine{ID: v.ID, Name: v.Name}
	}

	out := make([]pets.Pet, 0, len(f.Pets))
	for _, fp := range f.Pets {
		sex := pets.Sex(fp.Sex)
		if sex != pets.SexMale && sex != pets.SexFemale && sex != "" {
			return nil, fmt.Errorf("pet %d: sex must be M or F, got %q", fp.ID, fp.Sex)
		}

		p := pets.Pet{
			ID:             fp.ID,
			Name:           fp.Name,
			Submitter:      fp.Submitter,
			Species:        fp.Species,
			Breed:          fp.Breed,
			Description:    fp.Description,
			Sex:            sex,
			SubmissionDate: fp.SubmissionDate,
			Age:            fp.Age,
		}
		for _, vid := range fp.Vaccinations {
			v, ok := vaccines[vid]
			if !ok {
				return nil, fmt.Errorf("pet %d: unknown vaccine %d", fp.ID, vid)
			}
			p.Vaccinations = append(p.Vaccinations, v)
		}
		out = append(out, p)
	}

	return out, nil
}
