package pets

import "time"

// Sex usa los códigos cortos que guarda el store.
// @Enum M, F
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Label devuelve el texto que se muestra en las páginas.
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return ""
	}
}

// Vaccine es una vacuna que puede figurar en el historial de una mascota.
type Vaccine struct {
	ID   int64
	Name string
}

// Pet representa una mascota publicada para adopción.
type Pet struct {
	ID int64

	Name      string
	Submitter string
	Species   string
	Breed     string

	Description string
	Sex         Sex

	SubmissionDate time.Time
	Age            *int // nil = edad desconocida

	// Solo se completa en el detalle (GetByID).
	Vaccinations []Vaccine
}
