package employee

import (
	"strings"
	"time"
)

type Employee struct {
	Matricula     string
	FullName      string
	JobFunction   string
	Abbreviation  string
	AdmissionDate *time.Time
	LaborClass    LaborClass
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LaborClass string

const (
	// LaborClassDirect is hands-on site labor (MOD, mao de obra direta).
	LaborClassDirect LaborClass = "MOD"
	// LaborClassIndirect is support labor (MOI, mao de obra indireta).
	LaborClassIndirect LaborClass = "MOI"
)

type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// GroupingKey resolves the display key used to cluster employees in
// charts: the abbreviation when set, otherwise the uppercased function
// name.
func (e Employee) GroupingKey() string {
	if strings.TrimSpace(e.Abbreviation) != "" {
		return strings.ToUpper(e.Abbreviation)
	}
	return strings.ToUpper(e.JobFunction)
}
