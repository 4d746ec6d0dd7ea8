package entity

import "time"

// ListFilter is a domain-level filter for the admin listings.
// Used by the repository layer to avoid coupling with delivery DTOs.
type ListFilter struct {
	Estado       string // empty = no status filter; default applied by handlers
	Nombre       string // substring match (ILIKE)
	Especialidad string // doctors only
	Direccion    string // centers only
	Page         int
	PerPage      int
}

// AppointmentFilter narrows appointment listings. All set fields are
// AND-combined; date bounds are inclusive.
type AppointmentFilter struct {
	FechaInicio *time.Time
	FechaFin    *time.Time
	IDDoctor    uint
	IDCentro    uint
	Estado      string
}
