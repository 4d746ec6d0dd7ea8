package handler

import (
	"net/http"
	"strconv"

	"odontocare/internal/domain/entity"

	"github.com/gorilla/mux"
)

// pathID extracts the {id} path variable as an unsigned integer.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func queryUint(r *http.Request, name string) uint {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

// listFilterFromQuery builds the admin-listing filter. The estado filter
// defaults to ACTIVO so soft-deleted records stay out of default listings;
// estado= (empty value, key present) disables the filter.
func listFilterFromQuery(r *http.Request) *entity.ListFilter {
	query := r.URL.Query()

	estado := "ACTIVO"
	if values, ok := query["estado"]; ok && len(values) > 0 {
		estado = values[0]
	}

	return &entity.ListFilter{
		Estado:       estado,
		Nombre:       query.Get("nombre"),
		Especialidad: query.Get("especialidad"),
		Direccion:    query.Get("direccion"),
		Page:         queryInt(r, "page", 1),
		PerPage:      queryInt(r, "per_page", 10),
	}
}
