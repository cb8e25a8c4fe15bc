// Package search implementa el filtro de texto del panel admin: subsecuencia
// estable de registros cuyo algún campo designado contiene la consulta como
// substring, sin distinguir mayúsculas (folding Unicode, no solo ASCII).
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Searchable expone los campos designados que participan en el filtro.
// Un campo ausente se representa como cadena vacía y simplemente no matchea.
type Searchable interface {
	SearchFields() []string
}

// Filter devuelve los registros cuyo algún campo designado contiene query.
//
// Propiedades del contrato:
//   - query vacía devuelve el slice de entrada sin cambios (ley de identidad).
//   - el orden relativo de los matches se preserva (filtro estable, no re-sort).
//   - función pura: no muta la entrada y es determinista.
func Filter[T Searchable](records []T, query string) []T {
	if query == "" {
		return records
	}
	folder := cases.Fold()
	needle := folder.String(query)

	matched := make([]T, 0, len(records))
	for _, rec := range records {
		if matches(folder, rec.SearchFields(), needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func matches(folder cases.Caser, fields []string, needle string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(folder.String(f), needle) {
			return true
		}
	}
	return false
}
