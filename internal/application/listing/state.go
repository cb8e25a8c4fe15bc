// Package listing contiene el contenedor de estado de los listados del panel.
//
// Cada página del panel es dueña de una única lista en memoria; las vistas la
// leen y las mutaciones pasan por métodos explícitos (SetRecords, PatchRecord,
// RemoveRecord) en lugar de mutación ad hoc. PatchRecord solo debe invocarse
// con filas confirmadas por la base de datos: el parche local nunca se aplica
// de forma especulativa antes de la confirmación remota.
package listing

import (
	"sync"

	"github.com/investarise/summit-api/internal/domain/search"
)

// Record registro listable: identidad estable + campos de búsqueda.
type Record interface {
	Key() string
	search.Searchable
}

// Counts longitudes total y filtrada del listado; permiten distinguir
// "cero registros en total" de "cero registros tras filtrar".
type Counts struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
}

// State contenedor de estado de una página. Seguro para uso concurrente;
// el último escritor confirmado gana (sin tokens de secuencia por registro).
type State[T Record] struct {
	mu      sync.RWMutex
	records []T
}

// NewState construye un contenedor vacío.
func NewState[T Record]() *State[T] {
	return &State[T]{}
}

// SetRecords reemplaza el listado completo (carga inicial o recarga).
func (s *State[T]) SetRecords(records []T) {
	copied := make([]T, len(records))
	copy(copied, records)

	s.mu.Lock()
	s.records = copied
	s.mu.Unlock()
}

// Snapshot devuelve una copia del listado en su orden actual.
func (s *State[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]T, len(s.records))
	copy(copied, s.records)
	return copied
}

// Len cantidad total de registros cargados.
func (s *State[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// PatchRecord reemplaza el registro cuya clave coincide con la del recibido.
// Devuelve false si la clave no está en el listado (no inserta).
func (s *State[T]) PatchRecord(record T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Key() == record.Key() {
			s.records[i] = record
			return true
		}
	}
	return false
}

// RemoveRecord elimina el registro con la clave dada; false si no existe.
func (s *State[T]) RemoveRecord(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Key() == key {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Filtered aplica el filtro de búsqueda sobre una copia del listado y
// devuelve los matches junto con los conteos total/filtrado.
func (s *State[T]) Filtered(query string) ([]T, Counts) {
	snapshot := s.Snapshot()
	filtered := search.Filter(snapshot, query)
	return filtered, Counts{Total: len(snapshot), Filtered: len(filtered)}
}
