package historial

import (
	"fmt"

	"github.com/soporteti/inventario/internal/domain/entity"
)

// VacioSentinel valor de presentación para campos nulos o vacíos. Los valores
// se normalizan a este centinela antes de comparar y de mostrar.
const VacioSentinel = "Vacío"

// campoEquipo descriptor declarativo de un campo rastreado: etiqueta visible
// y extractor del valor como texto. La lista única evita mantener mapas de
// etiquetas paralelos en varios sitios.
type campoEquipo struct {
	etiqueta string
	valor    func(e *entity.Equipo) string
}

// camposEquipo lista ordenada y fija de campos comparados en cada edición.
var camposEquipo = []campoEquipo{
	{"Nombre", func(e *entity.Equipo) string { return e.Nombre }},
	{"Tipo", func(e *entity.Equipo) string { return e.Tipo }},
	{"Marca", func(e *entity.Equipo) string { return e.Marca }},
	{"Modelo", func(e *entity.Equipo) string { return e.Modelo }},
	{"Número de Serie", func(e *entity.Equipo) string { return e.NumSerie }},
	{"Patrimonio", func(e *entity.Equipo) string { return e.Patrimonio }},
	{"Procesador", func(e *entity.Equipo) string { return e.Procesador }},
	{"RAM", func(e *entity.Equipo) string { return e.RAM }},
	{"Almacenamiento", func(e *entity.Equipo) string { return e.Almacenamiento }},
	{"Sistema Operativo", func(e *entity.Equipo) string { return e.SO }},
	{"Usuario Asignado", func(e *entity.Equipo) string { return e.UsuarioAsignado }},
	{"Estado", func(e *entity.Equipo) string { return e.Estado }},
	{"Ubicación", func(e *entity.Equipo) string { return e.Ubicacion }},
	{"Fecha de Asignación", func(e *entity.Equipo) string {
		if e.FechaAsignacion == nil {
			return ""
		}
		// Representación canónica de fecha para comparación y despliegue.
		return e.FechaAsignacion.Format("2006-01-02")
	}},
	{"Observaciones", func(e *entity.Equipo) string { return e.Observaciones }},
}

// normalizar convierte valores vacíos al centinela de presentación.
func normalizar(v string) string {
	if v == "" {
		return VacioSentinel
	}
	return v
}

// DiffEquipos compara los campos rastreados de dos estados de un equipo y
// devuelve una cláusula legible por cada campo que cambió, en el orden fijo de
// la lista de descriptores. Una edición sin cambios devuelve lista vacía.
func DiffEquipos(antes, despues *entity.Equipo) []string {
	var cambios []string
	for _, c := range camposEquipo {
		viejo := normalizar(c.valor(antes))
		nuevo := normalizar(c.valor(despues))
		if viejo != nuevo {
			cambios = append(cambios, fmt.Sprintf("%s cambió de '%s' a '%s'.", c.etiqueta, viejo, nuevo))
		}
	}
	return cambios
}
