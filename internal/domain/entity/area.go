package entity

import "time"

// Area destino al que se atribuye una salida de insumos.
type Area struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
}
