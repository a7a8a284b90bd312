package entity

import "time"

// Brand representa una marca del catálogo. El nombre es único y distingue mayúsculas.
// El ID es un detalle del almacenamiento; la identidad de negocio es Name.
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
