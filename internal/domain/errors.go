package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrInvalidReference un identificador usado para construir una subconsulta
	// no tiene el formato del almacén (p. ej. un ObjectID mal formado en un $lookup).
	ErrInvalidReference = errors.New("identificador con formato inválido")
)
