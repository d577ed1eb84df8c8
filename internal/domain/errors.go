package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation = errors.New("datos de entrada inválidos")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrConflict   = errors.New("conflicto con el estado actual")
	ErrIntegrity  = errors.New("violación de integridad en el almacén")
	ErrTransient  = errors.New("fallo transitorio de almacenamiento")
)
