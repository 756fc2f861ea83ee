package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrMalformedState  = errors.New("estado persistido malformado")
	ErrMalformedImport = errors.New("formato de archivo de importación inválido")
	ErrStorageRead     = errors.New("error leyendo el almacenamiento")
	ErrStorageWrite    = errors.New("error escribiendo en el almacenamiento")
)
