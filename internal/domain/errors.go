package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores de persistencia
// traducen sus errores nativos a estos centinelas; el caso de uso es el único que
// los convierte en estados de respuesta.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrPersistenceRejected = errors.New("la persistencia no aplicó la operación")
)
