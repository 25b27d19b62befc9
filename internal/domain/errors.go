package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Errores del flujo de conteo físico (stock tally). Cada paso del asistente
	// tiene su condición bloqueante propia para que el mensaje al operador
	// distinga "archivo malo" de "sin cambios".
	ErrNoItemsToExport = errors.New("no hay artículos para exportar con el filtro dado")
	ErrUnreadableFile  = errors.New("el archivo no se pudo leer como hoja de cálculo")
	ErrNoChanges       = errors.New("el archivo no contiene cambios utilizables")
)
