package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El cálculo nunca falla; estos errores solo aparecen en los bordes (transporte, render).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnknownScenario = errors.New("escenario desconocido")
)
