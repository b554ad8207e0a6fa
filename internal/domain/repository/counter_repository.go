package repository

import "context"

// CounterRepository define el puerto del contador de consecutivos.
//
// NextValue debe ser atómico: si no existe fila para docType la crea en el
// valor piso y lo retorna; si existe, incrementa en 1 y retorna el nuevo
// valor, todo como una sola operación serializada. Dos llamadas concurrentes
// jamás observan el mismo valor, y un fallo de escritura no consume número.
type CounterRepository interface {
	NextValue(ctx context.Context, docType string, floor int64) (int64, error)
	Current(ctx context.Context, docType string) (int64, error)
}
