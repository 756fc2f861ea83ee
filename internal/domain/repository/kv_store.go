package repository

import "context"

// KVStore define el puerto del almacén clave-valor durable donde vive el documento serializado.
// Set reemplaza el valor completo de la clave; una escritura nunca queda a medias.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
