package entity

import "time"

// Timestamp instante en milisegundos Unix; es la forma numérica con la que se persiste el documento.
type Timestamp int64

// NewTimestamp convierte un time.Time a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time devuelve el instante como time.Time (UTC).
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}
