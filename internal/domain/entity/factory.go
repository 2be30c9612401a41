package entity

// Factory es un taller satélite que entrega lotes de piezas. DocumentID es el
// documento con el que el taller puede iniciar sesión por la ruta alterna.
type Factory struct {
	ID         int64
	Owner      string
	DocumentID string
}
