package pets

import (
	"context"
	"io"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// List devuelve todas las mascotas, más recientes primero.
	List(ctx context.Context) ([]Pet, error)
	// UpdateProfile persiste solo name, species, age, personality e image.
	// Nunca toca adopted, adopted_at ni mood.
	UpdateProfile(ctx context.Context, p Pet) (Pet, error)
	// MarkAdopted es una escritura condicional (adopted = false).
	// Devuelve ErrAlreadyAdopted si ya estaba adoptada.
	MarkAdopted(ctx context.Context, id string, at time.Time) (Pet, error)
	// Delete borra y devuelve el registro eliminado.
	Delete(ctx context.Context, id string) (Pet, error)
}

// ImageStore guarda los archivos subidos y los reclama al reemplazar/borrar.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Remove no falla si el archivo ya no existe.
	Remove(ctx context.Context, ref string) error
}
