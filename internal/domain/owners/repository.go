package owners

import "context"

// Repository es el backing store de owners.
//
// Contrato:
//   - FindByLastName: match exacto, orden por id asc, nunca devuelve slice nil.
//   - FindByID: (nil, nil) si no existe.
//   - Save: inserta si ID == nil, actualiza si existe; si trae ID pero no existe, inserta con id nuevo.
type Repository interface {
	FindByLastName(ctx context.Context, lastName string) ([]Owner, error)
	FindByID(ctx context.Context, id int) (*Owner, error)
	Save(ctx context.Context, o Owner) (Owner, error)
}
