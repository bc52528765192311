package owners

import (
	"context"
	"errors"
)

// ErrNoID indica que el store persistió el owner pero no devolvió id.
var ErrNoID = errors.New("saved owner has no id")

// Endpoint es la fachada remota de owners.
// No valida ni traduce errores: todo se delega al repository.
type Endpoint struct {
	repo Repository
}

func NewEndpoint(repo Repository) *Endpoint {
	return &Endpoint{repo: repo}
}

func (e *Endpoint) FindByLastName(ctx context.Context, lastName string) ([]Owner, error) {
	return e.repo.FindByLastName(ctx, lastName)
}

// FindByID devuelve nil (sin error) si no hay owner con ese id.
func (e *Endpoint) FindByID(ctx context.Context, id int) (*Owner, error) {
	return e.repo.FindByID(ctx, id)
}

func (e *Endpoint) Save(ctx context.Context, o Owner) (int, error) {
	saved, err := e.repo.Save(ctx, o)
	if err != nil {
		return 0, err
	}
	if saved.ID == nil {
		return 0, ErrNoID
	}
	return *saved.ID, nil
}
