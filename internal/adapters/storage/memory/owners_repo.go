package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic/internal/domain/owners"
)

type ownerRepo struct {
	mu     sync.RWMutex
	byID   map[int]owners.Owner
	nextID int
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID:   make(map[int]owners.Owner),
		nextID: 1,
	}
}

func (r *ownerRepo) FindByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if o.LastName == lastName {
			out = append(out, clone(o))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return *out[i].ID < *out[j].ID
	})

	return out, nil
}

func (r *ownerRepo) FindByID(ctx context.Context, id int) (*owners.Owner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	c := clone(o)
	return &c, nil
}

func (r *ownerRepo) Save(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	if err := ctx.Err(); err != nil {
		return owners.Owner{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// update in place solo si el id existe; si no, alta con id nuevo
	if o.ID != nil {
		if _, exists := r.byID[*o.ID]; exists {
			stored := clone(o)
			r.byID[*o.ID] = stored
			return clone(stored), nil
		}
	}

	id := r.nextID
	r.nextID++

	stored := clone(o)
	stored.ID = owners.IntPtr(id)
	r.byID[id] = stored

	return clone(stored), nil
}

// clone evita compartir el puntero ID con el caller.
func clone(o owners.Owner) owners.Owner {
	if o.ID != nil {
		o.ID = owners.IntPtr(*o.ID)
	}
	return o
}
