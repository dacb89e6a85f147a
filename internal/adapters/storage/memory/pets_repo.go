package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-shelter/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = clone(p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clone(p), nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, clone(p))
	}

	// Más recientes primero; desempate por id para que sea estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *petRepo) UpdateProfile(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[p.ID]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	cur.Name = p.Name
	cur.Species = p.Species
	cur.Age = p.Age
	cur.Personality = p.Personality
	cur.Image = copyString(p.Image)

	r.byID[p.ID] = cur
	return clone(cur), nil
}

func (r *petRepo) MarkAdopted(ctx context.Context, id string, at time.Time) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	if cur.Adopted {
		return pets.Pet{}, pets.ErrAlreadyAdopted
	}

	cur.Adopted = true
	cur.AdoptedAt = &at
	cur.Mood = pets.MoodHappy

	r.byID[id] = cur
	return clone(cur), nil
}

func (r *petRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	delete(r.byID, id)
	return p, nil
}

// clone evita que el caller comparta punteros con el mapa interno.
func clone(p pets.Pet) pets.Pet {
	p.Image = copyString(p.Image)
	if p.AdoptedAt != nil {
		t := *p.AdoptedAt
		p.AdoptedAt = &t
	}
	return p
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
