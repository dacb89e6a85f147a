package pets

import (
	"context"
	"strings"
	"time"

	"pet-shelter/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	images ImageStore
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, images ImageStore, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		images: images,
		log:    log.With(map[string]any{"component": "pets"}),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type CreateInput struct {
	Name        string
	Species     string
	Age         *int
	Personality string
	Mood        string // opcional, default happy
	Image       *ImageUpload
}

// ImagePatch distingue "no enviado" de "enviado vacío":
// - Present=false => no tocar
// - Present=true, Upload=nil => limpiar
// - Present=true, Upload!=nil => reemplazar
type ImagePatch struct {
	Present bool
	Upload  *ImageUpload
}

type UpdateInput struct {
	// Punteros: nil = no tocar. Un valor cero (age=0) sí se aplica.
	Name        *string
	Species     *string
	Age         *int
	Personality *string
	Image       ImagePatch
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	personality := strings.TrimSpace(in.Personality)

	if name == "" {
		return Pet{}, invalid("name is required")
	}
	if species == "" {
		return Pet{}, invalid("species is required")
	}
	if in.Age == nil {
		return Pet{}, invalid("age is required")
	}
	if *in.Age < 0 {
		return Pet{}, invalid("age must be >= 0")
	}
	if personality == "" {
		return Pet{}, invalid("personality is required")
	}

	mood := MoodHappy
	if strings.TrimSpace(in.Mood) != "" {
		m, ok := ParseMood(in.Mood)
		if !ok {
			return Pet{}, invalid("unknown mood " + in.Mood)
		}
		mood = m
	}

	p := Pet{
		ID:          uuid.NewString(),
		Name:        name,
		Species:     species,
		Age:         *in.Age,
		Personality: personality,
		Mood:        mood,
		CreatedAt:   s.now(),
	}

	if in.Image != nil {
		ref, err := s.saveImage(ctx, in.Image)
		if err != nil {
			return Pet{}, err
		}
		p.Image = &ref
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// la imagen quedó huérfana
		if p.Image != nil {
			s.reclaim(ctx, *p.Image, p.ID)
		}
		return Pet{}, storeErr(err)
	}

	return s.present(p), nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]Pet, 0, len(items))
	for _, p := range items {
		out = append(out, s.present(p))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, storeErr(err)
	}
	return s.present(p), nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Pet{}, invalid("name must not be empty")
	}
	if in.Species != nil && strings.TrimSpace(*in.Species) == "" {
		return Pet{}, invalid("species must not be empty")
	}
	if in.Personality != nil && strings.TrimSpace(*in.Personality) == "" {
		return Pet{}, invalid("personality must not be empty")
	}
	if in.Age != nil && *in.Age < 0 {
		return Pet{}, invalid("age must be >= 0")
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	next := current
	if in.Name != nil {
		next.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		next.Species = strings.TrimSpace(*in.Species)
	}
	if in.Age != nil {
		next.Age = *in.Age
	}
	if in.Personality != nil {
		next.Personality = strings.TrimSpace(*in.Personality)
	}

	var saved *string
	if in.Image.Present {
		next.Image = nil
		if in.Image.Upload != nil {
			ref, err := s.saveImage(ctx, in.Image.Upload)
			if err != nil {
				return Pet{}, err
			}
			saved = &ref
			next.Image = saved
		}
	}

	updated, err := s.repo.UpdateProfile(ctx, next)
	if err != nil {
		if saved != nil {
			s.reclaim(ctx, *saved, current.ID)
		}
		return Pet{}, storeErr(err)
	}

	if in.Image.Present && current.Image != nil {
		s.reclaim(ctx, *current.Image, current.ID)
	}

	return s.present(updated), nil
}

// Adopt es de una sola vía: available -> adopted.
func (s *Service) Adopt(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}

	p, err := s.repo.MarkAdopted(ctx, id, s.now())
	if err != nil {
		return Pet{}, storeErr(err)
	}

	s.log.Info("pet adopted", map[string]any{"pet_id": p.ID})
	return s.present(p), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeErr(err)
	}

	if removed.Image != nil {
		s.reclaim(ctx, *removed.Image, removed.ID)
	}
	return nil
}

// FilterByMood filtra sobre el mood ya recalculado. Un mood desconocido devuelve vacío.
func (s *Service) FilterByMood(ctx context.Context, mood string) ([]Pet, error) {
	want, ok := ParseMood(mood)
	if !ok {
		return []Pet{}, nil
	}

	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Pet, 0)
	for _, p := range items {
		if p.Mood == want {
			out = append(out, p)
		}
	}
	return out, nil
}

// present aplica el mood vivo a mascotas no adoptadas.
func (s *Service) present(p Pet) Pet {
	if !p.Adopted {
		p.Mood = DeriveMood(p.CreatedAt, s.now(), false)
	}
	return p
}

func (s *Service) saveImage(ctx context.Context, up *ImageUpload) (string, error) {
	if s.images == nil {
		return "", invalid("image uploads are not enabled")
	}
	if up.Content == nil {
		return "", invalid("image is empty")
	}
	ref, err := s.images.Save(ctx, up.Filename, up.Content)
	if err != nil {
		return "", storeErr(err)
	}
	return ref, nil
}

// reclaim es best-effort: se loguea y nunca falla la operación.
func (s *Service) reclaim(ctx context.Context, ref, petID string) {
	if s.images == nil || strings.TrimSpace(ref) == "" {
		return
	}
	if err := s.images.Remove(ctx, ref); err != nil {
		s.log.Warn("image reclaim failed", map[string]any{
			"pet_id": petID,
			"image":  ref,
			"error":  err.Error(),
		})
	}
}
