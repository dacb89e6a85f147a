package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-shelter/internal/domain/pets"
)

const petColumns = `
	id, name, species, age, personality, mood,
	image, adopted, created_at, adopted_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Age,
		p.Personality,
		string(p.Mood),
		toNullString(p.Image),
		p.Adopted,
		p.CreatedAt,
		toNullTime(p.AdoptedAt),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	return scanPet(row)
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// UpdateProfile no incluye adopted/adopted_at/mood en el SET.
func (r *PetsRepo) UpdateProfile(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			age = $4,
			personality = $5,
			image = $6
		WHERE id = $1
		RETURNING `+petColumns,
		p.ID,
		p.Name,
		p.Species,
		p.Age,
		p.Personality,
		toNullString(p.Image),
	)
	return scanPet(row)
}

func (r *PetsRepo) MarkAdopted(ctx context.Context, id string, at time.Time) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET adopted = TRUE, adopted_at = $2, mood = $3
		WHERE id = $1 AND adopted = FALSE
		RETURNING `+petColumns,
		id,
		at,
		string(pets.MoodHappy),
	)

	p, err := scanPet(row)
	if !errors.Is(err, pets.ErrNotFound) {
		return p, err
	}

	// 0 filas: o no existe o ya estaba adoptada.
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM pets WHERE id = $1)`, id).Scan(&exists); err != nil {
		return pets.Pet{}, err
	}
	if exists {
		return pets.Pet{}, pets.ErrAlreadyAdopted
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `DELETE FROM pets WHERE id = $1 RETURNING `+petColumns, id)
	return scanPet(row)
}

// Ping lo usa el health check.
func (r *PetsRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p         pets.Pet
		mood      string
		image     sql.NullString
		adoptedAt sql.NullTime
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Age,
		&p.Personality,
		&mood,
		&image,
		&p.Adopted,
		&p.CreatedAt,
		&adoptedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Mood = pets.Mood(mood)
	p.CreatedAt = p.CreatedAt.UTC()
	if image.Valid {
		v := image.String
		p.Image = &v
	}
	if adoptedAt.Valid {
		t := adoptedAt.Time.UTC()
		p.AdoptedAt = &t
	}
	return p, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
