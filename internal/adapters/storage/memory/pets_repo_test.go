package memory

import (
	"context"
	"testing"
	"time"

	"pet-shelter/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r pets.Repository, id string, createdAt time.Time) pets.Pet {
	t.Helper()
	p := pets.Pet{
		ID:          id,
		Name:        "pet-" + id,
		Species:     "dog",
		Age:         1,
		Personality: "calm",
		Mood:        pets.MoodHappy,
		CreatedAt:   createdAt,
	}
	require.NoError(t, r.Create(context.Background(), p))
	return p
}

func TestPetRepo_CreateRejectsDuplicates(t *testing.T) {
	r := NewPetRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seed(t, r, "a", base)

	err := r.Create(context.Background(), pets.Pet{ID: "a"})
	require.Error(t, err)

	err = r.Create(context.Background(), pets.Pet{ID: " "})
	require.Error(t, err)
}

func TestPetRepo_ListNewestFirst(t *testing.T) {
	r := NewPetRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seed(t, r, "old", base)
	seed(t, r, "new", base.Add(2*time.Hour))
	seed(t, r, "mid", base.Add(time.Hour))

	items, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestPetRepo_UpdateProfileKeepsAdoption(t *testing.T) {
	r := NewPetRepo()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := seed(t, r, "a", base)

	adoptedAt := base.Add(time.Hour)
	_, err := r.MarkAdopted(ctx, "a", adoptedAt)
	require.NoError(t, err)

	// Un caller descuidado manda adopted=false; no debe persistirse.
	p.Name = "Renamed"
	p.Adopted = false
	p.AdoptedAt = nil
	p.Mood = pets.MoodSad

	got, err := r.UpdateProfile(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, got.Adopted)
	require.NotNil(t, got.AdoptedAt)
	assert.True(t, got.AdoptedAt.Equal(adoptedAt))
	assert.Equal(t, pets.MoodHappy, got.Mood)
}

func TestPetRepo_UpdateProfileNotFound(t *testing.T) {
	r := NewPetRepo()
	_, err := r.UpdateProfile(context.Background(), pets.Pet{ID: "missing"})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_MarkAdoptedOnce(t *testing.T) {
	r := NewPetRepo()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seed(t, r, "a", base)

	got, err := r.MarkAdopted(ctx, "a", base)
	require.NoError(t, err)
	assert.True(t, got.Adopted)

	_, err = r.MarkAdopted(ctx, "a", base.Add(time.Hour))
	assert.ErrorIs(t, err, pets.ErrAlreadyAdopted)

	again, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, again.AdoptedAt.Equal(base), "second adopt must not move the timestamp")

	_, err = r.MarkAdopted(ctx, "missing", base)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_DeleteReturnsRecord(t *testing.T) {
	r := NewPetRepo()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := seed(t, r, "a", base)
	img := "/uploads/a.png"
	p.Image = &img
	_, err := r.UpdateProfile(ctx, p)
	require.NoError(t, err)

	removed, err := r.Delete(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, removed.Image)
	assert.Equal(t, img, *removed.Image)

	_, err = r.Delete(ctx, "a")
	assert.ErrorIs(t, err, pets.ErrNotFound)
	_, err = r.GetByID(ctx, "a")
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_ReturnsCopies(t *testing.T) {
	r := NewPetRepo()
	ctx := context.Background()
	p := seed(t, r, "a", time.Now())
	img := "/uploads/a.png"
	p.Image = &img
	_, err := r.UpdateProfile(ctx, p)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	*got.Image = "/uploads/changed.png"

	again, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, img, *again.Image)
}
