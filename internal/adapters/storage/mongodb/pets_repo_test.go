package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-shelter/internal/domain/pets"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip_NormalizesMood(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := petDocument{
		ID:        "p-1",
		Name:      "Rex",
		Mood:      "Happy",
		Adopted:   true,
		CreatedAt: at,
		AdoptedAt: &at,
	}

	p := fromDocument(doc)
	assert.Equal(t, pets.MoodHappy, p.Mood)
	require.NotNil(t, p.AdoptedAt)
	assert.True(t, p.AdoptedAt.Equal(at))

	back := toDocument(p)
	assert.Equal(t, "happy", back.Mood)
	assert.Equal(t, "p-1", back.ID)
}

func TestFromDocument_UnknownMoodFallsBackToHappy(t *testing.T) {
	p := fromDocument(petDocument{ID: "p-2", Mood: "grumpy"})
	assert.Equal(t, pets.MoodHappy, p.Mood)
}

// Requiere un Mongo real: TEST_MONGO_URI=mongodb://localhost:27017 go test ./...
func TestPetsRepo_Lifecycle(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	dbName := "pet_test_" + uuid.NewString()[:8]
	t.Cleanup(func() { _ = client.Database(dbName).Drop(context.Background()) })

	r, err := NewPetsRepo(ctx, client, dbName)
	require.NoError(t, err)

	created := time.Now().UTC().Truncate(time.Millisecond)
	p := pets.Pet{ID: uuid.NewString(), Name: "Rex", Species: "dog", Age: 2, Personality: "calm", Mood: pets.MoodHappy, CreatedAt: created}
	require.NoError(t, r.Create(ctx, p))
	require.Error(t, r.Create(ctx, p))

	_, err = r.MarkAdopted(ctx, p.ID, created.Add(time.Hour))
	require.NoError(t, err)
	_, err = r.MarkAdopted(ctx, p.ID, created.Add(time.Hour))
	assert.ErrorIs(t, err, pets.ErrAlreadyAdopted)

	p.Name = "Rex II"
	p.Adopted = false
	updated, err := r.UpdateProfile(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Rex II", updated.Name)
	assert.True(t, updated.Adopted)

	_, err = r.Delete(ctx, p.ID)
	require.NoError(t, err)
	_, err = r.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}
