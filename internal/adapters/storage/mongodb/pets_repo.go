package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-shelter/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const collectionName = "pets"

// petDocument es el layout persistido; _id es el uuid asignado por el servicio.
type petDocument struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	Species     string     `bson:"species"`
	Age         int        `bson:"age"`
	Personality string     `bson:"personality"`
	Mood        string     `bson:"mood"`
	Image       *string    `bson:"image"`
	Adopted     bool       `bson:"adopted"`
	CreatedAt   time.Time  `bson:"created_at"`
	AdoptedAt   *time.Time `bson:"adopted_at"`
}

type PetsRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewPetsRepo crea el repo y asegura el índice por created_at.
func NewPetsRepo(ctx context.Context, client *mongo.Client, database string) (*PetsRepo, error) {
	coll := client.Database(database).Collection(collectionName)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	})
	if err != nil {
		return nil, err
	}

	return &PetsRepo{client: client, coll: coll}, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.coll.InsertOne(ctx, toDocument(p))
	if mongo.IsDuplicateKeyError(err) {
		return errors.New("pet already exists")
	}
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	var doc petDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return pets.Pet{}, translate(err)
	}
	return fromDocument(doc), nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: 1},
	})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []petDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromDocument(d))
	}
	return out, nil
}

// UpdateProfile solo hace $set de los campos de perfil.
func (r *PetsRepo) UpdateProfile(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"species":     p.Species,
		"age":         p.Age,
		"personality": p.Personality,
		"image":       p.Image,
	}}

	var doc petDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": p.ID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return pets.Pet{}, translate(err)
	}
	return fromDocument(doc), nil
}

func (r *PetsRepo) MarkAdopted(ctx context.Context, id string, at time.Time) (pets.Pet, error) {
	filter := bson.M{"_id": id, "adopted": false}
	update := bson.M{"$set": bson.M{
		"adopted":    true,
		"adopted_at": at,
		"mood":       string(pets.MoodHappy),
	}}

	var doc petDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return fromDocument(doc), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return pets.Pet{}, err
	}

	// Ningún documento con adopted=false: distinguir inexistente de ya adoptada.
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return pets.Pet{}, err
	}
	if n > 0 {
		return pets.Pet{}, pets.ErrAlreadyAdopted
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	var doc petDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return pets.Pet{}, translate(err)
	}
	return fromDocument(doc), nil
}

// Ping lo usa el health check.
func (r *PetsRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return pets.ErrNotFound
	}
	return err
}

func toDocument(p pets.Pet) petDocument {
	return petDocument{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Age:         p.Age,
		Personality: p.Personality,
		Mood:        string(p.Mood),
		Image:       p.Image,
		Adopted:     p.Adopted,
		CreatedAt:   p.CreatedAt,
		AdoptedAt:   p.AdoptedAt,
	}
}

func fromDocument(d petDocument) pets.Pet {
	p := pets.Pet{
		ID:          d.ID,
		Name:        d.Name,
		Species:     d.Species,
		Age:         d.Age,
		Personality: d.Personality,
		Image:       d.Image,
		Adopted:     d.Adopted,
		CreatedAt:   d.CreatedAt.UTC(),
	}
	// Registros viejos pueden traer "Happy"; normalizamos a minúsculas.
	if m, ok := pets.ParseMood(d.Mood); ok {
		p.Mood = m
	} else {
		p.Mood = pets.MoodHappy
	}
	if d.AdoptedAt != nil {
		t := d.AdoptedAt.UTC()
		p.AdoptedAt = &t
	}
	return p
}
