package pets

import (
	"io"
	"time"
)

// Mood define el estado de ánimo de una mascota.
// @Enum happy, sad, calm, playful, excited
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodCalm    Mood = "calm"
	MoodPlayful Mood = "playful"
	MoodExcited Mood = "excited"
)

// Pet representa el registro de una mascota del refugio.
type Pet struct {
	ID string

	Name        string
	Species     string
	Age         int
	Personality string

	// Mood solo es autoritativo para mascotas adoptadas (fijado en happy).
	// Para el resto se recalcula en cada lectura.
	Mood Mood

	// Image es la referencia pública (/uploads/...) del archivo guardado, o nil.
	Image *string

	Adopted   bool
	CreatedAt time.Time
	AdoptedAt *time.Time
}

// ImageUpload es un archivo de imagen recibido en el request.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}
