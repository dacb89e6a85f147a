package pets

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// memoria máxima para partes multipart; el resto va a archivos temporales.
const multipartMemory = 8 << 20

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		// Ruta estática antes que /{petID} (chi prioriza igual, pero queda explícito).
		pr.Get("/filter/{mood}", filterPetsHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Patch("/{petID}/adopt", adoptPetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// createPetRequest es el cuerpo para registrar una mascota (JSON o campos multipart).
type createPetRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Species     string `json:"species" validate:"required,max=50"`
	Age         *int   `json:"age" validate:"required,gte=0"`
	Personality string `json:"personality" validate:"required,max=500"`
	Mood        string `json:"mood" validate:"omitempty,oneof=happy sad calm playful excited" enums:"happy,sad,calm,playful,excited"`
}

// updatePetRequest: punteros, nil = no tocar.
type updatePetRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Species     *string `json:"species" validate:"omitempty,max=50"`
	Age         *int    `json:"age" validate:"omitempty,gte=0"`
	Personality *string `json:"personality" validate:"omitempty,max=500"`
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Species     string     `json:"species"`
	Age         int        `json:"age"`
	Personality string     `json:"personality"`
	Mood        Mood       `json:"mood" enums:"happy,sad,calm,playful,excited"`
	Image       *string    `json:"image"`
	Adopted     bool       `json:"adopted"`
	CreatedAt   time.Time  `json:"created_at"`
	AdoptedAt   *time.Time `json:"adopted_at"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota. Acepta JSON o multipart/form-data con un archivo opcional `image` (jpeg, png o gif). El mood por defecto es `happy`.
// @Tags pets
// @Accept json,mpfd
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} errorResponse "campos faltantes o inválidos"
// @Failure 413 {object} errorResponse "archivo demasiado grande"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			req    createPetRequest
			upload *ImageUpload
		)

		if isMultipart(r) {
			form, err := parseMultipart(r)
			if err != nil {
				writeBodyError(w, err)
				return
			}
			defer func() { _ = form.RemoveAll() }()

			req.Name = formValue(form, "name")
			req.Species = formValue(form, "species")
			req.Personality = formValue(form, "personality")
			req.Mood = formValue(form, "mood")
			if _, ok := form.Value["age"]; ok {
				age, err := strconv.Atoi(strings.TrimSpace(formValue(form, "age")))
				if err != nil {
					writeJSON(w, http.StatusBadRequest, errorResponse{Error: "age must be an integer"})
					return
				}
				req.Age = &age
			}

			f, up, err := formImage(form)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			if f != nil {
				defer f.Close()
				upload = up
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeBodyError(w, err)
				return
			}
		}

		req.Mood = strings.ToLower(strings.TrimSpace(req.Mood))
		if err := validation.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "missing or invalid fields",
				Fields: validation.Fields(err),
			})
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			Age:         req.Age,
			Personality: req.Personality,
			Mood:        req.Mood,
			Image:       upload,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas, más recientes primero. El mood de las no adoptadas se recalcula en cada lectura.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {object} errorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} errorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Actualización parcial: solo se aplican los campos enviados. `adopted`, `adopted_at` y `mood` se ignoran. En JSON, `"image": null` borra la imagen; en multipart, un archivo `image` la reemplaza y `remove_image=true` la borra.
// @Tags pets
// @Accept json,mpfd
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a actualizar"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			req   updatePetRequest
			patch ImagePatch
		)

		if isMultipart(r) {
			form, err := parseMultipart(r)
			if err != nil {
				writeBodyError(w, err)
				return
			}
			defer func() { _ = form.RemoveAll() }()

			req.Name = optionalFormValue(form, "name")
			req.Species = optionalFormValue(form, "species")
			req.Personality = optionalFormValue(form, "personality")
			if v := optionalFormValue(form, "age"); v != nil {
				age, err := strconv.Atoi(strings.TrimSpace(*v))
				if err != nil {
					writeJSON(w, http.StatusBadRequest, errorResponse{Error: "age must be an integer"})
					return
				}
				req.Age = &age
			}

			f, up, err := formImage(form)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			switch {
			case f != nil:
				defer f.Close()
				patch = ImagePatch{Present: true, Upload: up}
			case strings.EqualFold(formValue(form, "remove_image"), "true"):
				patch = ImagePatch{Present: true}
			}
		} else {
			// Decodificamos a map para detectar presencia de campos
			// (age=0 es un valor válido, "image": null significa borrar).
			var raw map[string]json.RawMessage
			if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
				writeBodyError(w, err)
				return
			}

			if err := decodePresent(raw, "name", &req.Name); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name must be a string"})
				return
			}
			if err := decodePresent(raw, "species", &req.Species); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "species must be a string"})
				return
			}
			if err := decodePresent(raw, "personality", &req.Personality); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "personality must be a string"})
				return
			}
			if err := decodePresent(raw, "age", &req.Age); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "age must be an integer"})
				return
			}

			if v, exists := raw["image"]; exists {
				if strings.TrimSpace(string(v)) != "null" {
					writeJSON(w, http.StatusBadRequest, errorResponse{
						Error: "image must be uploaded as multipart/form-data or set to null",
					})
					return
				}
				patch = ImagePatch{Present: true}
			}
			// adopted / adopted_at / mood: ignorados a propósito, la adopción tiene su endpoint.
		}

		if err := validation.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "invalid fields",
				Fields: validation.Fields(err),
			})
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:        req.Name,
			Species:     req.Species,
			Age:         req.Age,
			Personality: req.Personality,
			Image:       patch,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// adoptPetHandler godoc
// @Summary Adoptar mascota
// @Description Marca la mascota como adoptada (una sola vez). El mood queda fijo en `happy`.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse "pet is already adopted"
// @Failure 404 {object} errorResponse
// @Router /pets/{petID}/adopt [patch]
func adoptPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Adopt(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Elimina la mascota y su imagen guardada.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "pet deleted"})
	}
}

// filterPetsHandler godoc
// @Summary Filtrar por mood
// @Description Devuelve las mascotas cuyo mood actual coincide (sin distinguir mayúsculas). Un mood desconocido devuelve una lista vacía.
// @Tags pets
// @Produce json
// @Param mood path string true "Mood" Enums(happy, sad, calm, playful, excited)
// @Success 200 {array} petResponse
// @Failure 500 {object} errorResponse
// @Router /pets/filter/{mood} [get]
func filterPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FilterByMood(r.Context(), chi.URLParam(r, "mood"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Age:         p.Age,
		Personality: p.Personality,
		Mood:        p.Mood,
		Image:       p.Image,
		Adopted:     p.Adopted,
		CreatedAt:   p.CreatedAt,
		AdoptedAt:   p.AdoptedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

// writeError traduce errores de dominio a status. Los 5xx no exponen detalle.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: ErrNotFound.Error()})
	case errors.Is(err, ErrAlreadyAdopted):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ErrAlreadyAdopted.Error()})
	default:
		log.Error("pets request failed", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"error":      err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// writeBodyError cubre errores leyendo el body (JSON roto, multipart roto, límite de tamaño).
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

func parseMultipart(r *http.Request) (*multipart.Form, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, err
	}
	return r.MultipartForm, nil
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func optionalFormValue(form *multipart.Form, key string) *string {
	vs, ok := form.Value[key]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}

// formImage abre el archivo "image" si vino. El caller cierra el archivo.
func formImage(form *multipart.Form) (multipart.File, *ImageUpload, error) {
	fhs := form.File["image"]
	if len(fhs) == 0 {
		return nil, nil, nil
	}
	fh := fhs[0]
	f, err := fh.Open()
	if err != nil {
		return nil, nil, errors.New("image could not be read")
	}
	return f, &ImageUpload{Filename: fh.Filename, Content: f}, nil
}

// decodePresent decodifica raw[key] en dst solo si la key vino en el body.
func decodePresent(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(v, dst)
}
