package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"pet-shelter/internal/domain/pets"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	DefaultURLPrefix = "/uploads"
	DefaultMaxBytes  = 5 << 20
)

// Tipos aceptados: se valida el contenido (sniff) y también la extensión.
var allowed = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

var allowedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// DiskStore implementa pets.ImageStore sobre el filesystem local.
type DiskStore struct {
	root      string
	urlPrefix string
	maxBytes  int64
}

func NewDiskStore(root string, maxBytes int64) (*DiskStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("upload root required")
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{
		root:      root,
		urlPrefix: DefaultURLPrefix,
		maxBytes:  maxBytes,
	}, nil
}

// Save valida y guarda la imagen como <uuid><ext>; devuelve /uploads/<archivo>.
func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExt[ext]; !ok {
		return "", fmt.Errorf("%w: only jpeg, png or gif images are allowed", pets.ErrInvalidInput)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image is empty", pets.ErrInvalidInput)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", pets.ErrInvalidInput, s.maxBytes)
	}

	mt := mimetype.Detect(data)
	storedExt := ""
	for mime, e := range allowed {
		if mt.Is(mime) {
			storedExt = e
			break
		}
	}
	if storedExt == "" {
		return "", fmt.Errorf("%w: only jpeg, png or gif images are allowed (got %s)", pets.ErrInvalidInput, mt.String())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + storedExt
	if err := writeFile(filepath.Join(s.root, name), data); err != nil {
		return "", err
	}
	return path.Join(s.urlPrefix, name), nil
}

// Remove borra el archivo referenciado. Un archivo inexistente no es error.
func (s *DiskStore) Remove(ctx context.Context, ref string) error {
	name, err := s.fileName(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Handler sirve los archivos guardados bajo el prefijo público.
func (s *DiskStore) Handler() http.Handler {
	return http.StripPrefix(s.urlPrefix, http.FileServer(http.Dir(s.root)))
}

func (s *DiskStore) URLPrefix() string {
	return s.urlPrefix
}

func (s *DiskStore) MaxBytes() int64 {
	return s.maxBytes
}

// fileName extrae el nombre del archivo de una referencia /uploads/<archivo>,
// rechazando cualquier cosa que salga del root.
func (s *DiskStore) fileName(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, s.urlPrefix+"/") {
		return "", fmt.Errorf("image ref %q outside %s", ref, s.urlPrefix)
	}
	name := strings.TrimPrefix(ref, s.urlPrefix+"/")
	if name == "" || name != path.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid image ref %q", ref)
	}
	return name, nil
}

// writeFile escribe a un temporal y renombra, para no dejar archivos a medias.
func writeFile(dst string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close upload: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod upload: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename upload: %w", err)
	}
	return nil
}
