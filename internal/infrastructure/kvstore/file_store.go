// Package kvstore implementa repository.KVStore sobre disco (afero), Redis y PostgreSQL.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/stockmaster/internal/domain/repository"
)

var _ repository.KVStore = (*FileStore)(nil)

var keySanitizer = strings.NewReplacer("/", "_", "\\", "_", "..", "_")

// FileStore guarda cada clave en un archivo <dir>/<key>.json.
// Set escribe en un temporal del mismo directorio y luego renombra, así el archivo
// final nunca queda escrito a medias.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore construye el store sobre fs (afero.NewOsFs() en producción, MemMapFs en tests).
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

// Path ruta del archivo correspondiente a key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, keySanitizer.Replace(key)+".json")
}

// Get lee el valor de key. Si el archivo no existe devuelve found=false sin error.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := afero.ReadFile(s.fs, s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("leer %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set reemplaza el valor de key de forma atómica (temporal + rename).
func (s *FileStore) Set(_ context.Context, key, value string) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", s.dir, err)
	}
	tmp, err := afero.TempFile(s.fs, s.dir, keySanitizer.Replace(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", key, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = s.fs.Remove(tmpName) }

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sincronizar %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("cerrar %s: %w", key, err)
	}
	if err := s.fs.Rename(tmpName, s.Path(key)); err != nil {
		cleanup()
		return fmt.Errorf("reemplazar %s: %w", key, err)
	}
	return nil
}
