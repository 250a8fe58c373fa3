package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore guarda cada blob como un archivo <clave>.json dentro de un directorio.
// Es el driver por defecto: el análogo directo del almacenamiento local del
// cliente original.
type FileStore struct {
	dir string
}

// NewFileStore crea el directorio de datos si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Load lee el blob de la clave. Archivo inexistente → ErrBlobNotFound.
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	return data, nil
}

// Save escribe el blob vía archivo temporal + rename para no dejar blobs a medias.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("storage: reemplazar %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
