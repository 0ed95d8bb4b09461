package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storer provides read access to a set of loaded asset specs. World state is
// memory-only, so there is no write path.
type Storer[T ValidatingSpec] interface {
	Get(Identifier) T
	GetAll() map[Identifier]T
}

// FileStore loads every .json asset under a directory tree at construction
// time. The record set is immutable afterwards.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[Identifier]T
}

func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[Identifier]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	return filepath.Walk(s.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		asset, err := s.loadAsset(path)
		if err != nil {
			return err
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
		}

		if _, ok := s.records[asset.Id()]; ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}
		s.records[asset.Id()] = asset.Spec

		return nil
	})
}

func (s *FileStore[T]) loadAsset(path string) (*Asset[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var asset Asset[T]
	err = json.Unmarshal(data, &asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", path, err)
	}

	return &asset, nil
}

func (s *FileStore[T]) Get(id Identifier) T {
	return s.records[id]
}

func (s *FileStore[T]) GetAll() map[Identifier]T {
	return s.records
}
