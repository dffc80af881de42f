// Package store reads the portfolio's JSON resource files. Every call
// re-reads from disk so out-of-band edits are visible on the next request
// without a restart.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kapu/portfolio-backend-go/internal/domain"
	"go.uber.org/zap"
)

// ErrNotFound signals that a resource file does not exist on disk.
var ErrNotFound = errors.New("file not found")

// ErrItemNotFound signals that no diary item matches the requested id.
var ErrItemNotFound = errors.New("diary item not found")

type ProfileStore struct {
	path   string
	logger *zap.Logger
}

func NewProfileStore(path string, logger *zap.Logger) *ProfileStore {
	return &ProfileStore{path: path, logger: logger}
}

// Load reads and decodes the profile file. A missing file is ErrNotFound;
// any other read or decode error passes through.
func (s *ProfileStore) Load() (*domain.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", s.path, ErrNotFound)
		}
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Error("Profile decode failed", zap.String("path", s.path), zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

type DiaryStore struct {
	path   string
	logger *zap.Logger
}

func NewDiaryStore(path string, logger *zap.Logger) *DiaryStore {
	return &DiaryStore{path: path, logger: logger}
}

// List returns the diary entries in file order. A missing file yields an
// empty list rather than an error: the diary may simply not exist yet.
func (s *DiaryStore) List() ([]domain.DiaryItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.DiaryItem{}, nil
		}
		return nil, err
	}

	var list domain.DiaryList
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Error("Diary decode failed", zap.String("path", s.path), zap.Error(err))
		return nil, err
	}
	if list.Items == nil {
		return []domain.DiaryItem{}, nil
	}
	return list.Items, nil
}

// Get scans the diary for the first item with the given id.
func (s *DiaryStore) Get(id string) (*domain.DiaryItem, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrItemNotFound
}
