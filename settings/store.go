package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexflint/go-filemutex"
)

var ErrInvalidWorkDuration = errors.New("work duration must be whole minutes between 1m and 24h")

type Settings struct {
	WorkDuration time.Duration
	Notify       bool
}

// Store serialises settings access between taikin processes with a lock file.
type Store struct {
	repo   Repository
	mux    *filemutex.FileMutex
	logger *slog.Logger
}

func NewStore(repo Repository, fm *filemutex.FileMutex, logger *slog.Logger) *Store {
	return &Store{
		repo:   repo,
		mux:    fm,
		logger: logger,
	}
}

func (s *Store) Load() (Settings, error) {
	if err := s.mux.RLock(); err != nil {
		return Settings{}, err
	}
	defer s.mux.RUnlock()

	d, err := s.repo.GetWorkDuration()
	if err != nil {
		return Settings{}, err
	}
	notify, err := s.repo.GetNotify()
	if err != nil {
		return Settings{}, err
	}
	s.logger.Debug("load settings", slog.Duration("work_duration", d), slog.Bool("notify", notify))
	return Settings{WorkDuration: d, Notify: notify}, nil
}

func (s *Store) SetWorkDuration(d time.Duration) error {
	if err := ValidateWorkDuration(d); err != nil {
		return err
	}
	if err := s.mux.Lock(); err != nil {
		return err
	}
	defer s.mux.Unlock()

	s.logger.Info("save work duration", slog.Duration("work_duration", d))
	return s.repo.SaveWorkDuration(d)
}

func (s *Store) SetNotify(on bool) error {
	if err := s.mux.Lock(); err != nil {
		return err
	}
	defer s.mux.Unlock()

	s.logger.Info("save notify", slog.Bool("notify", on))
	return s.repo.SaveNotify(on)
}

func ValidateWorkDuration(d time.Duration) error {
	if d <= 0 || d > 24*time.Hour || d%time.Minute != 0 {
		return fmt.Errorf("%w: %s", ErrInvalidWorkDuration, d)
	}
	return nil
}
