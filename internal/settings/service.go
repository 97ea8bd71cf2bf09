package settings

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
	"github.com/easel-works/easel/internal/hotkey"
)

// Service owns the persisted settings and keeps the global hotkey
// registration in sync with them
type Service struct {
	logger  *zap.Logger
	store   *Store
	rebind  func(accel string) error
	current func() string
}

// NewService wires the store to the hotkey manager
func NewService(logger *zap.Logger, store *Store, mgr *hotkey.Manager) *Service {
	return newServiceWithBinding(logger, store, mgr.Rebind, mgr.Current)
}

func newServiceWithBinding(logger *zap.Logger, store *Store, rebind func(string) error, current func() string) *Service {
	return &Service{
		logger:  logger,
		store:   store,
		rebind:  rebind,
		current: current,
	}
}

// Hotkey returns the persisted accelerator
func (s *Service) Hotkey(ctx context.Context) (string, error) {
	settings, err := s.store.Load()
	if err != nil {
		return "", err
	}
	return settings.Hotkey, nil
}

// SetHotkey registers the accelerator first and persists it only once the
// grab succeeded, so a failed registration never clobbers a working value
// on disk
func (s *Service) SetHotkey(ctx context.Context, accel string) error {
	if err := s.rebind(accel); err != nil {
		return err
	}

	if err := s.store.Save(domain.Settings{Hotkey: accel}); err != nil {
		return fmt.Errorf("failed to persist hotkey: %w", err)
	}

	s.logger.Info("Hotkey updated", zap.String("hotkey", accel))
	return nil
}

// ApplyStored registers the stored (or default) accelerator. A failed grab
// is logged but not fatal: the combination may be claimed by another
// application, and the app is still usable from the keyboard.
func (s *Service) ApplyStored(ctx context.Context) error {
	settings, err := s.store.Load()
	if err != nil {
		return err
	}

	if s.current() == settings.Hotkey {
		return nil
	}

	if err := s.rebind(settings.Hotkey); err != nil {
		s.logger.Warn("Failed to register stored hotkey",
			zap.String("hotkey", settings.Hotkey),
			zap.Error(err))
		return nil
	}
	return nil
}
