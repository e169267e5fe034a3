package usecase

import (
	"context"
	"errors"

	"growth-dashboard/internal/dashboard/core/domain"
	"growth-dashboard/internal/dashboard/core/ports"
	"growth-dashboard/internal/logging"
)

var ErrMissingClient = errors.New("client id is required")

// ThemeUseCase reads and flips a client's colour theme.
type ThemeUseCase struct {
	store ports.PreferenceStorePort
	log   *logging.Logger
}

func NewThemeUseCase(store ports.PreferenceStorePort, log *logging.Logger) *ThemeUseCase {
	return &ThemeUseCase{store: store, log: log}
}

// Current returns the stored theme, or light when nothing valid is stored
// or the store cannot be reached.
func (uc *ThemeUseCase) Current(ctx context.Context, clientID string) domain.Theme {
	if clientID == "" {
		return domain.ThemeLight
	}
	value, found, err := uc.store.Get(ctx, clientID, domain.ThemeKey)
	if err != nil {
		uc.log.Warn("read theme for %s: %v", clientID, err)
		return domain.ThemeLight
	}
	if !found {
		return domain.ThemeLight
	}
	theme, err := domain.ParseTheme(value)
	if err != nil {
		uc.log.Debug("ignoring stored theme for %s: %v", clientID, err)
		return domain.ThemeLight
	}
	return theme
}

// Set stores theme for the client.
func (uc *ThemeUseCase) Set(ctx context.Context, clientID string, theme domain.Theme) error {
	if clientID == "" {
		return ErrMissingClient
	}
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return err
	}
	return uc.store.Put(ctx, clientID, domain.ThemeKey, string(theme))
}

// Toggle flips the client's theme and returns the new one.
func (uc *ThemeUseCase) Toggle(ctx context.Context, clientID string) (domain.Theme, error) {
	next := uc.Current(ctx, clientID).Toggle()
	if err := uc.Set(ctx, clientID, next); err != nil {
		return "", err
	}
	return next, nil
}
