package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/domain/repository"
	"github.com/bnema/onramp/internal/logging"
)

// ThemeSlot holds the last selected theme name.
const ThemeSlot = "theme"

// ThemeUseCase reads and switches the persisted dashboard theme.
type ThemeUseCase struct {
	slots repository.SlotRepository
}

// NewThemeUseCase creates a new ThemeUseCase.
func NewThemeUseCase(slots repository.SlotRepository) *ThemeUseCase {
	return &ThemeUseCase{slots: slots}
}

// Current returns the stored theme, or the default when none is stored or the
// stored value is unknown. A read error also yields the default.
func (uc *ThemeUseCase) Current(ctx context.Context) (entity.Theme, error) {
	log := logging.FromContext(ctx)

	raw, found, err := uc.slots.Get(ctx, ThemeSlot)
	if err != nil {
		return entity.DefaultTheme, fmt.Errorf("failed to read theme: %w", err)
	}
	if !found {
		return entity.DefaultTheme, nil
	}

	theme, err := entity.ParseTheme(string(raw))
	if err != nil {
		log.Warn().Err(err).Msg("ignoring stored theme")
		return entity.DefaultTheme, nil
	}
	return theme, nil
}

// Set stores theme.
func (uc *ThemeUseCase) Set(ctx context.Context, theme entity.Theme) error {
	if _, err := entity.ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := uc.slots.Put(ctx, ThemeSlot, []byte(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("theme", string(theme)).Msg("theme saved")
	return nil
}

// Toggle switches between light and dark and returns the new theme.
func (uc *ThemeUseCase) Toggle(ctx context.Context) (entity.Theme, error) {
	current, err := uc.Current(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggled()
	if err := uc.Set(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
