package content

import (
	"context"
	"errors"

	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/pkg/apperror"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// EditUseCase maps the dashboard's edit operations onto the domain document
// and pushes each result through the repository.
type EditUseCase struct {
	repo   *Repository
	logger logger.Logger
}

func NewEditUseCase(repo *Repository, log logger.Logger) *EditUseCase {
	return &EditUseCase{repo: repo, logger: log}
}

func (uc *EditUseCase) wrap(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, portfolio.ErrUnknownSection),
		errors.Is(err, portfolio.ErrUnknownGameSlot):
		return apperror.NewNotFound("section", err.Error())
	case errors.Is(err, portfolio.ErrUnknownField),
		errors.Is(err, portfolio.ErrImmutableField),
		errors.Is(err, portfolio.ErrBadFieldValue),
		errors.Is(err, portfolio.ErrUnknownPreset):
		return apperror.NewInvalidInput(err.Error(), nil)
	case errors.Is(err, ErrConfirmationRequired):
		return apperror.NewInvalidInput("deletion requires confirmation", nil)
	}
	return apperror.NewInternal("edit operation failed", err)
}

func (uc *EditUseCase) AddItem(ctx context.Context, section string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.AddItem(section)
	}))
}

func (uc *EditUseCase) DeleteItem(ctx context.Context, section string, index int, confirm bool) error {
	if !confirm {
		return uc.wrap(ErrConfirmationRequired)
	}
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.DeleteItem(section, index)
	}))
}

func (uc *EditUseCase) PatchField(ctx context.Context, section string, index int, field string, value any) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.PatchField(section, index, field, value)
	}))
}

func (uc *EditUseCase) SetPersonalField(ctx context.Context, field, value string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.SetPersonalField(field, value)
	}))
}

func (uc *EditUseCase) AddStat(ctx context.Context) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		d.AddStat()
		return nil
	}))
}

func (uc *EditUseCase) DeleteStat(ctx context.Context, index int, confirm bool) error {
	if !confirm {
		return uc.wrap(ErrConfirmationRequired)
	}
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		d.DeleteStat(index)
		return nil
	}))
}

func (uc *EditUseCase) PatchStat(ctx context.Context, index int, field, value string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.PatchStat(index, field, value)
	}))
}

func (uc *EditUseCase) SetStack(ctx context.Context, text string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		d.SetStack(text)
		return nil
	}))
}

func (uc *EditUseCase) SetServices(ctx context.Context, text string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		d.SetServices(text)
		return nil
	}))
}

func (uc *EditUseCase) SetThemePreset(ctx context.Context, name string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.SetThemePreset(name)
	}))
}

func (uc *EditUseCase) SetCustomTheme(ctx context.Context, hex string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.SetCustomTheme(hex)
	}))
}

func (uc *EditUseCase) SetGameInfo(ctx context.Context, slot, field, value string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.SetGameInfo(slot, field, value)
	}))
}

func (uc *EditUseCase) AddGameSettingRow(ctx context.Context, slot string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.AddGameSettingRow(slot)
	}))
}

func (uc *EditUseCase) DeleteGameSettingRow(ctx context.Context, slot string, index int) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.DeleteGameSettingRow(slot, index)
	}))
}

func (uc *EditUseCase) PatchGameSettingRow(ctx context.Context, slot string, index int, field, value string) error {
	return uc.wrap(uc.repo.Update(ctx, func(d *portfolio.Document) error {
		return d.PatchGameSettingRow(slot, index, field, value)
	}))
}

func (uc *EditUseCase) Reset(ctx context.Context, confirm bool) error {
	if err := uc.repo.Reset(ctx, confirm); err != nil {
		if errors.Is(err, ErrConfirmationRequired) {
			return apperror.NewInvalidInput("reset requires confirmation", nil)
		}
		return apperror.NewInternal("reset failed", err)
	}
	return nil
}
