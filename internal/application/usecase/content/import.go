package content

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/pkg/apperror"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// ImportUseCase is the raw document editor: it accepts a full serialized
// document, validates it, and replaces the repository state atomically. On
// any failure the current document is left untouched.
type ImportUseCase struct {
	repo   *Repository
	logger logger.Logger
}

func NewImportUseCase(repo *Repository, log logger.Logger) *ImportUseCase {
	return &ImportUseCase{repo: repo, logger: log}
}

func (uc *ImportUseCase) Apply(ctx context.Context, raw []byte) error {
	doc, err := portfolio.Parse(raw)
	if err != nil {
		if errors.Is(err, portfolio.ErrInvalidFormat) {
			return apperror.NewInvalidInput(err.Error(), nil)
		}
		return apperror.NewInternal("failed to parse document", err)
	}

	uc.repo.Replace(ctx, doc)
	uc.logger.Info("raw document import applied")
	return nil
}

// Export returns the current document as indented JSON, the form the
// dashboard's JSON tab shows for hand editing.
func (uc *ImportUseCase) Export() ([]byte, error) {
	doc := uc.repo.Get()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to serialize document", err)
	}
	return raw, nil
}
