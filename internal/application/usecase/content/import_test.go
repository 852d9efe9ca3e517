package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/pkg/apperror"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

func Test_Import_RoundTripsExport(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	uc := NewImportUseCase(repo, logger.NewNop())

	require.NoError(t, repo.Update(ctx, func(d *portfolio.Document) error {
		d.Personal.FirstName = "Exported"
		return nil
	}))

	raw, err := uc.Export()
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx, true))
	require.NoError(t, uc.Apply(ctx, raw))

	assert.Equal(t, "Exported", repo.Get().Personal.FirstName)
	assert.True(t, repo.Overridden())
}

func Test_Import_InvalidPayloadLeavesDocumentIdentical(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	uc := NewImportUseCase(repo, logger.NewNop())

	before, err := json.Marshal(repo.Get())
	require.NoError(t, err)

	for _, raw := range [][]byte{
		[]byte("{not json"),
		[]byte(`{"personal": {}}`),
		[]byte(`{"projects": "not an array"}`),
	} {
		err := uc.Apply(ctx, raw)
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.ErrorIs(t, appErr.BaseError, apperror.ErrInvalidInput)
	}

	after, err := json.Marshal(repo.Get())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.False(t, repo.Overridden())
}

func Test_Import_ExportIsIndented(t *testing.T) {
	repo, _ := newTestRepo(t)
	uc := NewImportUseCase(repo, logger.NewNop())

	raw, err := uc.Export()
	require.NoError(t, err)

	assert.Contains(t, string(raw), "\n  \"personal\"")

	doc, err := portfolio.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, repo.Get(), doc)
}
