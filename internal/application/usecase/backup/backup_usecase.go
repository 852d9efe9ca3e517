package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/opabeer/portfolio-api/internal/application/service"
	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/internal/domain/store"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// BackupUseCase uploads a timestamped JSON snapshot of the persisted
// document. The worker runs it whenever a content event arrives. Failures
// are logged, never propagated: a missed backup must not break editing.
type BackupUseCase struct {
	store    store.Store
	uploader service.Uploader
	logger   logger.Logger
}

func NewBackupUseCase(st store.Store, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		store:    st,
		uploader: uploader,
		logger:   log,
	}
}

func (uc *BackupUseCase) Execute(ctx context.Context) {
	uc.logger.Info("Starting portfolio snapshot backup...")

	raw, err := uc.store.LoadDocument(ctx)
	if err != nil {
		uc.logger.Error("failed to load document for backup", err)
		return
	}
	if raw == nil {
		// No override saved yet: snapshot the defaults so every event
		// leaves a restorable copy.
		raw, err = json.Marshal(portfolio.Defaults())
		if err != nil {
			uc.logger.Error("failed to serialize default document", err)
			return
		}
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("snapshot-%s.json", timestamp)
	folder := "backups/portfolio"
	publicID := fmt.Sprintf("%s/%s", folder, filename)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(raw), folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload snapshot", err)
		return
	}

	uc.logger.Info("Portfolio snapshot uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
	)
}
