package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/repository"
	"github.com/andino-energia/wellwatch/internal/storage"
)

// WellAccessGuard asserts that an actor may operate on a given well.
type WellAccessGuard interface {
	AssertWellAccess(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) error
}

// Attachment is an evidence file received alongside a resolution.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ResolveAlertInput carries the resolution text and optional evidence.
type ResolveAlertInput struct {
	Resolution string
	Photo      *Attachment
	Document   *Attachment
}

const bulkResolutionText = "Resuelta en lote"

type AlertService struct {
	alerts   repository.AlertRepositoryInterface
	guard    WellAccessGuard
	uploader storage.Uploader
	logger   *slog.Logger
}

func NewAlertService(
	alerts repository.AlertRepositoryInterface,
	guard WellAccessGuard,
	uploader storage.Uploader,
	logger *slog.Logger,
) *AlertService {
	return &AlertService{
		alerts:   alerts,
		guard:    guard,
		uploader: uploader,
		logger:   logger,
	}
}

// List returns the actor's alerts, optionally narrowed by filter and well.
// An empty filter means all.
func (s *AlertService) List(ctx context.Context, actor domain.ActorContext, filter domain.AlertFilter, wellID *uuid.UUID) ([]domain.Alert, error) {
	if filter == "" {
		filter = domain.AlertFilterAll
	}
	if !filter.Valid() {
		return nil, domain.ErrValidationFailed.WithError(errors.New("unknown alert filter: " + string(filter)))
	}

	if wellID != nil {
		if err := s.guard.AssertWellAccess(ctx, actor, *wellID); err != nil {
			return nil, err
		}
	}

	return s.alerts.ListForUser(ctx, actor.UserID, filter, wellID)
}

// Resolve marks one alert resolved with the given text, uploading any
// evidence first so the stored row already carries the final URLs.
func (s *AlertService) Resolve(ctx context.Context, actor domain.ActorContext, alertID uuid.UUID, in ResolveAlertInput) (*domain.Alert, error) {
	if strings.TrimSpace(in.Resolution) == "" {
		return nil, domain.ErrValidationFailed.WithError(errors.New("resolution text is required"))
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.AssertWellAccess(ctx, actor, alert.WellID); err != nil {
		return nil, err
	}

	photoURL, err := uploadEvidence(ctx, s.uploader, alertID, in.Photo)
	if err != nil {
		return nil, err
	}
	documentURL, err := uploadEvidence(ctx, s.uploader, alertID, in.Document)
	if err != nil {
		return nil, err
	}

	if err := s.alerts.Resolve(ctx, alertID, in.Resolution, photoURL, documentURL); err != nil {
		return nil, err
	}

	return s.alerts.GetByID(ctx, alertID)
}

// ResolveAll resolves every unresolved alert of the actor in one statement
// and returns how many were touched.
func (s *AlertService) ResolveAll(ctx context.Context, actor domain.ActorContext, resolution string) (int64, error) {
	if strings.TrimSpace(resolution) == "" {
		resolution = bulkResolutionText
	}

	count, err := s.alerts.ResolveAllForUser(ctx, actor.UserID, resolution)
	if err != nil {
		return 0, err
	}

	s.logger.Info("alerts resolved in bulk", "user_id", actor.UserID, "count", count)
	return count, nil
}

// Delete archives an alert into history and removes it from the active set.
// The two steps run in one transaction; if archival fails nothing is deleted.
func (s *AlertService) Delete(ctx context.Context, actor domain.ActorContext, alertID uuid.UUID) error {
	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return err
	}

	if err := s.guard.AssertWellAccess(ctx, actor, alert.WellID); err != nil {
		return err
	}

	if err := s.alerts.ArchiveAndDelete(ctx, alertID); err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return domain.ErrArchiveFailed.WithError(err)
	}

	return nil
}

// DeleteAllResolved archives and removes every resolved alert of the actor,
// returning how many were moved to history.
func (s *AlertService) DeleteAllResolved(ctx context.Context, actor domain.ActorContext) (int64, error) {
	count, err := s.alerts.ArchiveAllResolvedForUser(ctx, actor.UserID)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return 0, err
		}
		return 0, domain.ErrArchiveFailed.WithError(err)
	}

	s.logger.Info("resolved alerts archived", "user_id", actor.UserID, "count", count)
	return count, nil
}

// uploadEvidence stores an optional attachment and maps storage failures to
// the API error taxonomy.
func uploadEvidence(ctx context.Context, uploader storage.Uploader, entityID uuid.UUID, att *Attachment) (string, error) {
	if att == nil {
		return "", nil
	}

	url, err := uploader.Upload(ctx, entityID.String(), att.Filename, att.ContentType, att.Data)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMediaType) {
			return "", domain.ErrValidationFailed.WithError(err)
		}
		return "", domain.ErrUpstream.WithError(err)
	}
	return url, nil
}
