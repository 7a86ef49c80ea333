package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	mediahost "github.com/Rom943/ecommerce-template/internal/adapter/media"
	"github.com/Rom943/ecommerce-template/internal/domain"
	"github.com/Rom943/ecommerce-template/internal/repository"
)

// MediaInput carries the asset metadata reported by the media host's upload
// widget after a client-side upload completes.
type MediaInput struct {
	PublicID string `json:"publicId" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Bytes    int64  `json:"bytes"`
	Folder   string `json:"folder"`
}

// MediaService manages the media library records and mirrors deletions to
// the external host.
type MediaService struct {
	media  repository.MediaRepository
	host   mediahost.Host
	node   *snowflake.Node
	logger *zap.Logger
	tracer trace.Tracer
}

// NewMediaService wires dependencies.
func NewMediaService(media repository.MediaRepository, host mediahost.Host, node *snowflake.Node, logger *zap.Logger) *MediaService {
	return &MediaService{
		media:  media,
		host:   host,
		node:   node,
		logger: logger,
		tracer: otel.Tracer("github.com/Rom943/ecommerce-template/internal/service"),
	}
}

// Record registers an uploaded asset in the library.
func (s *MediaService) Record(ctx context.Context, input MediaInput) (domain.Media, error) {
	ctx, span := s.tracer.Start(ctx, "MediaService.Record")
	defer span.End()

	media := domain.Media{
		ID:       s.node.Generate().Int64(),
		PublicID: input.PublicID,
		URL:      input.URL,
		Format:   input.Format,
		Width:    input.Width,
		Height:   input.Height,
		Bytes:    input.Bytes,
		Folder:   input.Folder,
	}

	created, err := s.media.Create(ctx, media)
	if err != nil {
		span.RecordError(err)
		return domain.Media{}, fmt.Errorf("record media: %w", err)
	}
	s.logger.Info("media recorded", zap.Int64("media_id", created.ID), zap.String("public_id", created.PublicID))
	return created, nil
}

// List returns library entries, optionally scoped to a folder.
func (s *MediaService) List(ctx context.Context, folder string) ([]domain.Media, error) {
	return s.media.List(ctx, folder)
}

// Delete removes the asset from the external host first, then drops the
// record. A record is never deleted while the binary may still exist.
func (s *MediaService) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "MediaService.Delete")
	defer span.End()

	item, err := s.media.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete media: %w", err)
	}

	if err := s.host.DeleteAsset(ctx, item.PublicID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete media asset: %w", err)
	}

	if err := s.media.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}
	s.logger.Info("media deleted", zap.Int64("media_id", id), zap.String("public_id", item.PublicID))
	return nil
}
