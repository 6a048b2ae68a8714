package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Raymond9734/parking-customers-backend/internal/export"
	"github.com/Raymond9734/parking-customers-backend/internal/i18n"
	"github.com/Raymond9734/parking-customers-backend/internal/models"
	"github.com/Raymond9734/parking-customers-backend/internal/queue"
)

// ExportService builds customer exports
type ExportService interface {
	Snapshot(ctx context.Context, req *ExportRequest) (*models.ExportJob, error)
	Render(ctx context.Context, req *ExportRequest) (*ExportFile, error)
	Enqueue(ctx context.Context, req *ExportRequest) (*models.ExportJob, error)
}

type exportService struct {
	customerSvc     CustomerService
	collectionSvc   CollectionService
	queueClient     queue.Client
	renderOpts      export.Options
	defaultLanguage string
	logger          *slog.Logger
}

// NewExportService creates a new export service. queueClient may be nil,
// in which case Enqueue reports that background exports are unavailable.
func NewExportService(
	customerSvc CustomerService,
	collectionSvc CollectionService,
	queueClient queue.Client,
	renderOpts export.Options,
	defaultLanguage string,
	logger *slog.Logger,
) ExportService {
	return &exportService{
		customerSvc:     customerSvc,
		collectionSvc:   collectionSvc,
		queueClient:     queueClient,
		renderOpts:      renderOpts,
		defaultLanguage: i18n.Normalize(defaultLanguage, i18n.English),
		logger:          logger,
	}
}

// Snapshot projects the filtered, sorted customers into a job with
// translated headers. Columns default to DefaultColumns.
func (s *exportService) Snapshot(ctx context.Context, req *ExportRequest) (*models.ExportJob, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = DefaultColumns
	}
	lang := i18n.Normalize(req.Language, s.defaultLanguage)

	customers, err := s.customerSvc.List(ctx, models.CustomerQuery{
		Search: req.Search,
		SortBy: req.SortBy,
		Order:  req.Order,
	})
	if err != nil {
		return nil, err
	}

	rows, err := s.collectionSvc.ToExportRows(customers, columns)
	if err != nil {
		return nil, err
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = i18n.T(lang, col)
	}

	return &models.ExportJob{
		ID:          uuid.NewString(),
		Format:      req.Format,
		Language:    lang,
		Title:       i18n.T(lang, "customers"),
		Headers:     headers,
		Rows:        rows,
		RequestedAt: time.Now().UTC(),
	}, nil
}

// Render produces the export file in memory
func (s *exportService) Render(ctx context.Context, req *ExportRequest) (*ExportFile, error) {
	job, err := s.Snapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := export.ForFormat(job.Format, s.renderOpts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, export.TableFromJob(job)); err != nil {
		s.logger.Error("failed to render export",
			slog.String("format", job.Format),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	s.logger.Info("export rendered",
		slog.String("format", job.Format),
		slog.String("language", job.Language),
		slog.Int("rows", len(job.Rows)),
	)

	return &ExportFile{
		Name:        fmt.Sprintf("customers-%s.%s", job.RequestedAt.Format("20060102-150405"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// Enqueue snapshots the export and hands it to the background worker
func (s *exportService) Enqueue(ctx context.Context, req *ExportRequest) (*models.ExportJob, error) {
	if s.queueClient == nil {
		return nil, models.ErrQueueUnavailable
	}

	job, err := s.Snapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.Publish(ctx, job); err != nil {
		s.logger.Error("failed to queue export",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to queue export: %w", err)
	}

	s.logger.Info("export queued",
		slog.String("job_id", job.ID),
		slog.String("format", job.Format),
		slog.Int("rows", len(job.Rows)),
	)

	return job, nil
}
