package worker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Raymond9734/parking-customers-backend/internal/export"
	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

// ExportProcessor renders export jobs from the queue and stores the files
type ExportProcessor struct {
	sink       ExportSink
	renderOpts export.Options
	logger     *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(sink ExportSink, renderOpts export.Options, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		sink:       sink,
		renderOpts: renderOpts,
		logger:     logger,
	}
}

// Process handles a single export job. Invalid jobs are dropped with a log
// entry since retrying them cannot succeed.
func (p *ExportProcessor) Process(ctx context.Context, job *models.ExportJob) error {
	if err := job.Validate(); err != nil {
		p.logger.Warn("dropping invalid export job",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	renderer, err := export.ForFormat(job.Format, p.renderOpts)
	if err != nil {
		return err
	}

	start := time.Now()
	table := export.TableFromJob(job)
	name := fmt.Sprintf("%s.%s", job.ID, renderer.Extension())

	path, err := p.sink.Save(ctx, name, func(w io.Writer) error {
		return renderer.Render(w, table)
	})
	if err != nil {
		p.logger.Error("failed to store export",
			slog.String("job_id", job.ID),
			slog.String("format", job.Format),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to store export %s: %w", job.ID, err)
	}

	p.logger.Info("export stored",
		slog.String("job_id", job.ID),
		slog.String("path", path),
		slog.Int("rows", len(job.Rows)),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}
