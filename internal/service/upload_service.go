//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"kaapi/backend/internal/fileutil"
	"kaapi/backend/internal/ingest"
	"kaapi/backend/internal/logger"
	"kaapi/backend/internal/metrics"
	"kaapi/backend/internal/model"
	"kaapi/backend/internal/repository"
)

// Upload is a sales export received from a client.
type Upload struct {
	Filename     string
	DeclaredType string
	Content      []byte

	// Date is the business date the rows belong to, "2006-01-02" or
	// RFC3339. Empty means the current day.
	Date string
}

// UploadResult reports what one upload contributed to the dashboard.
// Filename is the sanitized name the file was stored under, not the name
// the client sent.
type UploadResult struct {
	Filename         string
	RowCount         int64
	SkippedRows      int64
	TotalRevenue     decimal.Decimal
	TransactionCount int64
	UploadDate       time.Time

	// SummaryRecorded is false when the daily summary write failed. The
	// upload itself is still accepted.
	SummaryRecorded bool
}

// UploadService runs the ingestion pipeline: validate, parse, aggregate,
// record.
type UploadService interface {
	Process(ctx context.Context, upload Upload) (*UploadResult, error)
	// History returns past uploads, newest first.
	History(ctx context.Context) ([]model.UploadedFile, error)
}

type uploadService struct {
	uploads  repository.UploadRepository
	revenue  repository.RevenueRepository
	maxBytes int64
	now      func() time.Time
}

// NewUploadService creates an upload service. maxBytes <= 0 disables the
// size check.
func NewUploadService(uploads repository.UploadRepository, revenue repository.RevenueRepository, maxBytes int64) UploadService {
	return &uploadService{
		uploads:  uploads,
		revenue:  revenue,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

func (s *uploadService) Process(ctx context.Context, upload Upload) (*UploadResult, error) {
	if upload.Filename == "" && len(upload.Content) == 0 {
		return nil, ErrNoFile
	}

	kind, ok := ingest.DetectKind(upload.DeclaredType, upload.Filename)
	if !ok {
		return nil, ErrInvalidType
	}
	if s.maxBytes > 0 && int64(len(upload.Content)) > s.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	uploadDate, err := s.resolveDate(upload.Date)
	if err != nil {
		return nil, err
	}

	rows, err := ingest.Parse(string(upload.Content))
	if err != nil {
		if errors.Is(err, ingest.ErrNoData) {
			return nil, ErrEmptyData
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	// A lone header line parses cleanly to zero rows; recording it would
	// overwrite the day's summary with zeros.
	if len(rows) == 0 {
		return nil, ErrEmptyData
	}

	summary := ingest.Aggregate(rows, uploadDate)
	metrics.AddRowsParsed(summary.RowCount)
	metrics.AddRowsSkipped(summary.SkippedAmounts)
	if summary.SkippedAmounts > 0 {
		logger.Warn("upload rows skipped", "filename", upload.Filename, "skipped", summary.SkippedAmounts, "total", summary.RowCount)
	}

	stored := fileutil.UniqueName(upload.Filename)
	record := model.UploadedFile{
		Filename:    stored,
		StoragePath: "uploads/" + stored,
		Kind:        model.FileKind(kind),
		UploadedAt:  uploadDate,
		Processed:   true,
		RowCount:    summary.RowCount,
	}
	if _, err := s.uploads.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: record upload: %v", ErrUpstream, err)
	}

	recorded := true
	daily := model.DailyRevenueSummary{
		Date:           summary.Date,
		DayOfWeek:      summary.DayOfWeek,
		Revenue:        summary.Revenue,
		Transactions:   summary.Transactions,
		ConversionRate: summary.ConversionRate,
	}
	// A failed summary write does not fail the upload; the file record
	// already stands and the next upload for the date can repair it.
	if _, err := s.revenue.UpsertByDate(ctx, daily); err != nil {
		logger.Error("failed to upsert daily summary", "date", summary.Date, "error", err)
		metrics.IncSummaryUpsertFailure()
		recorded = false
	}

	metrics.IncUpload()
	logger.Info("upload processed",
		"filename", upload.Filename,
		"rows", summary.RowCount,
		"transactions", summary.Transactions,
		"date", summary.Date)

	return &UploadResult{
		Filename:         stored,
		RowCount:         summary.RowCount,
		SkippedRows:      summary.SkippedAmounts,
		TotalRevenue:     summary.Revenue,
		TransactionCount: summary.Transactions,
		UploadDate:       uploadDate,
		SummaryRecorded:  recorded,
	}, nil
}

func (s *uploadService) History(ctx context.Context) ([]model.UploadedFile, error) {
	return s.uploads.List(ctx)
}

func (s *uploadService) resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return s.now().UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalid, raw)
}
