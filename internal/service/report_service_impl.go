package service

import (
	"context"

	"github.com/autoscience/autoscience/internal/parse"
	"github.com/autoscience/autoscience/internal/report"
	"github.com/autoscience/autoscience/internal/store"
)

type reportService struct {
	blobs store.BlobStore
}

// NewReportService creates the tally-and-render pipeline.
func NewReportService(blobs store.BlobStore) ReportService {
	return &reportService{blobs: blobs}
}

func (s *reportService) Build(ctx context.Context) ([]byte, error) {
	summaryRaw, err := s.blobs.Read(ctx, store.KeySurveySummary)
	if err != nil {
		return nil, err
	}
	rowsRaw, err := s.blobs.Read(ctx, store.KeyResponseRows)
	if err != nil {
		return nil, err
	}

	questions, err := parse.SurveySummary(string(summaryRaw))
	if err != nil {
		return nil, err
	}
	rows, err := parse.ResponseRows(string(rowsRaw))
	if err != nil {
		return nil, err
	}

	tally := report.Tally(questions, rows)
	pdf, err := report.Render(questions, tally)
	if err != nil {
		return nil, err
	}

	if err := s.blobs.Write(ctx, store.KeyReport, pdf); err != nil {
		return nil, err
	}
	return pdf, nil
}
