package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/repository"
)

const reportDateLayout = "02/01/2006 15:04"

type ReportService struct {
	reports repository.ReportRepositoryInterface
	guard   WellAccessGuard
	logger  *slog.Logger
}

func NewReportService(
	reports repository.ReportRepositoryInterface,
	guard WellAccessGuard,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{reports: reports, guard: guard, logger: logger}
}

// Build assembles the historical series of one parameter for a well in a
// date range, with min, max and average aggregates.
func (s *ReportService) Build(ctx context.Context, actor domain.ActorContext, req domain.ReportRequest) (*domain.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.ErrValidationFailed.WithError(err)
	}

	if err := s.guard.AssertWellAccess(ctx, actor, req.WellID); err != nil {
		return nil, err
	}

	wellName, err := s.reports.WellName(ctx, req.WellID)
	if err != nil {
		return nil, err
	}

	points, err := s.reports.Series(ctx, req.WellID, req.Parameter, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	unit, _ := domain.ReportParameterUnit(req.Parameter)

	report := &domain.Report{
		WellName:  wellName,
		Parameter: req.Parameter,
		Dates:     make([]string, 0, len(points)),
		Values:    make([]float64, 0, len(points)),
		Summary:   []domain.ReportSummary{},
	}
	for _, p := range points {
		report.Dates = append(report.Dates, p.RecordedAt.Format(reportDateLayout))
		report.Values = append(report.Values, p.Value)
	}

	if len(points) > 0 {
		min, max, sum := points[0].Value, points[0].Value, 0.0
		for _, p := range points {
			if p.Value < min {
				min = p.Value
			}
			if p.Value > max {
				max = p.Value
			}
			sum += p.Value
		}
		report.Summary = []domain.ReportSummary{
			{Label: "Mínimo", Value: min, Unit: unit},
			{Label: "Máximo", Value: max, Unit: unit},
			{Label: "Promedio", Value: sum / float64(len(points)), Unit: unit},
		}
	}

	s.logger.Info("report built",
		"well_id", req.WellID,
		"parameter", req.Parameter,
		"points", len(points),
	)
	return report, nil
}

// ExportXLSX renders the report as a spreadsheet and returns the file bytes
// together with a download filename.
func (s *ReportService) ExportXLSX(ctx context.Context, actor domain.ActorContext, req domain.ReportRequest) ([]byte, string, error) {
	report, err := s.Build(ctx, actor, req)
	if err != nil {
		return nil, "", err
	}

	unit, _ := domain.ReportParameterUnit(report.Parameter)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reporte"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", domain.ErrInternal.WithError(err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", domain.ErrInternal.WithError(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", domain.ErrInternal.WithError(err)
	}

	f.SetCellValue(sheet, "A1", "Pozo")
	f.SetCellValue(sheet, "B1", report.WellName)
	f.SetCellValue(sheet, "A3", "Fecha")
	f.SetCellValue(sheet, "B3", fmt.Sprintf("%s (%s)", report.Parameter, unit))
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.SetCellStyle(sheet, "A3", "B3", headerStyle)
	f.SetColWidth(sheet, "A", "B", 22)

	row := 4
	for i, date := range report.Dates {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), report.Values[i])
		row++
	}

	row++
	for _, summary := range report.Summary {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), summary.Label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%.2f %s", summary.Value, summary.Unit))
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", domain.ErrInternal.WithError(err)
	}

	filename := fmt.Sprintf("reporte_%s_%s.xlsx", report.Parameter, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
