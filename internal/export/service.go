package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/dramhound/dramhound/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// menu exports.
type Service struct {
	bars     repository.BarRepository
	listings repository.ListingRepository
	logger   *slog.Logger
}

func NewService(bars repository.BarRepository, listings repository.ListingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bars: bars, listings: listings, logger: logger}
}

// ExportMenuXLSX returns an XLSX workbook (as bytes) holding the bar's
// current whiskey menu, one row per listing, ordered by whiskey name.
func (s *Service) ExportMenuXLSX(ctx context.Context, barID uuid.UUID) ([]byte, error) {
	start := time.Now()

	bar, err := s.bars.GetByID(ctx, barID)
	if err != nil {
		return nil, err
	}

	items, err := s.listings.ListMenu(ctx, barID)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Menu"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop excelize's default sheet so Menu is the only one
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Whiskey",
		"Distillery",
		"Spirit Type",
		"Age",
		"ABV",
		"Price",
		"Pour Size",
		"Available",
		"Notes",
		"Last Verified",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, item := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, item.WhiskeyName)
		if item.Distillery != nil {
			write(2, *item.Distillery)
		}
		write(3, item.SpiritType)
		if item.AgeYears != nil {
			write(4, *item.AgeYears)
		}
		if item.ABV != nil {
			write(5, *item.ABV)
		}
		if item.Price != nil {
			write(6, *item.Price)
		}
		if item.PourSize != nil {
			write(7, *item.PourSize)
		}
		if item.Available {
			write(8, "yes")
		} else {
			write(8, "no")
		}
		if item.Notes != nil {
			write(9, truncate(*item.Notes, 140))
		}
		if !item.LastVerified.IsZero() {
			write(10, item.LastVerified.UTC().Format("2006-01-02"))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // whiskey
	_ = f.SetColWidth(sheet, "B", "B", 24) // distillery
	_ = f.SetColWidth(sheet, "C", "C", 14) // spirit
	_ = f.SetColWidth(sheet, "D", "G", 10) // age/abv/price/pour
	_ = f.SetColWidth(sheet, "I", "I", 48) // notes
	_ = f.SetColWidth(sheet, "J", "J", 14) // verified

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"bar_id", barID.String(),
		"bar", bar.Name,
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
