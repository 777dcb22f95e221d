package service

import (
	"context"
	"fmt"

	"github.com/synchomes/synchomes-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

const exportTimeLayout = "2006-01-02 15:04"

// ExportService builds spreadsheet downloads of collected leads.
type ExportService struct {
	contacts    repository.ContactRepository
	subscribers repository.SubscriberRepository
}

func NewExportService(contacts repository.ContactRepository, subscribers repository.SubscriberRepository) *ExportService {
	return &ExportService{contacts: contacts, subscribers: subscribers}
}

// ContactsWorkbook returns every contact as a single-sheet workbook.
func (s *ExportService) ContactsWorkbook(ctx context.Context) (*excelize.File, error) {
	contacts, err := s.contacts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	rows := make([][]any, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []any{c.Name, c.Email, c.Phone, c.City, c.CreatedAt.Format(exportTimeLayout)})
	}
	return buildWorkbook("Contacts",
		[]string{"Name", "Email", "Phone", "City", "Submitted"},
		[]float64{24, 32, 18, 20, 18},
		rows,
	)
}

// SubscribersWorkbook returns every newsletter subscriber as a workbook.
func (s *ExportService) SubscribersWorkbook(ctx context.Context) (*excelize.File, error) {
	subscribers, err := s.subscribers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	rows := make([][]any, 0, len(subscribers))
	for _, sub := range subscribers {
		rows = append(rows, []any{sub.Email, sub.CreatedAt.Format(exportTimeLayout)})
	}
	return buildWorkbook("Subscribers",
		[]string{"Email", "Subscribed"},
		[]float64{36, 18},
		rows,
	)
}

func buildWorkbook(sheet string, headers []string, widths []float64, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename the default sheet rather than leaving an empty "Sheet1" behind.
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
