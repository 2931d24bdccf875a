package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/commhealth/screening-record-service/internal/person/model"
	"github.com/commhealth/screening-record-service/internal/system/constants"
	errors2 "github.com/commhealth/screening-record-service/internal/system/errors"
	"github.com/xuri/excelize/v2"
)

// ExportHeader is the column set of the exported spreadsheet. Birth appears
// both raw and split into year/month/day columns.
var ExportHeader = []string{
	"ID Number",
	"Name",
	"Birth",
	"Birth Year",
	"Birth Month",
	"Birth Day",
	"Education",
	"Phone",
	"Address",
	"Date Updated",
	"Health Check",
	"BC",
	"Pap Smear",
	"HPV",
	"Colon Screen",
	"Oral Screen",
	"ICP",
	"Gastric Cancer",
}

var exportColumnWidths = []float64{
	15, // ID Number
	10, // Name
	12, // Birth
	10, // Birth Year
	10, // Birth Month
	10, // Birth Day
	10, // Education
	15, // Phone
	30, // Address
	12, // Date Updated
	8,  // Health Check
	8,  // BC
	8,  // Pap Smear
	8,  // HPV
	8,  // Colon Screen
	8,  // Oral Screen
	8,  // ICP
	8,  // Gastric Cancer
}

// ExportStoreInterface is the store surface the export service depends on.
type ExportStoreInterface interface {
	FindByDateUpdated(ctx context.Context, date string) ([]model.Person, error)
}

// ExportService renders filtered person records as an xlsx workbook. The
// workbook is built in memory per request; there is no shared temporary file,
// so concurrent exports cannot interfere with each other.
type ExportService struct {
	store ExportStoreInterface
}

// NewExportService creates a new export service.
func NewExportService(store ExportStoreInterface) *ExportService {
	return &ExportService{
		store: store,
	}
}

// ExportRecords fetches the records matching the date filter (all records
// when date is empty) and renders them as a spreadsheet. The returned count
// is the number of matched records; a zero count means nothing to export and
// the data slice is nil.
func (s *ExportService) ExportRecords(ctx context.Context, date string) ([]byte, int, error) {
	persons, err := s.store.FindByDateUpdated(ctx, date)
	if err != nil {
		return nil, 0, errors2.NewServerError(errors2.FETCH_EXPORT_RECORDS, err)
	}
	if len(persons) == 0 {
		return nil, 0, nil
	}

	data, err := buildWorkbook(persons)
	if err != nil {
		return nil, 0, errors2.NewServerError(errors2.RENDER_EXPORT, err)
	}
	return data, len(persons), nil
}

// buildWorkbook writes one row per record under a styled, frozen header row
// and returns the workbook bytes.
func buildWorkbook(persons []model.Person) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := constants.ExportSheetName
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range ExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i := range ExportHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, exportColumnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, person := range persons {
		row := rowIdx + 2
		birthYear, birthMonth, birthDay := SplitBirth(person.Birth)
		values := []interface{}{
			person.IDNumber,
			person.Name,
			person.Birth,
			birthYear,
			birthMonth,
			birthDay,
			person.Education,
			person.Phone,
			person.Address,
			person.DateUpdated,
			person.Items.HealthCheck,
			person.Items.BC,
			person.Items.PapSmear,
			person.Items.HPV,
			person.Items.ColonScreen,
			person.Items.OralScreen,
			person.Items.ICP,
			person.Items.GastricCancer,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// SplitBirth splits a packed 6-character birth token into its two-character
// year, month and day segments. Any other length yields blank segments; the
// raw birth value is rendered unchanged in its own column either way.
func SplitBirth(birth string) (year, month, day string) {
	if len(birth) != 6 {
		return "", "", ""
	}
	return birth[0:2], birth[2:4], birth[4:6]
}
