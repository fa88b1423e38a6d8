package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/store"
)

// ExportService renders the active month's grid as an XLSX workbook, one
// column per calendar day and one row per employee, with the catalog on a
// legend sheet. Workbooks are built per request and streamed, never stored.
type ExportService interface {
	ScheduleWorkbook(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	schedule store.ScheduleStore
	catalog  store.CatalogStore
}

func NewExportService(schedule store.ScheduleStore, catalog store.CatalogStore) ExportService {
	return &exportService{schedule: schedule, catalog: catalog}
}

var weekdayLabels = map[int]string{
	0: "Dom", 1: "Seg", 2: "Ter", 3: "Qua", 4: "Qui", 5: "Sex", 6: "Sáb",
}

func (s *exportService) ScheduleWorkbook(ctx context.Context) (*bytes.Buffer, string, error) {
	month, year, err := s.schedule.ActiveMonth(ctx)
	if err != nil {
		return nil, "", err
	}
	rows, err := s.schedule.Grid(ctx)
	if err != nil {
		return nil, "", err
	}
	codes, err := s.catalog.All(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Escala"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Escala %02d/%d", int(month), year))
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	}

	dates := domain.MonthDates(month, year)

	f.SetCellValue(sheet, "A3", "Colaborador")
	for i, date := range dates {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return nil, "", err
		}
		f.SetCellValue(sheet, col+"2", weekdayLabels[int(date.Weekday())])
		f.SetCellValue(sheet, col+"3", date.Day)
		f.SetColWidth(sheet, col, col, 5)
	}
	f.SetColWidth(sheet, "A", "A", 22)

	lastCol, err := excelize.ColumnNumberToName(len(dates) + 1)
	if err != nil {
		return nil, "", err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
		Border: []excelize.Border{
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A2", lastCol+"3", headerStyle)
	}

	for r, row := range rows {
		excelRow := r + 4
		f.SetCellValue(sheet, fmt.Sprintf("A%d", excelRow), row.EmployeeName)
		for i, date := range dates {
			code, ok := row.Days[date]
			if !ok {
				continue
			}
			col, err := excelize.ColumnNumberToName(i + 2)
			if err != nil {
				return nil, "", err
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, excelRow), code)
		}
	}

	const legend = "Legenda"
	if _, err := f.NewSheet(legend); err != nil {
		return nil, "", err
	}
	f.SetCellValue(legend, "A1", "Código")
	f.SetCellValue(legend, "B1", "Descrição")
	f.SetCellValue(legend, "C1", "Início")
	f.SetCellValue(legend, "D1", "Fim")
	for i, code := range codes {
		excelRow := i + 2
		f.SetCellValue(legend, fmt.Sprintf("A%d", excelRow), code.Code)
		f.SetCellValue(legend, fmt.Sprintf("B%d", excelRow), code.Name)
		if code.StartTime != nil {
			f.SetCellValue(legend, fmt.Sprintf("C%d", excelRow), *code.StartTime)
		}
		if code.EndTime != nil {
			f.SetCellValue(legend, fmt.Sprintf("D%d", excelRow), *code.EndTime)
		}
	}
	f.SetColWidth(legend, "B", "B", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("escala_%d-%02d.xlsx", year, int(month))
	return buf, filename, nil
}
