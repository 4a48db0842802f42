// Package export renders a user's expenses as downloadable spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"smartguider/internal/finance"
	"smartguider/internal/models"
)

// Content types for the supported formats.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

const (
	expenseSheet  = "Expenses"
	categorySheet = "Categories"
	dateLayout    = "2006-01-02"
)

var expenseHeaders = []string{"Date", "Category", "Type", "Amount", "Description", "Emoji"}

// Filename returns the attachment name for an export taken at now.
func Filename(now time.Time, ext string) string {
	return fmt.Sprintf("expenses_%s.%s", now.Format("20060102"), ext)
}

func localDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dateLayout)
}

// WriteXLSX writes a workbook with one row per expense and a second sheet
// of category totals.
func WriteXLSX(w io.Writer, expenses []models.Expense, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expenseSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(expenseSheet, "A1", &expenseHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{localDate(e.Date, loc), e.Category, string(e.Type), e.Amount, e.Description, e.Emoji}
		if err := f.SetSheetRow(expenseSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	f.SetColWidth(expenseSheet, "A", "A", 12)
	f.SetColWidth(expenseSheet, "B", "C", 15)
	f.SetColWidth(expenseSheet, "D", "D", 12)
	f.SetColWidth(expenseSheet, "E", "E", 36)

	if _, err := f.NewSheet(categorySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	header := []interface{}{"Category", "Total"}
	if err := f.SetSheetRow(categorySheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, c := range finance.CategoryBreakdown(expenses) {
		row := []interface{}{c.Category, c.Total}
		if err := f.SetSheetRow(categorySheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("write total: %w", err)
		}
	}
	f.SetColWidth(categorySheet, "A", "B", 15)

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the expenses as UTF-8 CSV with a BOM so spreadsheet
// tools pick the right encoding.
func WriteCSV(w io.Writer, expenses []models.Expense, loc *time.Location) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(expenseHeaders); err != nil {
		return err
	}
	for _, e := range expenses {
		record := []string{
			localDate(e.Date, loc),
			e.Category,
			string(e.Type),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Description,
			e.Emoji,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
