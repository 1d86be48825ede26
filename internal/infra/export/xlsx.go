package export

import (
	"fmt"
	"strings"

	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Reservations"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout  = "2006-01-02"
)

var headers = []string{
	"Client", "Rooms", "Channel", "Start", "End", "Status",
	"Total", "Balance", "Occupancy", "Missing items",
}

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes one row per reservation below a bold header row. Amounts are
// rendered in currency units.
func (e *XLSXExporter) Export(rows []*queries.ReservationView) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errs.Wrap(err, "failed to drop default sheet")
	}

	if err := writeHeader(f); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errs.Wrap(err, "failed to resolve cell")
		}
		values := []any{
			r.ClientName,
			strings.Join(r.RoomNumbers, ", "),
			r.Channel,
			r.StartDate.Format(dateLayout),
			r.EndDate.Format(dateLayout),
			r.Status,
			cents(r.TotalCents),
			cents(r.BalanceCents),
			r.Occupancy,
			yesNo(r.Missing),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, errs.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 24); err != nil {
		return nil, errs.Wrap(err, "failed to size columns")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errs.Wrap(err, "failed to render workbook")
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return errs.Wrap(err, "failed to create header style")
	}

	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &row); err != nil {
		return errs.Wrap(err, "failed to write header")
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return errs.Wrap(err, "failed to resolve header range")
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return errs.Wrap(err, "failed to style header")
	}
	return nil
}

func cents(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
