//go:build unit

package export

import (
	"bytes"
	"testing"
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	rows := []*queries.ReservationView{
		{
			ID:           uuid.New(),
			ClientName:   "Ana Torres",
			RoomNumbers:  []string{"101", "102"},
			Channel:      "booking",
			StartDate:    time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
			Status:       "paid",
			TotalCents:   45050,
			BalanceCents: 0,
			Occupancy:    "check-in",
			Missing:      true,
		},
	}

	out, err := NewXLSXExporter().Export(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, []string{
		"Ana Torres", "101, 102", "booking", "2026-07-01", "2026-07-04",
		"paid", "450.50", "0.00", "check-in", "yes",
	}, got[1])
}

func TestXLSXExporter_EmptyRange(t *testing.T) {
	out, err := NewXLSXExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCents(t *testing.T) {
	assert.Equal(t, "0.05", cents(5))
	assert.Equal(t, "12.00", cents(1200))
	assert.Equal(t, "-3.10", cents(-310))
}
