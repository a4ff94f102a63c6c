// Package export encodes cast export rows as JSON, CSV or Excel workbooks.
// The HTTP export endpoint and `castctl export` share these encoders so both
// produce byte-identical files for the same rows.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/arisa-app/castdir/internal/domain"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a user-supplied format name to a Format. The empty string
// selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("export: unknown format %q (want json, csv or xlsx)", s)
	}
}

// Filename is the download name for an export in the given format.
func Filename(f Format) string {
	return "casts." + string(f)
}

// SheetName is the single worksheet of an xlsx export.
const SheetName = "Casts"

// Header lists the column names written as the first row of CSV and xlsx exports.
var Header = []string{
	"cast_id", "name", "sns_link", "store_link",
	"area", "area_label", "service_type", "service_type_label",
	"budget_range", "budget_range_label", "is_active", "created_at", "updated_at",
}

// Record encodes a row as a flat string slice in Header order.
func Record(r domain.ExportRow) []string {
	return []string{
		r.CastID,
		r.Name,
		r.SNSLink,
		r.StoreLink,
		r.Area,
		r.AreaLabel,
		r.ServiceType,
		r.ServiceTypeLabel,
		r.BudgetRange,
		r.BudgetRangeLabel,
		strconv.FormatBool(r.IsActive),
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// WriteCSV writes the header and one record per row to w.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return fmt.Errorf("export.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

// CSV returns the CSV encoding of rows.
func CSV(rows []domain.ExportRow) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return &buf, nil
}

// XLSX returns an Excel workbook with a single sheet holding the header and
// one row per cast.
func XLSX(rows []domain.ExportRow) (*bytes.Buffer, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}

	header := Header
	if err := xl.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
		record := Record(r)
		if err := xl.SetSheetRow(SheetName, cell, &record); err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	return buf, nil
}

// jsonRow is the JSON shape of an export row, matching the API's ExportRow schema.
type jsonRow struct {
	CastID           string    `json:"castId"`
	Name             string    `json:"name"`
	SNSLink          string    `json:"snsLink"`
	StoreLink        string    `json:"storeLink,omitempty"`
	Area             string    `json:"area"`
	AreaLabel        string    `json:"areaLabel"`
	ServiceType      string    `json:"serviceType"`
	ServiceTypeLabel string    `json:"serviceTypeLabel"`
	BudgetRange      string    `json:"budgetRange"`
	BudgetRangeLabel string    `json:"budgetRangeLabel"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// WriteJSON writes rows as an indented JSON array. No rows encode as [].
func WriteJSON(w io.Writer, rows []domain.ExportRow) error {
	out := make([]jsonRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, jsonRow(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export.WriteJSON: %w", err)
	}
	return nil
}

// Write encodes rows to w in format f.
func Write(w io.Writer, f Format, rows []domain.ExportRow) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatXLSX:
		buf, err := XLSX(rows)
		if err != nil {
			return err
		}
		_, err = buf.WriteTo(w)
		return err
	case FormatJSON:
		return WriteJSON(w, rows)
	default:
		return fmt.Errorf("export.Write: unknown format %q", f)
	}
}
