package handler

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/export"
	"github.com/arisa-app/castdir/internal/handler/gen"
)

// ExportCasts handles GET /api/casts/export.
// ?format=csv and ?format=xlsx return file downloads; the default is JSON.
// Inactive casts are included only for ?includeInactive=true.
func (s *Server) ExportCasts(ctx context.Context, req gen.ExportCastsRequestObject) (gen.ExportCastsResponseObject, error) {
	rows, err := s.export.Export(ctx, isTrue(req.Params.IncludeInactive))
	if err != nil {
		return nil, err
	}

	// Unknown formats fall back to JSON.
	format := export.FormatJSON
	if req.Params.Format != nil {
		if f, err := export.ParseFormat(string(*req.Params.Format)); err == nil {
			format = f
		}
	}
	headers := gen.ExportCasts200ResponseHeaders{
		ContentDisposition: fmt.Sprintf(`attachment; filename="%s"`, export.Filename(format)),
	}

	switch format {
	case export.FormatCSV:
		buf, err := export.CSV(rows)
		if err != nil {
			return nil, err
		}
		return gen.ExportCasts200TextcsvResponse{Body: buf, Headers: headers, ContentLength: int64(buf.Len())}, nil
	case export.FormatXLSX:
		buf, err := export.XLSX(rows)
		if err != nil {
			return nil, err
		}
		return gen.ExportCasts200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse{
			Body:          buf,
			Headers:       headers,
			ContentLength: int64(buf.Len()),
		}, nil
	default:
		out := make([]gen.ExportRow, 0, len(rows))
		for _, r := range rows {
			out = append(out, rowToResponse(r))
		}
		return gen.ExportCasts200JSONResponse{Body: out, Headers: headers}, nil
	}
}

// rowToResponse maps a domain.ExportRow to the generated gen.ExportRow type.
// An empty store link becomes a nil pointer (omitted in JSON).
func rowToResponse(r domain.ExportRow) gen.ExportRow {
	id, _ := uuid.Parse(r.CastID)
	row := gen.ExportRow{
		CastId:           id,
		Name:             r.Name,
		SnsLink:          r.SNSLink,
		Area:             r.Area,
		AreaLabel:        r.AreaLabel,
		ServiceType:      r.ServiceType,
		ServiceTypeLabel: r.ServiceTypeLabel,
		BudgetRange:      r.BudgetRange,
		BudgetRangeLabel: r.BudgetRangeLabel,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.StoreLink != "" {
		row.StoreLink = &r.StoreLink
	}
	return row
}
