package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "destination", "trip_starts_at", "trip_ends_at", "trip_is_confirmed",
	"day", "date", "activity_title", "occurs_at",
}

// ExportItinerary implements GET /trips/{tripId}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportItinerary(ctx context.Context, req gen.ExportItineraryRequestObject) (gen.ExportItineraryResponseObject, error) {
	rows, err := s.export.Itinerary(ctx, req.TripId)
	if err != nil {
		if isNotFound(err) {
			return gen.ExportItinerary404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}

	if req.Params.Format != nil && *req.Params.Format == gen.Csv {
		return buildCSVResponse(rows), nil
	}
	return buildJSONResponse(rows), nil
}

func buildJSONResponse(rows []domain.ItineraryRow) gen.ExportItinerary200JSONResponse {
	out := make(gen.ExportItinerary200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return out
}

// buildCSVResponse encodes rows as CSV and wraps them in the streaming response type.
func buildCSVResponse(rows []domain.ItineraryRow) gen.ExportItinerary200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.ExportItinerary200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// domainRowToGenRow maps a domain.ItineraryRow to the generated type.
// Activity fields of an activity-less row become nil (omitted in JSON).
func domainRowToGenRow(r domain.ItineraryRow) gen.ItineraryRow {
	tripID, _ := uuid.Parse(r.TripID)
	row := gen.ItineraryRow{
		TripId:          tripID,
		Destination:     r.Destination,
		TripStartsAt:    r.TripStartsAt,
		TripEndsAt:      r.TripEndsAt,
		TripIsConfirmed: r.TripIsConfirmed,
		OccursAt:        r.OccursAt,
	}
	if r.Day > 0 {
		day := r.Day
		row.Day = &day
	}
	if r.Date != "" {
		if t, err := time.Parse(time.DateOnly, r.Date); err == nil {
			row.Date = &openapi_types.Date{Time: t}
		}
	}
	if r.ActivityTitle != "" {
		title := r.ActivityTitle
		row.ActivityTitle = &title
	}
	return row
}

// domainRowToCSVRecord encodes a row as a flat string slice.
// Zero activity fields are encoded as empty strings.
func domainRowToCSVRecord(r domain.ItineraryRow) []string {
	day := ""
	if r.Day > 0 {
		day = strconv.Itoa(r.Day)
	}
	return []string{
		r.TripID,
		r.Destination,
		r.TripStartsAt.UTC().Format(time.RFC3339),
		r.TripEndsAt.UTC().Format(time.RFC3339),
		strconv.FormatBool(r.TripIsConfirmed),
		day,
		r.Date,
		r.ActivityTitle,
		formatOptionalTime(r.OccursAt),
	}
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
