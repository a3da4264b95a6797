package dto

import (
	"strings"

	"github.com/spec-kit/shift-service/internal/importer"
)

// ImportPreviewResponse describes a parsed upload awaiting commit.
type ImportPreviewResponse struct {
	SessionID     string            `json:"session_id"`
	FileName      string            `json:"file_name,omitempty"`
	Headers       []string          `json:"headers"`
	Mapping       map[string]string `json:"mapping"`
	NeedsMapping  bool              `json:"needs_mapping"`
	MissingFields []string          `json:"missing_fields,omitempty"`
	RowCount      int               `json:"row_count"`
}

// NewImportPreviewResponse maps a session.
func NewImportPreviewResponse(session *importer.Session) ImportPreviewResponse {
	mapping := make(map[string]string, len(session.Mapping))
	for header, field := range session.Mapping {
		mapping[header] = string(field)
	}
	var missing []string
	for _, field := range session.Mapping.Missing() {
		missing = append(missing, string(field))
	}
	return ImportPreviewResponse{
		SessionID:     session.ID,
		FileName:      session.FileName,
		Headers:       session.Headers,
		Mapping:       mapping,
		NeedsMapping:  session.NeedsMapping(),
		MissingFields: missing,
		RowCount:      len(session.Rows),
	}
}

// ImportCommitRequest optionally replaces the auto-detected mapping.
type ImportCommitRequest struct {
	Mapping map[string]string `json:"mapping,omitempty"`
}

// ColumnMapping converts the wire mapping into the pipeline type.
func (r ImportCommitRequest) ColumnMapping() importer.ColumnMapping {
	if r.Mapping == nil {
		return nil
	}
	mapping := make(importer.ColumnMapping, len(r.Mapping))
	for header, field := range r.Mapping {
		mapping[header] = importer.LogicalField(field)
	}
	return mapping
}

// ImportShiftRequest is one row of a direct JSON import.
type ImportShiftRequest struct {
	Email      string `json:"email"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// DirectImportRequest is the transport shape of a JSON batch.
type DirectImportRequest struct {
	Shifts []ImportShiftRequest `json:"shifts"`
}

// Candidates converts the request into pipeline candidates.
func (r DirectImportRequest) Candidates() []importer.Candidate {
	candidates := make([]importer.Candidate, 0, len(r.Shifts))
	for _, shift := range r.Shifts {
		candidates = append(candidates, importer.Candidate{
			Email:      shift.Email,
			Date:       shift.Date,
			StartTime:  shift.StartTime,
			EndTime:    shift.EndTime,
			Role:       shift.Role,
			Department: shift.Department,
		})
	}
	return candidates
}

// ImportRowError is one rejected row in the aggregate result.
type ImportRowError struct {
	Row    int    `json:"row"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// ImportResultResponse is the aggregate outcome of a batch.
type ImportResultResponse struct {
	Created int              `json:"created"`
	Total   int              `json:"total"`
	Errors  []ImportRowError `json:"errors"`
}

// NewImportResultResponse maps the pipeline result; outcomes stay in
// original row order.
func NewImportResultResponse(result *importer.Result) ImportResultResponse {
	response := ImportResultResponse{
		Created: result.Created,
		Total:   result.Total,
		Errors:  []ImportRowError{},
	}
	for _, outcome := range result.Outcomes {
		if outcome.Created {
			continue
		}
		response.Errors = append(response.Errors, ImportRowError{
			Row:    outcome.Row,
			Email:  outcome.Email,
			Reason: strings.Join(outcome.Reasons, "; "),
		})
	}
	return response
}
