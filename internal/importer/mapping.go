package importer

import "strings"

// LogicalField is one of the fixed canonical shift attributes a source
// column can map to.
type LogicalField string

const (
	FieldEmail      LogicalField = "email"
	FieldDate       LogicalField = "date"
	FieldStartTime  LogicalField = "start_time"
	FieldEndTime    LogicalField = "end_time"
	FieldRole       LogicalField = "role"
	FieldDepartment LogicalField = "department"

	// FieldUnmapped marks a source column that matched no synonym.
	FieldUnmapped LogicalField = ""
)

// RequiredFields lists every logical field an import needs mapped.
var RequiredFields = []LogicalField{
	FieldEmail,
	FieldDate,
	FieldStartTime,
	FieldEndTime,
	FieldRole,
	FieldDepartment,
}

// headerSynonyms maps normalized source header names to logical
// fields. Matching is exact after normalization; no fuzzy matching.
var headerSynonyms = map[string]LogicalField{
	"email":          FieldEmail,
	"e mail":         FieldEmail,
	"email address":  FieldEmail,
	"mail":           FieldEmail,
	"employee email": FieldEmail,
	"staff email":    FieldEmail,
	"work email":     FieldEmail,

	"date":          FieldDate,
	"day":           FieldDate,
	"shift date":    FieldDate,
	"work date":     FieldDate,
	"schedule date": FieldDate,

	"start":       FieldStartTime,
	"start time":  FieldStartTime,
	"starttime":   FieldStartTime,
	"begin":       FieldStartTime,
	"shift start": FieldStartTime,
	"clock in":    FieldStartTime,
	"time in":     FieldStartTime,
	"from":        FieldStartTime,

	"end":       FieldEndTime,
	"end time":  FieldEndTime,
	"endtime":   FieldEndTime,
	"finish":    FieldEndTime,
	"shift end": FieldEndTime,
	"clock out": FieldEndTime,
	"time out":  FieldEndTime,
	"to":        FieldEndTime,

	"role":      FieldRole,
	"position":  FieldRole,
	"job":       FieldRole,
	"job title": FieldRole,
	"title":     FieldRole,

	"department": FieldDepartment,
	"dept":       FieldDepartment,
	"location":   FieldDepartment,
	"unit":       FieldDepartment,
	"team":       FieldDepartment,
	"division":   FieldDepartment,
	"area":       FieldDepartment,
}

// ColumnMapping maps source header names to logical fields. Headers
// that matched nothing map to FieldUnmapped.
type ColumnMapping map[string]LogicalField

// AutoMap builds a mapping for the given headers from the synonym
// table. A header is never forced into a field it was not recognized
// for.
func AutoMap(headers []string) ColumnMapping {
	mapping := make(ColumnMapping, len(headers))
	for _, header := range headers {
		mapping[header] = headerSynonyms[normalizeHeader(header)]
	}
	return mapping
}

// Complete reports whether every required logical field is the target
// of at least one header.
func (m ColumnMapping) Complete() bool {
	return len(m.Missing()) == 0
}

// Missing returns the required logical fields no header maps to, in
// RequiredFields order.
func (m ColumnMapping) Missing() []LogicalField {
	mapped := make(map[LogicalField]bool, len(m))
	for _, field := range m {
		mapped[field] = true
	}
	var missing []LogicalField
	for _, field := range RequiredFields {
		if !mapped[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

// ResolveRow projects one raw row through the mapping into a fixed
// field -> value record, so nothing downstream sees column positions.
// When two headers map to the same field the first occurrence wins.
func ResolveRow(headers []string, mapping ColumnMapping, row []string) map[LogicalField]string {
	fields := make(map[LogicalField]string, len(RequiredFields))
	for i, header := range headers {
		field := mapping[header]
		if field == FieldUnmapped || i >= len(row) {
			continue
		}
		if _, seen := fields[field]; seen {
			continue
		}
		fields[field] = row[i]
	}
	return fields
}

func normalizeHeader(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	header = strings.Trim(header, `"'`)
	header = strings.NewReplacer("_", " ", "-", " ").Replace(header)
	return strings.Join(strings.Fields(header), " ")
}
