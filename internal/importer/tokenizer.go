package importer

import "strings"

// Parse splits raw CSV text into a header row and data rows.
//
// Lines are separated by \n or \r\n; blank lines are dropped wherever
// they appear. The first non-blank line is the header row. Within a
// line, commas split fields except inside a double-quoted span, where
// a doubled quote is an escaped literal quote. An unterminated quote
// is closed implicitly at end of line rather than reported as an
// error. Fields are trimmed of surrounding whitespace after
// unquoting. Empty input yields empty headers and rows.
func Parse(text string) (headers []string, rows [][]string) {
	var records [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, splitFields(line))
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], records[1:]
}

func splitFields(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"' && inQuotes:
			if i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
				continue
			}
			inQuotes = false
		case ch == '"':
			inQuotes = true
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}
