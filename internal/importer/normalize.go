package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	slashDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dashDatePattern  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)

	clockPattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	twelveHPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
)

// NormalizeDate converts a raw date string into canonical YYYY-MM-DD.
//
// Accepted forms: YYYY-MM-DD, M/D/YYYY, MM/DD/YYYY, M-D-YYYY and
// MM-DD-YYYY, always month-day-year; day-month-year input is rejected
// as ambiguous. The result is zero-padded and checked for calendar
// validity (2024-02-30 is rejected). The function is total: every
// input returns either a canonical string or ok=false, never a panic.
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	var year, month, day int
	switch {
	case isoDatePattern.MatchString(raw):
		parts := isoDatePattern.FindStringSubmatch(raw)
		year, _ = strconv.Atoi(parts[1])
		month, _ = strconv.Atoi(parts[2])
		day, _ = strconv.Atoi(parts[3])
	case slashDatePattern.MatchString(raw):
		parts := slashDatePattern.FindStringSubmatch(raw)
		month, _ = strconv.Atoi(parts[1])
		day, _ = strconv.Atoi(parts[2])
		year, _ = strconv.Atoi(parts[3])
	case dashDatePattern.MatchString(raw):
		parts := dashDatePattern.FindStringSubmatch(raw)
		month, _ = strconv.Atoi(parts[1])
		day, _ = strconv.Atoi(parts[2])
		year, _ = strconv.Atoi(parts[3])
	default:
		return "", false
	}

	if !isCalendarDate(year, month, day) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// NormalizeTime converts a raw time string into canonical 24-hour
// HH:MM.
//
// Accepted forms: HH:MM, H:MM, HH:MM:SS (seconds truncated), and
// 12-hour H:MM AM/PM in any case (12 AM becomes 00, 12 PM stays 12).
// Total like NormalizeDate.
func NormalizeTime(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	if parts := twelveHPattern.FindStringSubmatch(raw); parts != nil {
		hour, _ := strconv.Atoi(parts[1])
		minute, _ := strconv.Atoi(parts[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return "", false
		}
		if strings.EqualFold(parts[3], "AM") {
			if hour == 12 {
				hour = 0
			}
		} else if hour != 12 {
			hour += 12
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	if parts := clockPattern.FindStringSubmatch(raw); parts != nil {
		hour, _ := strconv.Atoi(parts[1])
		minute, _ := strconv.Atoi(parts[2])
		if hour > 23 || minute > 59 {
			return "", false
		}
		if parts[3] != "" {
			if seconds, _ := strconv.Atoi(parts[3]); seconds > 59 {
				return "", false
			}
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	return "", false
}

// isCalendarDate rejects dates time.Date would silently roll over,
// like February 30th.
func isCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
