package profile

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Average month length in days, used when converting date-range diffs.
const daysPerMonth = 30.44

var (
	yearsPattern  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:yrs?|years?)`)
	monthsPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:mos?|months?)`)
	// The word form needs surrounding whitespace so month names containing
	// "to" (October) are not split apart.
	rangeSplitter = regexp.MustCompile(`\s*(?:-|–|—)\s*|\s+to\s+`)
)

// parseDurationMonths extracts a month count from a free-form duration string
// such as "1 yr 6 mos", "9 months" or "Jan 2020 - Jan 2022". Unparseable
// input contributes zero.
func parseDurationMonths(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	months := 0.0
	if m := yearsPattern.FindStringSubmatch(s); m != nil {
		months += parseFloat(m[1]) * 12
	}
	if m := monthsPattern.FindStringSubmatch(s); m != nil {
		months += parseFloat(m[1])
	}
	if months > 0 {
		return months
	}

	return parseRangeMonths(s)
}

// parseRangeMonths handles "MMM YYYY - MMM YYYY" and "MMM YYYY - Present".
func parseRangeMonths(s string) float64 {
	parts := rangeSplitter.Split(s, 2)
	if len(parts) != 2 {
		return 0
	}
	start, ok := parseMonthYear(parts[0])
	if !ok {
		return 0
	}
	end := time.Now().UTC()
	if !isPresent(parts[1]) {
		parsed, ok := parseMonthYear(parts[1])
		if !ok {
			return 0
		}
		end = parsed
	}
	if !end.After(start) {
		return 0
	}
	days := end.Sub(start).Hours() / 24
	return days / daysPerMonth
}

func parseMonthYear(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range []string{"Jan 2006", "January 2006", "2006"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isPresent(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "now", "current", "today":
		return true
	}
	return false
}

func parseFloat(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

// totalExperienceYears sums duration strings across experiences and converts
// to years rounded to one decimal, floored at zero.
func totalExperienceYears(experience []Experience) float64 {
	months := 0.0
	for _, exp := range experience {
		months += parseDurationMonths(exp.Duration)
	}
	years := math.Round(months/12*10) / 10
	if years < 0 {
		return 0
	}
	return years
}
