package profile

import (
	"math"
	"testing"
)

func TestParseDurationMonths(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		expected  float64
		tolerance float64
	}{
		{name: "years_and_months", input: "1 yr 6 mos", expected: 18, tolerance: 0},
		{name: "months_only", input: "9 mos", expected: 9, tolerance: 0},
		{name: "long_form", input: "2 years 3 months", expected: 27, tolerance: 0},
		{name: "bare_year", input: "3 yrs", expected: 36, tolerance: 0},
		{name: "date_range", input: "Jan 2020 - Jan 2022", expected: 24, tolerance: 1.2},
		{name: "date_range_en_dash", input: "Mar 2019 – Sep 2019", expected: 6, tolerance: 0.6},
		{name: "date_range_full_month_names", input: "October 2020 - June 2021", expected: 8, tolerance: 0.8},
		{name: "date_range_worded_separator", input: "October 2019 to October 2021", expected: 24, tolerance: 1.2},
		{name: "unparseable", input: "a while", expected: 0, tolerance: 0},
		{name: "empty", input: "", expected: 0, tolerance: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDurationMonths(tc.input)
			if math.Abs(got-tc.expected) > tc.tolerance {
				t.Fatalf("parseDurationMonths(%q) = %v, expected %v (±%v)", tc.input, got, tc.expected, tc.tolerance)
			}
		})
	}
}

func TestParseDurationMonthsPresentRange(t *testing.T) {
	got := parseDurationMonths("Jan 2020 - Present")
	if got <= 12 {
		t.Fatalf("expected an open range since Jan 2020 to exceed a year, got %v months", got)
	}
}

func TestTotalExperienceYears(t *testing.T) {
	cases := []struct {
		name       string
		experience []Experience
		expected   float64
	}{
		{
			name: "sums_across_entries",
			experience: []Experience{
				{Duration: "1 yr 6 mos"},
				{Duration: "2 yrs"},
			},
			expected: 3.5,
		},
		{
			name:       "single_partial_year",
			experience: []Experience{{Duration: "9 mos"}},
			expected:   0.8,
		},
		{
			name:       "unparseable_contributes_zero",
			experience: []Experience{{Duration: "unknown"}, {Duration: "1 yr"}},
			expected:   1.0,
		},
		{
			name:       "empty",
			experience: nil,
			expected:   0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := totalExperienceYears(tc.experience)
			if got != tc.expected {
				t.Fatalf("totalExperienceYears = %v, expected %v", got, tc.expected)
			}
		})
	}
}
