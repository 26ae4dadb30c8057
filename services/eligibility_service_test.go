package services

import "testing"

func TestEligibilityDecision(t *testing.T) {
	tests := []struct {
		name    string
		signals EligibilitySignals
		want    string
	}{
		{
			name:    "all signals clear",
			signals: EligibilitySignals{FeeCleared: true, AttendancePercent: 90, CourseworkPercent: 80, AssessmentsAverage: 55},
			want:    DecisionEligible,
		},
		{
			name:    "fee pending blocks",
			signals: EligibilitySignals{FeeCleared: false, AttendancePercent: 90, CourseworkPercent: 80, AssessmentsAverage: 55},
			want:    DecisionNotEligible,
		},
		{
			name:    "attendance below threshold",
			signals: EligibilitySignals{FeeCleared: true, AttendancePercent: 74.99, CourseworkPercent: 80, AssessmentsAverage: 55},
			want:    DecisionNotEligible,
		},
		{
			name:    "attendance exactly at threshold",
			signals: EligibilitySignals{FeeCleared: true, AttendancePercent: 75, CourseworkPercent: 80, AssessmentsAverage: 55},
			want:    DecisionEligible,
		},
		{
			name:    "coursework below threshold",
			signals: EligibilitySignals{FeeCleared: true, AttendancePercent: 90, CourseworkPercent: 49.5, AssessmentsAverage: 55},
			want:    DecisionNotEligible,
		},
		{
			name:    "assessments average below threshold",
			signals: EligibilitySignals{FeeCleared: true, AttendancePercent: 90, CourseworkPercent: 80, AssessmentsAverage: 39.9},
			want:    DecisionNotEligible,
		},
		{
			name:    "no marks at all",
			signals: EligibilitySignals{FeeCleared: true, AttendancePercent: 100, CourseworkPercent: 100, AssessmentsAverage: 0},
			want:    DecisionNotEligible,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EligibilityDecision(tc.signals); got != tc.want {
				t.Errorf("EligibilityDecision(%+v) = %q, want %q", tc.signals, got, tc.want)
			}
		})
	}
}

func TestAssessmentsCleared(t *testing.T) {
	tests := []struct {
		avg  float64
		want bool
	}{
		{40, true},
		{39.99, false},
		{0, false},
		{100, true},
	}

	for _, tc := range tests {
		s := EligibilitySignals{AssessmentsAverage: tc.avg}
		if got := s.AssessmentsCleared(); got != tc.want {
			t.Errorf("AssessmentsCleared() with avg %v = %v, want %v", tc.avg, got, tc.want)
		}
	}
}

func TestRatioPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		total int64
		want  float64
	}{
		{"no data is neutral", 0, 0, 100.0},
		{"negative total is neutral", 5, -1, 100.0},
		{"full attendance", 30, 30, 100.0},
		{"zero present", 0, 30, 0.0},
		{"rounded to two decimals", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"over one hundred allowed", 6, 4, 150.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RatioPercent(tc.part, tc.total); got != tc.want {
				t.Errorf("RatioPercent(%d, %d) = %v, want %v", tc.part, tc.total, got, tc.want)
			}
		})
	}
}
