package services

import "github.com/rahulmehra21/campus_backend/utils"

// Fixed policy thresholds, not configurable per call.
const (
	AttendanceThreshold  = 75.0
	CourseworkThreshold  = 50.0
	AssessmentsThreshold = 40.0
)

const (
	DecisionEligible    = "Eligible"
	DecisionNotEligible = "NotEligible"
)

type EligibilitySignals struct {
	FeeCleared         bool
	AttendancePercent  float64
	CourseworkPercent  float64
	AssessmentsAverage float64
}

// AssessmentsCleared is true when the all-time marks average reaches the
// threshold; a student with no marks averages 0 and is not cleared.
func (s EligibilitySignals) AssessmentsCleared() bool {
	return s.AssessmentsAverage >= AssessmentsThreshold
}

// EligibilityDecision combines the four independent signals.
func EligibilityDecision(s EligibilitySignals) string {
	if s.FeeCleared &&
		s.AttendancePercent >= AttendanceThreshold &&
		s.CourseworkPercent >= CourseworkThreshold &&
		s.AssessmentsCleared() {
		return DecisionEligible
	}
	return DecisionNotEligible
}

// RatioPercent returns 100*part/total rounded to two decimals, or the
// neutral 100.0 when there is no data to judge against.
func RatioPercent(part, total int64) float64 {
	if total <= 0 {
		return 100.0
	}
	return utils.Round2(float64(part) / float64(total) * 100.0)
}
