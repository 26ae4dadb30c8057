package services

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/rahulmehra21/campus_backend/utils"
)

const PassPercentThreshold = 40.0

const (
	ResultPass = "Pass"
	ResultFail = "Fail"
)

// BuiltinRuleConfig is the last-resort weighting when neither a course rule
// nor a global default rule exists.
func BuiltinRuleConfig() map[string]float64 {
	return map[string]float64{"mid": 25, "final": 75}
}

// ParseRuleConfig decodes a stored rule JSON into component weights,
// keeping numeric values only. Returns nil when nothing usable is found so
// the caller can cascade to the next fallback.
func ParseRuleConfig(raw string) map[string]float64 {
	var generic map[string]any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return nil
	}
	cfg := make(map[string]float64, len(generic))
	for key, val := range generic {
		if weight, ok := val.(float64); ok {
			cfg[key] = weight
		}
	}
	if len(cfg) == 0 {
		return nil
	}
	return cfg
}

// ExamRecord is one historical mark for a student in a subject, tagged with
// the exam's display name and maximum.
type ExamRecord struct {
	ExamName string
	Obtained float64
	MaxMarks float64
}

type SubjectBreakdown struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	SubjectName   string    `json:"subject_name"`
	ScoreWeighted float64   `json:"score_weighted"`
	MaxWeighted   float64   `json:"max_weighted"`
}

type Marksheet struct {
	Subjects      []SubjectBreakdown `json:"subjects"`
	TotalObtained float64            `json:"total_obtained"`
	TotalMax      float64            `json:"total_max"`
}

// ComponentKeyForExam maps an exam display name onto a configured component
// key by substring match, first match winning in a fixed order: mid, then
// final/end, then internal, then any configured key, then "other".
// Configured keys are tried in sorted order so the result is deterministic.
func ComponentKeyForExam(examName string, cfg map[string]float64) string {
	name := strings.ToLower(examName)
	switch {
	case strings.Contains(name, "mid"):
		return "mid"
	case strings.Contains(name, "final"), strings.Contains(name, "end"):
		return "final"
	case strings.Contains(name, "internal"):
		return "internal"
	}

	keys := make([]string, 0, len(cfg))
	for key := range cfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(name, strings.ToLower(key)) {
			return key
		}
	}
	return "other"
}

type componentAgg struct {
	obtained float64
	max      float64
}

// WeightSubject buckets a subject's exam records into the configured
// components, aggregates obtained and maximum marks per bucket, and applies
// the percent weights. A component with no data still adds its weight to the
// maximum and contributes nothing to the score.
func WeightSubject(cfg map[string]float64, records []ExamRecord) (score, max float64) {
	agg := make(map[string]*componentAgg)
	for _, rec := range records {
		key := ComponentKeyForExam(rec.ExamName, cfg)
		bucket, ok := agg[key]
		if !ok {
			bucket = &componentAgg{}
			agg[key] = bucket
		}
		bucket.obtained += rec.Obtained
		bucket.max += rec.MaxMarks
	}

	for key, weight := range cfg {
		if bucket, ok := agg[key]; ok && bucket.max > 0 {
			score += weight * (bucket.obtained / bucket.max)
		}
		max += weight
	}
	return utils.Round2(score), utils.Round2(max)
}

// MarksheetVerdict is Pass when the overall percentage reaches the pass
// line; an empty marksheet (zero maximum) fails.
func MarksheetVerdict(totalObtained, totalMax float64) string {
	if totalMax > 0 && totalObtained/totalMax*100 >= PassPercentThreshold {
		return ResultPass
	}
	return ResultFail
}
