package services

import "testing"

func TestComponentKeyForExam(t *testing.T) {
	cfg := map[string]float64{"mid": 25, "final": 75, "internal": 25, "viva": 10}

	tests := []struct {
		name     string
		examName string
		want     string
	}{
		{"mid term", "Mid Term Examination", "mid"},
		{"final exam", "Final Examination", "final"},
		{"end semester maps to final", "End Semester Exam", "final"},
		{"internal assessment", "Internal Assessment 1", "internal"},
		{"configured key substring", "Viva Voce", "viva"},
		{"no match buckets to other", "Practical Lab", "other"},
		{"mid wins over final", "Mid Semester Final", "mid"},
		{"case insensitive", "MID-TERM II", "mid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComponentKeyForExam(tc.examName, cfg); got != tc.want {
				t.Errorf("ComponentKeyForExam(%q) = %q, want %q", tc.examName, got, tc.want)
			}
		})
	}
}

func TestWeightSubject(t *testing.T) {
	cfg := map[string]float64{"mid": 25, "final": 75}

	tests := []struct {
		name      string
		records   []ExamRecord
		wantScore float64
		wantMax   float64
	}{
		{
			name: "both components present",
			records: []ExamRecord{
				{ExamName: "Mid Term", Obtained: 20, MaxMarks: 25},
				{ExamName: "Final Exam", Obtained: 60, MaxMarks: 75},
			},
			wantScore: 80, wantMax: 100,
		},
		{
			name: "missing final still counts its weight",
			records: []ExamRecord{
				{ExamName: "Mid Term", Obtained: 20, MaxMarks: 25},
			},
			wantScore: 20, wantMax: 100,
		},
		{
			name:      "no records at all",
			records:   nil,
			wantScore: 0, wantMax: 100,
		},
		{
			name: "multiple exams aggregate within a component",
			records: []ExamRecord{
				{ExamName: "Mid Term I", Obtained: 10, MaxMarks: 25},
				{ExamName: "Mid Term II", Obtained: 15, MaxMarks: 25},
				{ExamName: "Final Exam", Obtained: 75, MaxMarks: 75},
			},
			wantScore: 87.5, wantMax: 100,
		},
		{
			name: "unconfigured component is ignored",
			records: []ExamRecord{
				{ExamName: "Practical Lab", Obtained: 50, MaxMarks: 50},
				{ExamName: "Final Exam", Obtained: 75, MaxMarks: 75},
			},
			wantScore: 75, wantMax: 100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, max := WeightSubject(cfg, tc.records)
			if score != tc.wantScore {
				t.Errorf("score = %v, want %v", score, tc.wantScore)
			}
			if max != tc.wantMax {
				t.Errorf("max = %v, want %v", max, tc.wantMax)
			}
		})
	}
}

func TestWeightSubjectOtherConfigured(t *testing.T) {
	cfg := map[string]float64{"final": 75, "other": 25}
	records := []ExamRecord{
		{ExamName: "Practical Lab", Obtained: 25, MaxMarks: 50},
		{ExamName: "Final Exam", Obtained: 75, MaxMarks: 75},
	}

	score, max := WeightSubject(cfg, records)
	if score != 87.5 {
		t.Errorf("score = %v, want 87.5 when 'other' carries weight", score)
	}
	if max != 100 {
		t.Errorf("max = %v, want 100", max)
	}
}

func TestMarksheetVerdict(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		max      float64
		want     string
	}{
		{"clear pass", 80, 100, ResultPass},
		{"clear fail", 20, 100, ResultFail},
		{"exact pass line", 40, 100, ResultPass},
		{"just under pass line", 39.99, 100, ResultFail},
		{"zero maximum fails", 0, 0, ResultFail},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MarksheetVerdict(tc.obtained, tc.max); got != tc.want {
				t.Errorf("MarksheetVerdict(%v, %v) = %q, want %q", tc.obtained, tc.max, got, tc.want)
			}
		})
	}
}

func TestParseRuleConfig(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]float64
	}{
		{"valid config", `{"mid":25,"final":75}`, map[string]float64{"mid": 25, "final": 75}},
		{"non numeric values filtered", `{"mid":25,"note":"ignore"}`, map[string]float64{"mid": 25}},
		{"malformed json", `{"mid":`, nil},
		{"empty object", `{}`, nil},
		{"nothing numeric", `{"note":"x"}`, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseRuleConfig(tc.raw)
			if len(got) != len(tc.want) {
				t.Fatalf("ParseRuleConfig(%q) = %v, want %v", tc.raw, got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Errorf("cfg[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestBuiltinRuleConfig(t *testing.T) {
	cfg := BuiltinRuleConfig()
	if cfg["mid"] != 25 || cfg["final"] != 75 {
		t.Errorf("builtin config = %v, want mid:25 final:75", cfg)
	}
}
