package services

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestScoreMCQAnswers(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	q3 := uuid.New()

	key := []AnswerKeyEntry{
		{QuestionID: q1, CorrectOption: strPtr("A"), Marks: 2},
		{QuestionID: q2, CorrectOption: strPtr("C"), Marks: 3},
		{QuestionID: q3, CorrectOption: strPtr("B"), Marks: 1},
	}

	tests := []struct {
		name     string
		answers  map[string]string
		obtained float64
		total    float64
		correct  int
		answered int
	}{
		{
			name:     "all correct",
			answers:  map[string]string{q1.String(): "A", q2.String(): "C", q3.String(): "B"},
			obtained: 6, total: 6, correct: 3, answered: 3,
		},
		{
			name:     "none correct",
			answers:  map[string]string{q1.String(): "B", q2.String(): "D", q3.String(): "C"},
			obtained: 0, total: 6, correct: 0, answered: 3,
		},
		{
			name:     "case insensitive match",
			answers:  map[string]string{q1.String(): "a", q2.String(): "c"},
			obtained: 5, total: 6, correct: 2, answered: 2,
		},
		{
			name:     "unknown question ignored",
			answers:  map[string]string{uuid.New().String(): "A", q3.String(): "B"},
			obtained: 1, total: 6, correct: 1, answered: 1,
		},
		{
			name:     "no answers still totals marks",
			answers:  map[string]string{},
			obtained: 0, total: 6, correct: 0, answered: 0,
		},
		{
			name:     "blank selection not counted as answered",
			answers:  map[string]string{q1.String(): "  ", q2.String(): "C"},
			obtained: 3, total: 6, correct: 1, answered: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreMCQAnswers(key, tc.answers)
			if got.Obtained != tc.obtained {
				t.Errorf("Obtained = %v, want %v", got.Obtained, tc.obtained)
			}
			if got.TotalMarks != tc.total {
				t.Errorf("TotalMarks = %v, want %v", got.TotalMarks, tc.total)
			}
			if got.Correct != tc.correct {
				t.Errorf("Correct = %d, want %d", got.Correct, tc.correct)
			}
			if got.Answered != tc.answered {
				t.Errorf("Answered = %d, want %d", got.Answered, tc.answered)
			}
		})
	}
}

func TestScoreMCQAnswersZeroMarkDefaultsToOne(t *testing.T) {
	qid := uuid.New()
	key := []AnswerKeyEntry{{QuestionID: qid, CorrectOption: strPtr("D"), Marks: 0}}

	got := ScoreMCQAnswers(key, map[string]string{qid.String(): "d"})
	if got.Obtained != 1 || got.TotalMarks != 1 {
		t.Errorf("got obtained=%v total=%v, want 1 and 1", got.Obtained, got.TotalMarks)
	}
}

func TestScoreMCQAnswersNilCorrectOption(t *testing.T) {
	qid := uuid.New()
	key := []AnswerKeyEntry{{QuestionID: qid, CorrectOption: nil, Marks: 2}}

	got := ScoreMCQAnswers(key, map[string]string{qid.String(): "A"})
	if got.Obtained != 0 {
		t.Errorf("Obtained = %v, want 0 when the key has no correct option", got.Obtained)
	}
	if got.TotalMarks != 2 {
		t.Errorf("TotalMarks = %v, want 2", got.TotalMarks)
	}
	if got.Answered != 1 {
		t.Errorf("Answered = %d, want 1", got.Answered)
	}
}

func TestScoreMCQAnswersMixedCaseIDLookup(t *testing.T) {
	qid := uuid.New()
	key := []AnswerKeyEntry{{QuestionID: qid, CorrectOption: strPtr("B"), Marks: 4}}

	// submitters may upper-case the id; both encodings must resolve
	upper := map[string]string{}
	for k, v := range map[string]string{qid.String(): "B"} {
		upper[toUpper(k)] = v
	}

	got := ScoreMCQAnswers(key, upper)
	if got.Obtained != 4 {
		t.Errorf("Obtained = %v, want 4 for upper-cased id key", got.Obtained)
	}
}

func toUpper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 32
		}
	}
	return string(out)
}
