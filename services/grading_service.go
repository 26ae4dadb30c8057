package services

import (
	"strings"

	"github.com/google/uuid"
)

// AnswerKeyEntry is one question on a paper together with the paper-level
// marks, which are authoritative for grading.
type AnswerKeyEntry struct {
	QuestionID    uuid.UUID
	CorrectOption *string
	Marks         float64
}

type MCQScore struct {
	Obtained   float64
	TotalMarks float64
	Correct    int
	Answered   int
}

// ScoreMCQAnswers grades submitted answers against a paper's answer key.
// Options compare case-insensitively, answers for questions not on the paper
// are ignored, and every key entry contributes its marks to TotalMarks
// whether answered or not. A question with zero marks counts as one mark.
func ScoreMCQAnswers(key []AnswerKeyEntry, answers map[string]string) MCQScore {
	submitted := make(map[string]string, len(answers))
	for qid, sel := range answers {
		submitted[normalizeID(qid)] = sel
	}

	var result MCQScore
	for _, entry := range key {
		marks := entry.Marks
		if marks <= 0 {
			marks = 1
		}
		result.TotalMarks += marks

		sel, ok := submitted[normalizeID(entry.QuestionID.String())]
		if !ok || strings.TrimSpace(sel) == "" {
			continue
		}
		result.Answered++
		if entry.CorrectOption == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(sel), strings.TrimSpace(*entry.CorrectOption)) {
			result.Correct++
			result.Obtained += marks
		}
	}
	return result
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
