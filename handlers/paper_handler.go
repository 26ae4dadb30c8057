package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rahulmehra21/campus_backend/database"
	"github.com/rahulmehra21/campus_backend/models"
)

// PaperPartMeta is the typed, versioned description of non-MCQ section
// composition. It is persisted verbatim and never interpreted by the engine.
type PaperPartMeta struct {
	SchemaVersion int                  `json:"schema_version"`
	Parts         map[string]PaperPart `json:"parts"`
}

type PaperPart struct {
	Count       int     `json:"count"`
	Marks       float64 `json:"marks"`
	Description string  `json:"description,omitempty"`
}

type GeneratePaperRequest struct {
	ExamID    string         `json:"exam_id" validate:"required,uuid"`
	SubjectID string         `json:"subject_id" validate:"required,uuid"`
	MCQCount  *int           `json:"mcq_count" validate:"omitempty,gte=0"`
	PartMeta  *PaperPartMeta `json:"part_meta,omitempty"`
}

const defaultPaperMCQCount = 25

// defaultMCQCount applies the composer default only when the caller omitted
// the field entirely; an explicit zero composes an empty paper.
func defaultMCQCount(requested *int) int {
	if requested == nil {
		return defaultPaperMCQCount
	}
	return *requested
}

func GeneratePaper(c *fiber.Ctx) error {
	var req GeneratePaperRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	examID, err := uuid.Parse(req.ExamID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exam_id"})
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subject_id"})
	}

	mcqCount := defaultMCQCount(req.MCQCount)

	var meta *string
	if req.PartMeta != nil {
		if req.PartMeta.SchemaVersion == 0 {
			req.PartMeta.SchemaVersion = 1
		}
		raw, err := json.Marshal(req.PartMeta)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid part_meta"})
		}
		encoded := string(raw)
		meta = &encoded
	}

	paper := models.ExamPaper{
		ExamID:      examID,
		SubjectID:   subjectID,
		GeneratedOn: time.Now(),
		PaperMeta:   meta,
	}

	var selected int
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&paper).Error; err != nil {
			return err
		}

		// Random sample; a shortfall in the pool is not an error, the
		// paper simply carries fewer questions.
		var questions []models.Question
		if err := tx.
			Where("subject_id = ? AND question_type = ?", subjectID, models.QuestionTypeMCQ).
			Order("RANDOM()").
			Limit(mcqCount).
			Find(&questions).Error; err != nil {
			return err
		}

		for i, q := range questions {
			marks := q.Marks
			if marks <= 0 {
				marks = 1
			}
			pq := models.PaperQuestion{
				PaperID:    paper.ID,
				QuestionID: q.ID,
				SeqNo:      i + 1,
				Marks:      marks,
			}
			if err := tx.Create(&pq).Error; err != nil {
				return err
			}
		}
		selected = len(questions)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate paper"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":             "success",
		"paper_id":           paper.ID,
		"questions_selected": selected,
	})
}

type paperQuestionView struct {
	SeqNo      int       `json:"seq_no"`
	QuestionID uuid.UUID `json:"question_id"`
	Question   string    `json:"question"`
	OptionA    *string   `json:"option_a"`
	OptionB    *string   `json:"option_b"`
	OptionC    *string   `json:"option_c"`
	OptionD    *string   `json:"option_d"`
	Marks      float64   `json:"marks"`
}

// GetPaper returns the paper header and its ordered questions. The correct
// option is never part of the projection.
func GetPaper(c *fiber.Ctx) error {
	paperID, err := uuid.Parse(c.Params("paperId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid paper id"})
	}

	var paper models.ExamPaper
	if err := database.DB.First(&paper, "id = ?", paperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Paper not found"})
	}

	var questions []paperQuestionView
	if err := database.DB.
		Table("paper_questions").
		Select("paper_questions.seq_no, questions.id AS question_id, questions.question_text AS question, questions.option_a, questions.option_b, questions.option_c, questions.option_d, paper_questions.marks").
		Joins("JOIN questions ON questions.id = paper_questions.question_id").
		Where("paper_questions.paper_id = ?", paperID).
		Order("paper_questions.seq_no").
		Scan(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load paper questions"})
	}

	var meta *PaperPartMeta
	if paper.PaperMeta != nil {
		var decoded PaperPartMeta
		if err := json.Unmarshal([]byte(*paper.PaperMeta), &decoded); err == nil {
			meta = &decoded
		}
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"paper": fiber.Map{
			"paper_id":     paper.ID,
			"exam_id":      paper.ExamID,
			"subject_id":   paper.SubjectID,
			"generated_on": paper.GeneratedOn,
			"meta":         meta,
		},
		"questions": questions,
	})
}
