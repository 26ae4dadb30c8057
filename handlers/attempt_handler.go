package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rahulmehra21/campus_backend/database"
	"github.com/rahulmehra21/campus_backend/models"
	"github.com/rahulmehra21/campus_backend/services"
)

type SubmitAttemptRequest struct {
	PaperID string `json:"paper_id" validate:"required,uuid"`
	// MCQ answers keyed by question id; descriptive submissions carry a
	// file reference instead. Neither is mandatory: an empty submission is
	// a valid "no answer" record.
	Answers  map[string]string `json:"answers,omitempty"`
	FilePath *string           `json:"file_path,omitempty"`
}

func SubmitAttempt(c *fiber.Ctx) error {
	studentID, err := actorID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token identity"})
	}

	var req SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	paperID, err := uuid.Parse(req.PaperID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid paper_id"})
	}

	var paper models.ExamPaper
	if err := database.DB.First(&paper, "id = ?", paperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Paper not found"})
	}

	var answerJSON *string
	if len(req.Answers) > 0 {
		raw, err := json.Marshal(req.Answers)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid answers"})
		}
		encoded := string(raw)
		answerJSON = &encoded
	}

	now := time.Now()
	attempt := models.ExamAttempt{
		StudentID:   studentID,
		PaperID:     paper.ID,
		ExamID:      paper.ExamID,
		StartedOn:   now,
		SubmittedOn: now,
		Status:      models.AttemptStatusSubmitted,
		AnswerJSON:  answerJSON,
		FilePath:    req.FilePath,
	}

	var score services.MCQScore
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		if len(req.Answers) == 0 {
			return nil
		}

		var key []services.AnswerKeyEntry
		if err := tx.
			Table("paper_questions").
			Select("paper_questions.question_id, questions.correct_option, paper_questions.marks").
			Joins("JOIN questions ON questions.id = paper_questions.question_id").
			Where("paper_questions.paper_id = ?", paper.ID).
			Scan(&key).Error; err != nil {
			return err
		}

		score = services.ScoreMCQAnswers(key, req.Answers)

		mark := models.Mark{
			AttemptID:     attempt.ID,
			StudentID:     studentID,
			ExamID:        paper.ExamID,
			SubjectID:     paper.SubjectID,
			MarksObtained: score.Obtained,
			GradedBy:      "system",
			GradeRemarks:  "Auto-graded MCQ",
			GradedOn:      now,
		}
		if err := tx.Create(&mark).Error; err != nil {
			return err
		}

		attempt.Status = models.AttemptStatusGraded
		return tx.Model(&attempt).Update("status", models.AttemptStatusGraded).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record attempt"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":      "success",
		"attempt_id":  attempt.ID,
		"auto_score":  score.Obtained,
		"total_marks": score.TotalMarks,
	})
}

type GradeAttemptRequest struct {
	AttemptID string  `json:"attempt_id" validate:"required,uuid"`
	Marks     float64 `json:"marks" validate:"gte=0"`
	Remarks   string  `json:"remarks"`
}

// GradeAttempt upserts the attempt's mark. This is the only path by which
// descriptive attempts are scored and the only way to override an
// auto-graded result.
func GradeAttempt(c *fiber.Ctx) error {
	var req GradeAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	attemptID, err := uuid.Parse(req.AttemptID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt_id"})
	}

	grader := actorEmail(c)

	var attempt models.ExamAttempt
	if err := database.DB.First(&attempt, "id = ?", attemptID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Attempt not found"})
	}

	var paper models.ExamPaper
	if err := database.DB.First(&paper, "id = ?", attempt.PaperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Paper not found"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		var mark models.Mark
		result := tx.Where("attempt_id = ?", attempt.ID).First(&mark)
		switch {
		case result.Error == nil:
			mark.MarksObtained = req.Marks
			mark.GradedBy = grader
			mark.GradeRemarks = req.Remarks
			mark.GradedOn = now
			if err := tx.Save(&mark).Error; err != nil {
				return err
			}
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			mark = models.Mark{
				AttemptID:     attempt.ID,
				StudentID:     attempt.StudentID,
				ExamID:        attempt.ExamID,
				SubjectID:     paper.SubjectID,
				MarksObtained: req.Marks,
				GradedBy:      grader,
				GradeRemarks:  req.Remarks,
				GradedOn:      now,
			}
			if err := tx.Create(&mark).Error; err != nil {
				return err
			}
		default:
			// A transient read failure must roll back, not race the
			// unique attempt_id constraint with a blind insert.
			return result.Error
		}

		return tx.Model(&attempt).Update("status", models.AttemptStatusGraded).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to grade attempt"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Attempt graded"})
}
