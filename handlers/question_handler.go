package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rahulmehra21/campus_backend/database"
	"github.com/rahulmehra21/campus_backend/models"
)

type QuestionRequest struct {
	SubjectID     string  `json:"subject_id" validate:"required,uuid"`
	QuestionText  string  `json:"question" validate:"required"`
	QuestionType  string  `json:"question_type" validate:"omitempty,oneof=mcq descriptive"`
	OptionA       *string `json:"option_a"`
	OptionB       *string `json:"option_b"`
	OptionC       *string `json:"option_c"`
	OptionD       *string `json:"option_d"`
	CorrectOption *string `json:"correct_option"`
	Marks         float64 `json:"marks" validate:"omitempty,gte=0"`
}

func CreateQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subject_id"})
	}

	questionType := req.QuestionType
	if questionType == "" {
		questionType = models.QuestionTypeMCQ
	}
	marks := req.Marks
	if marks == 0 {
		marks = 1
	}

	question := models.Question{
		SubjectID:     subjectID,
		AddedBy:       actorEmail(c),
		QuestionText:  req.QuestionText,
		QuestionType:  questionType,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
		Marks:         marks,
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add question"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":      "success",
		"message":     "Question added to bank",
		"question_id": question.ID,
	})
}

func ListQuestions(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subject id"})
	}

	var questions []models.Question
	if err := database.DB.
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list questions"})
	}

	return c.JSON(fiber.Map{"status": "success", "questions": questions})
}
