package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rahulmehra21/campus_backend/database"
	"github.com/rahulmehra21/campus_backend/models"
	"github.com/rahulmehra21/campus_backend/services"
	"github.com/rahulmehra21/campus_backend/utils"
)

type GenerateMarksheetRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	CourseID  string `json:"course_id" validate:"required,uuid"`
	Semester  string `json:"semester" validate:"required"`
}

type subjectMarkRow struct {
	ExamName      string
	MarksObtained float64
	TotalMarks    float64
}

// resolveRuleConfig cascades course rule -> global default -> built-in
// {mid:25, final:75}. A missing or unusable rule is never an error.
func resolveRuleConfig(courseID uuid.UUID) map[string]float64 {
	var rule models.MarksheetRule
	err := database.DB.
		Where("course_id = ?", courseID).
		Order("is_default DESC, created_at DESC").
		First(&rule).Error
	if err == nil {
		if cfg := services.ParseRuleConfig(rule.ConfigJSON); cfg != nil {
			return cfg
		}
	}

	err = database.DB.
		Where("is_default = ?", true).
		Order("created_at DESC").
		First(&rule).Error
	if err == nil {
		if cfg := services.ParseRuleConfig(rule.ConfigJSON); cfg != nil {
			return cfg
		}
	}

	return services.BuiltinRuleConfig()
}

func GenerateMarksheet(c *fiber.Ctx) error {
	var req GenerateMarksheetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student_id"})
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course_id"})
	}

	cfg := resolveRuleConfig(courseID)

	var subjects []models.Subject
	if err := database.DB.
		Where("course_id = ? AND semester = ?", courseID, req.Semester).
		Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load subjects"})
	}

	marksheet := services.Marksheet{Subjects: []services.SubjectBreakdown{}}
	for _, subject := range subjects {
		var rows []subjectMarkRow
		if err := database.DB.
			Table("marks").
			Select("exams.exam_name, marks.marks_obtained, exams.total_marks").
			Joins("JOIN exams ON exams.id = marks.exam_id").
			Where("marks.student_id = ? AND marks.subject_id = ?", studentID, subject.ID).
			Scan(&rows).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load marks"})
		}

		records := make([]services.ExamRecord, len(rows))
		for i, row := range rows {
			records[i] = services.ExamRecord{
				ExamName: row.ExamName,
				Obtained: row.MarksObtained,
				MaxMarks: row.TotalMarks,
			}
		}

		score, max := services.WeightSubject(cfg, records)
		marksheet.Subjects = append(marksheet.Subjects, services.SubjectBreakdown{
			SubjectID:     subject.ID,
			SubjectName:   subject.SubjectName,
			ScoreWeighted: score,
			MaxWeighted:   max,
		})
		marksheet.TotalObtained = utils.Round2(marksheet.TotalObtained + score)
		marksheet.TotalMax = utils.Round2(marksheet.TotalMax + max)
	}

	result := services.MarksheetVerdict(marksheet.TotalObtained, marksheet.TotalMax)

	breakdown, err := json.Marshal(marksheet)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode marksheet"})
	}

	generated := models.GeneratedMarksheet{
		StudentID:     studentID,
		CourseID:      courseID,
		Semester:      req.Semester,
		MarksheetJSON: string(breakdown),
		TotalMarks:    marksheet.TotalObtained,
		ResultStatus:  result,
	}
	if err := database.DB.Create(&generated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save marksheet"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":       "success",
		"marksheet_id": generated.ID,
		"result":       result,
		"marksheet":    marksheet,
	})
}
