package handlers

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rahulmehra21/campus_backend/database"
	"github.com/rahulmehra21/campus_backend/models"
	"github.com/rahulmehra21/campus_backend/services"
)

// CheckEligibility computes the four academic-clearance signals for a
// student and appends one audit row. Missing records degrade to neutral
// defaults; a failed read aborts before anything is persisted.
func CheckEligibility(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}
	semester := c.Params("semester")
	if semester == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Semester is required"})
	}

	// 1) Fee cleared: any non-Paid bill blocks clearance.
	var pendingBills int64
	if err := database.DB.Model(&models.StudentBill{}).
		Where("student_id = ? AND status <> ?", studentID, "Paid").
		Count(&pendingBills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read billing records"})
	}
	feeCleared := pendingBills == 0

	// 2) Attendance percent; no records at all is not penalized.
	var presentCount, totalCount int64
	if err := database.DB.Model(&models.AttendanceRecord{}).
		Where("student_id = ? AND status = ?", studentID, "Present").
		Count(&presentCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read attendance records"})
	}
	if err := database.DB.Model(&models.AttendanceRecord{}).
		Where("student_id = ?", studentID).
		Count(&totalCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read attendance records"})
	}
	attendancePercent := services.RatioPercent(presentCount, totalCount)

	// 3) Coursework completion over the student's course assignments. An
	// unresolvable course is neutral; a failed lookup is not.
	courseworkPercent := 100.0
	var student models.User
	err = database.DB.First(&student, "id = ?", studentID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve student"})
	case student.CourseID != nil:
		var totalAssignments, submitted int64
		if err := database.DB.Model(&models.Assignment{}).
			Joins("JOIN subjects ON subjects.id = assignments.subject_id").
			Where("subjects.course_id = ?", *student.CourseID).
			Count(&totalAssignments).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read assignments"})
		}
		if err := database.DB.Model(&models.Submission{}).
			Where("student_id = ?", studentID).
			Count(&submitted).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read submissions"})
		}
		courseworkPercent = services.RatioPercent(submitted, totalAssignments)
	}

	// 4) All-time marks average; no marks averages to 0.
	var avgMarks sql.NullFloat64
	if err := database.DB.Model(&models.Mark{}).
		Where("student_id = ?", studentID).
		Select("AVG(marks_obtained)").
		Row().Scan(&avgMarks); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read marks"})
	}
	assessmentsAverage := 0.0
	if avgMarks.Valid {
		assessmentsAverage = avgMarks.Float64
	}

	signals := services.EligibilitySignals{
		FeeCleared:         feeCleared,
		AttendancePercent:  attendancePercent,
		CourseworkPercent:  courseworkPercent,
		AssessmentsAverage: assessmentsAverage,
	}
	decision := services.EligibilityDecision(signals)

	check := models.EligibilityCheck{
		StudentID:          studentID,
		Semester:           semester,
		FeeCleared:         feeCleared,
		AttendancePercent:  attendancePercent,
		CourseworkPercent:  courseworkPercent,
		AssessmentsAverage: assessmentsAverage,
		AssessmentsCleared: signals.AssessmentsCleared(),
		FinalDecision:      decision,
		CheckedBy:          actorEmail(c),
		CheckedOn:          time.Now(),
	}
	if err := database.DB.Create(&check).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record eligibility check"})
	}

	return c.JSON(fiber.Map{
		"status":              "success",
		"fee_cleared":         feeCleared,
		"attendance_percent":  attendancePercent,
		"coursework_percent":  courseworkPercent,
		"assessments_avg":     assessmentsAverage,
		"assessments_cleared": signals.AssessmentsCleared(),
		"final_decision":      decision,
	})
}
