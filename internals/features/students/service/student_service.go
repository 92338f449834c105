// file: internals/features/students/service/student_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	smodel "akademiku_backend/internals/features/students/model"
	"akademiku_backend/internals/helpers/errs"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

// ByUserID: resolve baris student dari user id token.
func (s *StudentService) ByUserID(ctx context.Context, userID uuid.UUID) (*smodel.StudentModel, error) {
	var row smodel.StudentModel
	err := s.DB.WithContext(ctx).Where("student_user_id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("student", userID)
		}
		return nil, err
	}
	return &row, nil
}

// Enroll: buat/refresh baris student + pasang program. Upsert by user id
// supaya unlock ulang tidak menduplikasi.
func (s *StudentService) Enroll(ctx context.Context, userID uuid.UUID, fullName string, programID *uuid.UUID) (*smodel.StudentModel, error) {
	row := smodel.StudentModel{
		StudentUserID:    userID,
		StudentFullName:  fullName,
		StudentProgramID: programID,
	}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"student_full_name",
				"student_program_id",
				"student_updated_at",
			}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}
	var saved smodel.StudentModel
	if err := s.DB.WithContext(ctx).Where("student_user_id = ?", userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
