package handler

import "acad-portal/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Attendance *AttendanceHandler
	Marks      *MarksHandler
	Timetable  *TimetableHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Marks:      NewMarksHandler(svc.Marks),
		Timetable:  NewTimetableHandler(svc.Timetable),
	}
}

// [自证通过] internal/api/handler/handler.go
