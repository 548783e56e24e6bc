package service

import (
	"testing"

	"acad-portal/backend/internal/model"
)

func TestAttendancePercentage(t *testing.T) {
	cases := []struct {
		present, total, want int
	}{
		{0, 0, 0},   // 无记录定义为 0
		{7, 10, 70},
		{1, 3, 33},
		{2, 3, 67}, // 66.67 四舍五入
		{1, 2, 50},
		{10, 10, 100},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := AttendancePercentage(c.present, c.total); got != c.want {
			t.Errorf("AttendancePercentage(%d, %d) = %d, 期望 %d", c.present, c.total, got, c.want)
		}
	}
}

func TestGradeForTotal(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{100, "O"}, {90, "O"},
		{89, "A+"}, {80, "A+"},
		{79, "A"}, {70, "A"},
		{69, "B+"}, {60, "B+"},
		{59, "B"}, {50, "B"},
		{49, "C"}, {40, "C"},
		{39, "F"}, {0, "F"},
	}
	for _, c := range cases {
		if got := GradeForTotal(c.total); got != c.want {
			t.Errorf("GradeForTotal(%d) = %s, 期望 %s", c.total, got, c.want)
		}
	}
}

func TestHeadlineMark(t *testing.T) {
	t.Run("期末类优先于平时类", func(t *testing.T) {
		recs := []model.MarkRecord{
			{ExamType: model.ExamTypeMid1, Total: 95},
			{ExamType: model.ExamTypeSemester, Total: 82},
		}
		head, ok := HeadlineMark(recs)
		if !ok {
			t.Fatal("应选出摘要成绩")
		}
		if head.ExamType != model.ExamTypeSemester || head.Total != 82 {
			t.Fatalf("摘要应取期末卷 82，实际 %s %d", head.ExamType, head.Total)
		}
	})

	t.Run("同优先级取总分更高", func(t *testing.T) {
		recs := []model.MarkRecord{
			{ExamType: model.ExamTypeSemester, Total: 70},
			{ExamType: model.ExamTypeLabExternal, Total: 88},
		}
		head, _ := HeadlineMark(recs)
		if head.Total != 88 {
			t.Fatalf("摘要总分应为 88，实际 %d", head.Total)
		}
	})

	t.Run("无期末类时回退平时类", func(t *testing.T) {
		recs := []model.MarkRecord{
			{ExamType: model.ExamTypeMid1, Total: 60},
			{ExamType: model.ExamTypeMid2, Total: 72},
		}
		head, _ := HeadlineMark(recs)
		if head.ExamType != model.ExamTypeMid2 {
			t.Fatalf("应回退到总分最高的平时卷，实际 %s", head.ExamType)
		}
	})

	t.Run("空记录返回 false", func(t *testing.T) {
		if _, ok := HeadlineMark(nil); ok {
			t.Fatal("空记录不应选出摘要")
		}
	})
}
