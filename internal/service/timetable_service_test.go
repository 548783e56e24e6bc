package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"acad-portal/backend/internal/dto"
	"acad-portal/backend/internal/model"
)

func newTimetableFixture() (*mockStore, TimetableService) {
	st := newMockStore()
	st.subjects = []model.Subject{
		{SubjectID: "SUB1", Name: "数据结构", Semester: 3},
		{SubjectID: "SUB2", Name: "操作系统", Semester: 3},
	}
	st.assignments = []model.FacultyAssignment{
		{AssignmentID: "A1", FacultyID: "FAC001", SubjectID: "SUB1", ClassID: "C1", BatchID: "B2024", Semester: 3},
		{AssignmentID: "A2", FacultyID: "FAC001", SubjectID: "SUB2", ClassID: "C2", BatchID: "B2024", Semester: 3},
		{AssignmentID: "A3", FacultyID: "FAC002", SubjectID: "SUB3", ClassID: "C3", BatchID: "B2024", Semester: 5},
	}
	svc := NewTimetableService(newMockRepo(st), &trackingRevalidator{}, zap.NewNop())
	return st, svc
}

func seedSlot(st *mockStore, id, subjectID, classID, day string, period int) {
	st.slots[id] = model.TimetableSlot{
		TimetableSlotID: id, BatchID: "B2024", Semester: 3,
		SubjectID: subjectID, ClassID: classID, DayOfWeek: day, Period: period,
	}
}

func TestSetSlot_CreateNew(t *testing.T) {
	st, svc := newTimetableFixture()

	resp, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Monday", Period: 1,
		ClassID: strPtr("C1"), SubjectID: strPtr("SUB1"),
	})
	if err != nil {
		t.Fatalf("SetSlot 应成功: %v", err)
	}
	if resp.Cleared {
		t.Fatal("空闲节次排课不应报告清除")
	}
	if resp.Slot == nil || resp.Slot.SubjectID != "SUB1" {
		t.Fatalf("应返回新槽位: %+v", resp.Slot)
	}
	// 批次与学期从授课分配带入
	if resp.Slot.BatchID != "B2024" || resp.Slot.Semester != 3 {
		t.Fatalf("槽位应携带分配的批次与学期: %+v", resp.Slot)
	}
	if len(st.slots) != 1 {
		t.Fatalf("应只有 1 个槽位，实际 %d", len(st.slots))
	}
}

// 同一 (星期, 节次) 重新排课：旧槽删除、新槽插入，同一事务完成
func TestSetSlot_ReplaceKeepsSingle(t *testing.T) {
	st, svc := newTimetableFixture()
	seedSlot(st, "slot-old", "SUB1", "C1", "Monday", 1)

	resp, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Monday", Period: 1,
		ClassID: strPtr("C2"), SubjectID: strPtr("SUB2"),
	})
	if err != nil {
		t.Fatalf("SetSlot 应成功: %v", err)
	}
	if !resp.Cleared {
		t.Fatal("替换应报告清除了旧槽位")
	}
	if len(st.slots) != 1 {
		t.Fatalf("替换后该教师在 (Monday, 1) 应只剩 1 个槽位，实际 %d", len(st.slots))
	}
	for _, s := range st.slots {
		if s.SubjectID != "SUB2" || s.ClassID != "C2" {
			t.Fatalf("保留的应是新槽位: %+v", s)
		}
	}
}

func TestSetSlot_UnauthorizedRollsBack(t *testing.T) {
	st, svc := newTimetableFixture()
	seedSlot(st, "slot-old", "SUB1", "C1", "Monday", 1)

	_, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Monday", Period: 1,
		ClassID: strPtr("C3"), SubjectID: strPtr("SUB3"), // FAC002 的组合
	})
	if !errors.Is(err, ErrUnauthorizedAssignment) {
		t.Fatalf("未授权组合应返回 ErrUnauthorizedAssignment，实际 %v", err)
	}
	// 回滚后旧槽位恢复
	if _, ok := st.slots["slot-old"]; !ok {
		t.Fatal("事务回滚后旧槽位应仍然存在")
	}
}

func TestSetSlot_ClearToFree(t *testing.T) {
	st, svc := newTimetableFixture()
	seedSlot(st, "slot-old", "SUB1", "C1", "Tuesday", 2)

	resp, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Tuesday", Period: 2,
	})
	if err != nil {
		t.Fatalf("清空槽位应成功: %v", err)
	}
	if !resp.Cleared || resp.Slot != nil {
		t.Fatalf("清空应只报告清除: %+v", resp)
	}
	if len(st.slots) != 0 {
		t.Fatal("槽位应已删除")
	}
}

// 他人在同一 (星期, 节次) 的槽位不受影响
func TestSetSlot_OtherFacultySlotUntouched(t *testing.T) {
	st, svc := newTimetableFixture()
	st.slots["slot-other"] = model.TimetableSlot{
		TimetableSlotID: "slot-other", BatchID: "B2024", Semester: 5,
		SubjectID: "SUB3", ClassID: "C3", DayOfWeek: "Monday", Period: 1,
	}

	_, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Monday", Period: 1,
		ClassID: strPtr("C1"), SubjectID: strPtr("SUB1"),
	})
	if err != nil {
		t.Fatalf("SetSlot 应成功: %v", err)
	}
	if _, ok := st.slots["slot-other"]; !ok {
		t.Fatal("他人槽位不应被清除")
	}
	if len(st.slots) != 2 {
		t.Fatalf("应共有 2 个槽位，实际 %d", len(st.slots))
	}
}

func TestSetSlot_InvalidDay(t *testing.T) {
	_, svc := newTimetableFixture()
	_, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Sunday", Period: 1,
		ClassID: strPtr("C1"), SubjectID: strPtr("SUB1"),
	})
	if !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("周日不排课，应返回 ErrInvalidDay，实际 %v", err)
	}
}

func TestSetSlot_InvalidPeriod(t *testing.T) {
	_, svc := newTimetableFixture()
	_, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Monday", Period: 0,
		ClassID: strPtr("C1"), SubjectID: strPtr("SUB1"),
	})
	if !errors.Is(err, ErrTimetableValidation) {
		t.Fatalf("节次必须为正整数，实际 %v", err)
	}
}

func TestSetSlot_PairRequired(t *testing.T) {
	_, svc := newTimetableFixture()
	_, err := svc.SetSlot(context.Background(), "FAC001", &dto.SetSlotRequest{
		DayOfWeek: "Monday", Period: 1, ClassID: strPtr("C1"),
	})
	if !errors.Is(err, ErrTimetableValidation) {
		t.Fatalf("班级与科目必须成对给出，实际 %v", err)
	}
}

func TestGetFacultyTimetable_SortedUnion(t *testing.T) {
	st, svc := newTimetableFixture()
	seedSlot(st, "s1", "SUB2", "C2", "Tuesday", 3)
	seedSlot(st, "s2", "SUB1", "C1", "Monday", 2)
	seedSlot(st, "s3", "SUB1", "C1", "Monday", 1)
	// 他人槽位不应出现
	st.slots["s4"] = model.TimetableSlot{
		TimetableSlotID: "s4", SubjectID: "SUB3", ClassID: "C3", DayOfWeek: "Monday", Period: 1,
	}

	out, err := svc.GetFacultyTimetable(context.Background(), "FAC001")
	if err != nil {
		t.Fatalf("GetFacultyTimetable 应成功: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("应返回 3 个槽位，实际 %d", len(out))
	}
	// 按星期、节次排序
	want := []string{"s3", "s2", "s1"}
	for i, id := range want {
		if out[i].SlotID != id {
			t.Fatalf("第 %d 位应为 %s，实际 %s", i, id, out[i].SlotID)
		}
	}
}

func TestGetClassTimetable(t *testing.T) {
	st, svc := newTimetableFixture()
	seedSlot(st, "s1", "SUB1", "C1", "Wednesday", 2)
	seedSlot(st, "s2", "SUB2", "C2", "Wednesday", 2)

	out, err := svc.GetClassTimetable(context.Background(), "C1")
	if err != nil {
		t.Fatalf("GetClassTimetable 应成功: %v", err)
	}
	if len(out) != 1 || out[0].SlotID != "s1" {
		t.Fatalf("应只返回 C1 的槽位: %+v", out)
	}
	// 槽位携带科目名称
	if out[0].SubjectName != "数据结构" {
		t.Fatalf("槽位应补充科目名称，实际 %q", out[0].SubjectName)
	}
}

func TestGetAssignments(t *testing.T) {
	_, svc := newTimetableFixture()
	out, err := svc.GetAssignments(context.Background(), "FAC001")
	if err != nil {
		t.Fatalf("GetAssignments 应成功: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("FAC001 应有 2 条授课分配，实际 %d", len(out))
	}
}
