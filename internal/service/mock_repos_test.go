package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"acad-portal/backend/internal/model"
	"acad-portal/backend/internal/repository"
	pkgerrors "acad-portal/backend/pkg/errors"
)

// 内存版数据访问实现，供服务层测试使用。
// Atomic 在执行前快照全部状态、失败时整体还原，模拟事务回滚语义。

type mockStore struct {
	users       map[string]model.User
	students    map[string]model.StudentProfile
	subjects    []model.Subject
	attendance  map[model.AttendanceKey]model.AttendanceRecord
	marks       map[model.MarkKey]model.MarkRecord
	slots       map[string]model.TimetableSlot
	assignments []model.FacultyAssignment
	seq         int
}

func newMockStore() *mockStore {
	return &mockStore{
		users:      make(map[string]model.User),
		students:   make(map[string]model.StudentProfile),
		attendance: make(map[model.AttendanceKey]model.AttendanceRecord),
		marks:      make(map[model.MarkKey]model.MarkRecord),
		slots:      make(map[string]model.TimetableSlot),
	}
}

func (st *mockStore) nextID(prefix string) string {
	st.seq++
	return fmt.Sprintf("%s-%04d", prefix, st.seq)
}

func (st *mockStore) clone() *mockStore {
	cp := newMockStore()
	for k, v := range st.users {
		cp.users[k] = v
	}
	for k, v := range st.students {
		cp.students[k] = v
	}
	cp.subjects = append(cp.subjects, st.subjects...)
	for k, v := range st.attendance {
		cp.attendance[k] = v
	}
	for k, v := range st.marks {
		cp.marks[k] = v
	}
	for k, v := range st.slots {
		cp.slots[k] = v
	}
	cp.assignments = append(cp.assignments, st.assignments...)
	cp.seq = st.seq
	return cp
}

func newMockRepo(st *mockStore) *repository.Repository {
	r := &repository.Repository{
		User:       &mockUserRepo{st},
		Student:    &mockStudentRepo{st},
		Subject:    &mockSubjectRepo{st},
		Attendance: &mockAttendanceRepo{st},
		Mark:       &mockMarkRepo{st},
		Timetable:  &mockTimetableRepo{st},
		Assignment: &mockAssignmentRepo{st},
	}
	r.Atomic = func(_ context.Context, fn func(tx *repository.Repository) error) error {
		snap := st.clone()
		if err := fn(r); err != nil {
			*st = *snap
			return err
		}
		return nil
	}
	return r
}

// ── 用户 / 学生 / 科目 ──

type mockUserRepo struct{ st *mockStore }

func (m *mockUserRepo) GetByID(_ context.Context, userID string) (*model.User, error) {
	u, ok := m.st.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.st.users {
		if u.Email == email {
			v := u
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockStudentRepo struct{ st *mockStore }

func (m *mockStudentRepo) GetByID(_ context.Context, studentID string) (*model.StudentProfile, error) {
	s, ok := m.st.students[studentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (m *mockStudentRepo) ListByClass(_ context.Context, classID string) ([]model.StudentProfile, error) {
	var out []model.StudentProfile
	for _, s := range m.st.students {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStudentRepo) UpdateAttendancePercentage(_ context.Context, studentID string, percentage int) error {
	s, ok := m.st.students[studentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.AttendancePercentage = percentage
	m.st.students[studentID] = s
	return nil
}

type mockSubjectRepo struct{ st *mockStore }

func (m *mockSubjectRepo) GetByID(_ context.Context, subjectID string) (*model.Subject, error) {
	for _, s := range m.st.subjects {
		if s.SubjectID == subjectID {
			v := s
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) ListBySemester(_ context.Context, semester int) ([]model.Subject, error) {
	var out []model.Subject
	for _, s := range m.st.subjects {
		if s.Semester == semester {
			out = append(out, s)
		}
	}
	return out, nil
}

// ── 考勤 ──

type mockAttendanceRepo struct{ st *mockStore }

func (m *mockAttendanceRepo) GetByKey(_ context.Context, key model.AttendanceKey) (*model.AttendanceRecord, error) {
	r, ok := m.st.attendance[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (m *mockAttendanceRepo) BatchInsertIgnoreConflicts(_ context.Context, records []model.AttendanceRecord) error {
	for _, r := range records {
		key := r.Key()
		if _, exists := m.st.attendance[key]; exists {
			continue // 首写获胜
		}
		if r.AttendanceRecordID == "" {
			r.AttendanceRecordID = m.st.nextID("att")
		}
		m.st.attendance[key] = r
	}
	return nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentID string) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for _, r := range m.st.attendance {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) CountByStudent(_ context.Context, studentID string) (int64, int64, error) {
	var total, present int64
	for _, r := range m.st.attendance {
		if r.StudentID != studentID {
			continue
		}
		total++
		if r.IsPresent {
			present++
		}
	}
	return total, present, nil
}

// ── 成绩 ──

type mockMarkRepo struct{ st *mockStore }

func (m *mockMarkRepo) GetByKey(_ context.Context, key model.MarkKey) (*model.MarkRecord, error) {
	r, ok := m.st.marks[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (m *mockMarkRepo) Create(_ context.Context, rec *model.MarkRecord) error {
	if rec.MarkRecordID == "" {
		rec.MarkRecordID = m.st.nextID("mark")
	}
	m.st.marks[rec.Key()] = *rec
	return nil
}

func (m *mockMarkRepo) UpdateIfUnlocked(_ context.Context, rec *model.MarkRecord) error {
	cur, ok := m.st.marks[rec.Key()]
	if !ok || cur.IsLocked {
		return pkgerrors.ErrRecordLocked // 守卫更新命中 0 行
	}
	cur.Objective = rec.Objective
	cur.Theory = rec.Theory
	cur.Assignment = rec.Assignment
	cur.Total = rec.Total
	cur.EnteredBy = rec.EnteredBy
	cur.IsLocked = true
	m.st.marks[rec.Key()] = cur
	return nil
}

func (m *mockMarkRepo) Upsert(_ context.Context, rec *model.MarkRecord) error {
	key := rec.Key()
	if cur, ok := m.st.marks[key]; ok {
		rec.MarkRecordID = cur.MarkRecordID
	} else if rec.MarkRecordID == "" {
		rec.MarkRecordID = m.st.nextID("mark")
	}
	rec.IsLocked = true
	m.st.marks[key] = *rec
	return nil
}

func (m *mockMarkRepo) ListByStudent(_ context.Context, studentID string) ([]model.MarkRecord, error) {
	var out []model.MarkRecord
	for _, r := range m.st.marks {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ── 课程表 / 授课分配 ──

type mockTimetableRepo struct{ st *mockStore }

func (m *mockTimetableRepo) ListByDayPeriod(_ context.Context, dayOfWeek string, period int) ([]model.TimetableSlot, error) {
	var out []model.TimetableSlot
	for _, s := range m.st.slots {
		if s.DayOfWeek == dayOfWeek && s.Period == period {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockTimetableRepo) ListBySubjectAndClass(_ context.Context, subjectID, classID string) ([]model.TimetableSlot, error) {
	var out []model.TimetableSlot
	for _, s := range m.st.slots {
		if s.SubjectID == subjectID && s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockTimetableRepo) ListByClass(_ context.Context, classID string) ([]model.TimetableSlot, error) {
	var out []model.TimetableSlot
	for _, s := range m.st.slots {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockTimetableRepo) Create(_ context.Context, slot *model.TimetableSlot) error {
	if slot.TimetableSlotID == "" {
		slot.TimetableSlotID = m.st.nextID("slot")
	}
	m.st.slots[slot.TimetableSlotID] = *slot
	return nil
}

func (m *mockTimetableRepo) Delete(_ context.Context, slotID string) error {
	delete(m.st.slots, slotID)
	return nil
}

type mockAssignmentRepo struct{ st *mockStore }

func (m *mockAssignmentRepo) ListByFaculty(_ context.Context, facultyID string) ([]model.FacultyAssignment, error) {
	var out []model.FacultyAssignment
	for _, a := range m.st.assignments {
		if a.FacultyID == facultyID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ── 测试辅助 ──

// trackingRevalidator 记录被失效的视图键
type trackingRevalidator struct {
	keys []string
}

func (t *trackingRevalidator) Invalidate(_ context.Context, keys ...string) error {
	t.keys = append(t.keys, keys...)
	return nil
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
