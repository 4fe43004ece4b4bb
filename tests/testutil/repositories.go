package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/holiday"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// store is a mutex-guarded map shared by the in-memory repositories
type store[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	err   error
}

func newStore[T any]() store[T] {
	return store[T]{items: make(map[uuid.UUID]T)}
}

// SetError makes every later call fail with err
func (s *store[T]) SetError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *store[T]) put(id uuid.UUID, v T, mustExist bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[id]; mustExist && !ok {
		return shared.ErrNotFound
	}
	s.items[id] = v
	return nil
}

func (s *store[T]) get(id uuid.UUID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	if s.err != nil {
		return zero, s.err
	}
	v, ok := s.items[id]
	if !ok {
		return zero, shared.ErrNotFound
	}
	return v, nil
}

func (s *store[T]) remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *store[T]) filter(keep func(T) bool) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func page[T any](items []T, f shared.Filter) []T {
	if f.Unpaged() {
		return items
	}
	start := f.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + f.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func contains(haystack, q string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(q)))
}

// UnitRepository is an in-memory organization.UnitRepository
type UnitRepository struct{ store[*organization.Unit] }

// NewUnitRepository creates an empty UnitRepository
func NewUnitRepository() *UnitRepository {
	return &UnitRepository{newStore[*organization.Unit]()}
}

func (r *UnitRepository) Create(_ context.Context, u *organization.Unit) error {
	return r.put(u.ID, u, false)
}

func (r *UnitRepository) Update(_ context.Context, u *organization.Unit) error {
	return r.put(u.ID, u, true)
}

func (r *UnitRepository) Delete(_ context.Context, id uuid.UUID) error { return r.remove(id) }

func (r *UnitRepository) FindByID(_ context.Context, id uuid.UUID) (*organization.Unit, error) {
	return r.get(id)
}

func (r *UnitRepository) FindAll(_ context.Context) ([]*organization.Unit, error) {
	units, err := r.filter(nil)
	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	return units, err
}

func (r *UnitRepository) ExistsByCode(_ context.Context, code string) (bool, error) {
	found, err := r.filter(func(u *organization.Unit) bool { return u.Code == code })
	return len(found) > 0, err
}

// DepartmentRepository is an in-memory organization.DepartmentRepository
type DepartmentRepository struct{ store[*organization.Department] }

// NewDepartmentRepository creates an empty DepartmentRepository
func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{newStore[*organization.Department]()}
}

func (r *DepartmentRepository) Create(_ context.Context, d *organization.Department) error {
	return r.put(d.ID, d, false)
}

func (r *DepartmentRepository) Update(_ context.Context, d *organization.Department) error {
	return r.put(d.ID, d, true)
}

func (r *DepartmentRepository) Delete(_ context.Context, id uuid.UUID) error { return r.remove(id) }

func (r *DepartmentRepository) FindByID(_ context.Context, id uuid.UUID) (*organization.Department, error) {
	return r.get(id)
}

func (r *DepartmentRepository) FindAll(_ context.Context) ([]*organization.Department, error) {
	depts, err := r.filter(nil)
	sort.Slice(depts, func(i, j int) bool { return depts[i].Name < depts[j].Name })
	return depts, err
}

func (r *DepartmentRepository) FindByUnitID(_ context.Context, unitID uuid.UUID) ([]*organization.Department, error) {
	depts, err := r.filter(func(d *organization.Department) bool { return d.BelongsTo(unitID) })
	sort.Slice(depts, func(i, j int) bool { return depts[i].Name < depts[j].Name })
	return depts, err
}

func (r *DepartmentRepository) CountByUnitID(ctx context.Context, unitID uuid.UUID) (int64, error) {
	depts, err := r.FindByUnitID(ctx, unitID)
	return int64(len(depts)), err
}

func (r *DepartmentRepository) ExistsByCode(_ context.Context, code string) (bool, error) {
	found, err := r.filter(func(d *organization.Department) bool { return d.Code == code })
	return len(found) > 0, err
}

// EmployeeRepository is an in-memory employee.Repository
type EmployeeRepository struct {
	store[*employee.Employee]
	seq int64
}

// NewEmployeeRepository creates an empty EmployeeRepository
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{store: newStore[*employee.Employee]()}
}

func (r *EmployeeRepository) Create(_ context.Context, e *employee.Employee) error {
	return r.put(e.ID, e, false)
}

func (r *EmployeeRepository) Update(_ context.Context, e *employee.Employee) error {
	return r.put(e.ID, e, true)
}

func (r *EmployeeRepository) Delete(_ context.Context, id uuid.UUID) error { return r.remove(id) }

func (r *EmployeeRepository) FindByID(_ context.Context, id uuid.UUID) (*employee.Employee, error) {
	return r.get(id)
}

func (r *EmployeeRepository) first(keep func(*employee.Employee) bool) (*employee.Employee, error) {
	found, err := r.filter(keep)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, shared.ErrNotFound
	}
	return found[0], nil
}

func (r *EmployeeRepository) FindByUsername(_ context.Context, username string) (*employee.Employee, error) {
	return r.first(func(e *employee.Employee) bool { return e.Username == username })
}

func (r *EmployeeRepository) FindByCode(_ context.Context, code string) (*employee.Employee, error) {
	return r.first(func(e *employee.Employee) bool { return e.EmployeeCode == code })
}

func (r *EmployeeRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*employee.Employee, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return r.filter(func(e *employee.Employee) bool { return want[e.ID] })
}

func (r *EmployeeRepository) List(_ context.Context, f employee.Filter) ([]*employee.Employee, int64, error) {
	depts := make(map[uuid.UUID]bool, len(f.DepartmentIDs))
	for _, id := range f.DepartmentIDs {
		depts[id] = true
	}
	found, err := r.filter(func(e *employee.Employee) bool {
		if f.ActiveOnly && !e.IsActive {
			return false
		}
		if f.Role != "" && e.Role != f.Role {
			return false
		}
		if f.DepartmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *f.DepartmentID) {
			return false
		}
		if len(depts) > 0 && (e.DepartmentID == nil || !depts[*e.DepartmentID]) {
			return false
		}
		if f.Search != "" && !contains(e.FullName()+" "+e.EmployeeCode+" "+e.Username+" "+e.Email+" "+e.Position, f.Search) {
			return false
		}
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	sortEmployees(found)
	return page(found, f.Filter), int64(len(found)), nil
}

func (r *EmployeeRepository) FindActive(_ context.Context) ([]*employee.Employee, error) {
	found, err := r.filter(func(e *employee.Employee) bool { return e.IsActive })
	sortEmployees(found)
	return found, err
}

func (r *EmployeeRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	found, err := r.filter(func(e *employee.Employee) bool { return e.Username == username })
	return len(found) > 0, err
}

func (r *EmployeeRepository) ExistsByCode(_ context.Context, code string) (bool, error) {
	found, err := r.filter(func(e *employee.Employee) bool { return e.EmployeeCode == code })
	return len(found) > 0, err
}

func (r *EmployeeRepository) NextSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.seq++
	return r.seq, nil
}

func (r *EmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	found, err := r.FindActive(ctx)
	return int64(len(found)), err
}

func sortEmployees(emps []*employee.Employee) {
	sort.Slice(emps, func(i, j int) bool { return emps[i].EmployeeCode < emps[j].EmployeeCode })
}

// LeaveRepository is an in-memory leave.Repository. Search matches type,
// reason and status; the employee name join is left to the GORM repository.
type LeaveRepository struct{ store[*leave.Request] }

// NewLeaveRepository creates an empty LeaveRepository
func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{newStore[*leave.Request]()}
}

func (r *LeaveRepository) Create(_ context.Context, req *leave.Request) error {
	return r.put(req.ID, req, false)
}

func (r *LeaveRepository) Update(_ context.Context, req *leave.Request) error {
	return r.put(req.ID, req, true)
}

func (r *LeaveRepository) Delete(_ context.Context, id uuid.UUID) error { return r.remove(id) }

func (r *LeaveRepository) FindByID(_ context.Context, id uuid.UUID) (*leave.Request, error) {
	return r.get(id)
}

func (r *LeaveRepository) List(_ context.Context, f leave.Filter) ([]*leave.Request, int64, error) {
	found, err := r.filter(func(req *leave.Request) bool {
		if f.EmployeeID != nil && req.EmployeeID != *f.EmployeeID {
			return false
		}
		if f.Status != "" && req.Status != f.Status {
			return false
		}
		if f.Type != "" && req.Type != f.Type {
			return false
		}
		if f.From != nil && req.EndDate.Before(shared.DateOf(*f.From)) {
			return false
		}
		if f.To != nil && req.StartDate.After(shared.DateOf(*f.To)) {
			return false
		}
		if f.Search != "" && !contains(string(req.Type)+" "+req.Reason+" "+string(req.Status), f.Search) {
			return false
		}
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(found, func(i, j int) bool { return found[i].CreatedAt.After(found[j].CreatedAt) })
	return page(found, f.Filter), int64(len(found)), nil
}

func (r *LeaveRepository) FindByEmployee(_ context.Context, employeeID uuid.UUID) ([]*leave.Request, error) {
	found, err := r.filter(func(req *leave.Request) bool { return req.EmployeeID == employeeID })
	sort.Slice(found, func(i, j int) bool { return found[i].StartDate.After(found[j].StartDate) })
	return found, err
}

func (r *LeaveRepository) FindApprovedBetween(_ context.Context, from, to time.Time) ([]*leave.Request, error) {
	from, to = shared.DateOf(from), shared.DateOf(to)
	found, err := r.filter(func(req *leave.Request) bool {
		return req.IsApproved() && !req.StartDate.After(to) && !req.EndDate.Before(from)
	})
	sort.Slice(found, func(i, j int) bool { return found[i].StartDate.Before(found[j].StartDate) })
	return found, err
}

// AttendanceRepository is an in-memory attendance.Repository
type AttendanceRepository struct{ store[*attendance.Record] }

// NewAttendanceRepository creates an empty AttendanceRepository
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{newStore[*attendance.Record]()}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *attendance.Record) error {
	if _, err := r.FindByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date); err == nil {
		return shared.NewDomainError("ATTENDANCE_EXISTS", "Attendance already recorded for this date")
	}
	return r.put(rec.ID, rec, false)
}

func (r *AttendanceRepository) Update(_ context.Context, rec *attendance.Record) error {
	return r.put(rec.ID, rec, true)
}

func (r *AttendanceRepository) Delete(_ context.Context, id uuid.UUID) error { return r.remove(id) }

func (r *AttendanceRepository) FindByID(_ context.Context, id uuid.UUID) (*attendance.Record, error) {
	return r.get(id)
}

func (r *AttendanceRepository) FindByEmployeeAndDate(_ context.Context, employeeID uuid.UUID, date time.Time) (*attendance.Record, error) {
	day := shared.DateOf(date)
	found, err := r.filter(func(rec *attendance.Record) bool {
		return rec.EmployeeID == employeeID && rec.Date.Equal(day)
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, shared.ErrNotFound
	}
	return found[0], nil
}

func (r *AttendanceRepository) Find(_ context.Context, f attendance.Filter) ([]*attendance.Record, error) {
	ids := make(map[uuid.UUID]bool, len(f.EmployeeIDs))
	for _, id := range f.EmployeeIDs {
		ids[id] = true
	}
	found, err := r.filter(func(rec *attendance.Record) bool {
		if f.EmployeeID != nil && rec.EmployeeID != *f.EmployeeID {
			return false
		}
		if len(ids) > 0 && !ids[rec.EmployeeID] {
			return false
		}
		if f.From != nil && rec.Date.Before(shared.DateOf(*f.From)) {
			return false
		}
		if f.To != nil && rec.Date.After(shared.DateOf(*f.To)) {
			return false
		}
		return f.Status == "" || rec.Status == f.Status
	})
	sort.Slice(found, func(i, j int) bool {
		if !found[i].Date.Equal(found[j].Date) {
			return found[i].Date.Before(found[j].Date)
		}
		return found[i].EmployeeID.String() < found[j].EmployeeID.String()
	})
	return found, err
}

// HolidayRepository is an in-memory holiday.Repository
type HolidayRepository struct{ store[*holiday.Holiday] }

// NewHolidayRepository creates an empty HolidayRepository
func NewHolidayRepository() *HolidayRepository {
	return &HolidayRepository{newStore[*holiday.Holiday]()}
}

func (r *HolidayRepository) Create(_ context.Context, h *holiday.Holiday) error {
	return r.put(h.ID, h, false)
}

func (r *HolidayRepository) Update(_ context.Context, h *holiday.Holiday) error {
	return r.put(h.ID, h, true)
}

func (r *HolidayRepository) Delete(_ context.Context, id uuid.UUID) error { return r.remove(id) }

func (r *HolidayRepository) FindByID(_ context.Context, id uuid.UUID) (*holiday.Holiday, error) {
	return r.get(id)
}

func (r *HolidayRepository) FindByDate(_ context.Context, date time.Time) (*holiday.Holiday, error) {
	day := shared.DateOf(date)
	found, err := r.filter(func(h *holiday.Holiday) bool { return h.Date.Equal(day) })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, shared.ErrNotFound
	}
	return found[0], nil
}

func (r *HolidayRepository) FindAll(_ context.Context, year int) ([]*holiday.Holiday, error) {
	found, err := r.filter(func(h *holiday.Holiday) bool { return year == 0 || h.Date.Year() == year })
	sortHolidays(found)
	return found, err
}

func (r *HolidayRepository) FindFrom(_ context.Context, from time.Time, limit int) ([]*holiday.Holiday, error) {
	day := shared.DateOf(from)
	found, err := r.filter(func(h *holiday.Holiday) bool { return !h.Date.Before(day) })
	sortHolidays(found)
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found, err
}

func sortHolidays(hs []*holiday.Holiday) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date) })
}

// SettingsRepository is an in-memory payroll.SettingsRepository
type SettingsRepository struct {
	mu       sync.Mutex
	settings *payroll.SystemSettings
	err      error
}

// NewSettingsRepository creates a repository with nothing saved
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// SetError makes every later call fail with err
func (r *SettingsRepository) SetError(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *SettingsRepository) Get(_ context.Context) (*payroll.SystemSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.settings == nil {
		return nil, shared.ErrNotFound
	}
	cp := *r.settings
	return &cp, nil
}

func (r *SettingsRepository) Save(_ context.Context, s *payroll.SystemSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	s.Version++
	cp := *s
	r.settings = &cp
	return nil
}

// ChallanRepository is an in-memory payroll.ChallanRepository
type ChallanRepository struct{ store[*payroll.Challan] }

// NewChallanRepository creates an empty ChallanRepository
func NewChallanRepository() *ChallanRepository {
	return &ChallanRepository{newStore[*payroll.Challan]()}
}

func (r *ChallanRepository) Create(_ context.Context, c *payroll.Challan) error {
	return r.put(c.ID, c, false)
}

func (r *ChallanRepository) FindByID(_ context.Context, id uuid.UUID) (*payroll.Challan, error) {
	return r.get(id)
}

func (r *ChallanRepository) FindByPeriod(_ context.Context, kind payroll.ChallanKind, year int, month time.Month) ([]*payroll.Challan, error) {
	found, err := r.filter(func(c *payroll.Challan) bool {
		return c.Kind == kind && (year == 0 || c.PeriodYear == year) && (month == 0 || c.PeriodMonth == month)
	})
	sort.Slice(found, func(i, j int) bool { return found[i].UploadedAt.After(found[j].UploadedAt) })
	return found, err
}

var (
	_ organization.UnitRepository       = (*UnitRepository)(nil)
	_ organization.DepartmentRepository = (*DepartmentRepository)(nil)
	_ employee.Repository               = (*EmployeeRepository)(nil)
	_ leave.Repository                  = (*LeaveRepository)(nil)
	_ attendance.Repository             = (*AttendanceRepository)(nil)
	_ holiday.Repository                = (*HolidayRepository)(nil)
	_ payroll.SettingsRepository        = (*SettingsRepository)(nil)
	_ payroll.ChallanRepository         = (*ChallanRepository)(nil)
)
