package organization

import "sort"

// DepartmentBucket holds the rows of one department heading
type DepartmentBucket[R any] struct {
	Name string
	Rows []R
}

// UnitBucket holds the department buckets of one unit heading
type UnitBucket[R any] struct {
	Name        string
	Departments []*DepartmentBucket[R]
}

// GroupByUnit buckets rows by unit then department name. Names sort
// alphabetically with UnassignedGroup last; rows keep their input order.
func GroupByUnit[R any](rows []R, key func(R) (unit, dept string)) []*UnitBucket[R] {
	var units []*UnitBucket[R]
	unitIdx := map[string]*UnitBucket[R]{}
	deptIdx := map[[2]string]*DepartmentBucket[R]{}
	for _, r := range rows {
		u, d := key(r)
		ub, ok := unitIdx[u]
		if !ok {
			ub = &UnitBucket[R]{Name: u}
			unitIdx[u] = ub
			units = append(units, ub)
		}
		db, ok := deptIdx[[2]string{u, d}]
		if !ok {
			db = &DepartmentBucket[R]{Name: d}
			deptIdx[[2]string{u, d}] = db
			ub.Departments = append(ub.Departments, db)
		}
		db.Rows = append(db.Rows, r)
	}
	sort.SliceStable(units, func(i, j int) bool { return groupLess(units[i].Name, units[j].Name) })
	for _, u := range units {
		sort.SliceStable(u.Departments, func(i, j int) bool { return groupLess(u.Departments[i].Name, u.Departments[j].Name) })
	}
	return units
}

func groupLess(a, b string) bool {
	if a == UnassignedGroup || b == UnassignedGroup {
		return b == UnassignedGroup && a != UnassignedGroup
	}
	return a < b
}
