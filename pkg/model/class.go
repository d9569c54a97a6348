package model

// ClassOffering is what one destination class is equipped to teach:
// the LV2/OPT codes it allows, and a positive quota per code meaning
// "at least one seat exists here". Quota also doubles as the expected
// headcount used by the audit's deviation report.
type ClassOffering struct {
	AllowedLV2 map[string]bool
	AllowedOPT map[string]bool
	QuotaLV2   map[string]int
	QuotaOPT   map[string]int
}

// OffersLV2 reports whether this class teaches LV2 code l with a seat
// available (quota > 0).
func (o ClassOffering) OffersLV2(l string) bool {
	return o.AllowedLV2[l] && o.QuotaLV2[l] > 0
}

// OffersOPT reports whether this class teaches OPT code p with a seat
// available (quota > 0).
func (o ClassOffering) OffersOPT(p string) bool {
	return o.AllowedOPT[p] && o.QuotaOPT[p] > 0
}

// Offerings is the derived per-class elective model plus the
// universal-LV2 set (codes offered, with positive quota, by every
// class — these never restrict mobility). Built once by
// offerings.Build and treated as a read-only snapshot for
// the remainder of a run.
type Offerings struct {
	ByClass      map[string]ClassOffering
	UniversalLV2 map[string]bool
}

// Class is a destination class: its name, target headcount, and its
// current ordered bag of student ids. Class does not own the
// Offerings for itself; callers look that up via Offerings.ByClass.
type Class struct {
	Name    string
	Target  int
	Members []string // ordered student ids
}

// Snapshot is the fully loaded, read-only input the core receives
// from ingestion: every student, the class roster, and the derived
// offerings. The optimizer never mutates a Snapshot; it mutates an
// Assignment built from one.
type Snapshot struct {
	Students     map[string]Student // by id
	StudentOrder []string           // stable iteration order
	ClassNames   []string           // stable iteration order
	Targets      map[string]int     // class name -> target headcount
	Offerings    Offerings
}

// Assignment is the mutable total function students -> classes that
// the optimizer exclusively owns during a run. ClassOf and Members
// are kept in sync by MoveStudent; callers must never write Members
// directly.
type Assignment struct {
	Snapshot *Snapshot
	ClassOf  map[string]string   // student id -> class name
	Members  map[string][]string // class name -> ordered student ids
}

// NewAssignment builds an Assignment from an initial
// class-name -> ordered student-id membership map.
func NewAssignment(snapshot *Snapshot, initial map[string][]string) *Assignment {
	a := &Assignment{
		Snapshot: snapshot,
		ClassOf:  make(map[string]string, len(snapshot.StudentOrder)),
		Members:  make(map[string][]string, len(snapshot.ClassNames)),
	}
	for _, className := range snapshot.ClassNames {
		ids := append([]string(nil), initial[className]...)
		a.Members[className] = ids
		for _, id := range ids {
			a.ClassOf[id] = className
		}
	}
	return a
}

// ClassMembers returns the ordered student ids currently in className.
func (a *Assignment) ClassMembers(className string) []string {
	return a.Members[className]
}

// StudentsIn resolves ClassMembers into Student values, in order.
func (a *Assignment) StudentsIn(className string) []Student {
	ids := a.Members[className]
	out := make([]Student, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.Snapshot.Students[id])
	}
	return out
}

// MoveStudent relocates studentID from its current class to
// toClass, preserving membership-list order of the untouched
// students. It is the optimizer's sole mutation primitive; the
// feasibility oracle must be consulted before calling it.
func (a *Assignment) MoveStudent(studentID, toClass string) {
	fromClass := a.ClassOf[studentID]
	if fromClass == toClass {
		return
	}
	a.Members[fromClass] = removeID(a.Members[fromClass], studentID)
	a.Members[toClass] = append(a.Members[toClass], studentID)
	a.ClassOf[studentID] = toClass
}

// Swap exchanges the classes of two students in one step — used by
// the two-way swap move so that partial application never leaves an
// odd headcount mid-evaluation. Three-way rotations move their
// students with MoveStudent instead.
func (a *Assignment) Swap(studentA, studentB string) {
	classA := a.ClassOf[studentA]
	classB := a.ClassOf[studentB]
	a.MoveStudent(studentA, classB)
	a.MoveStudent(studentB, classA)
}

func removeID(ids []string, target string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// CohortStats are derived once per run from the initial assignment:
// the ratio of female students and the cohort means of COM, TRA, and
// PART. The cost function compares each class against these.
type CohortStats struct {
	RatioF  float64
	MeanCOM float64
	MeanTRA float64
	MeanPART float64
}

// ComputeCohortStats aggregates CohortStats across every student
// currently in the assignment.
func ComputeCohortStats(a *Assignment) CohortStats {
	var total, female int
	var sumCOM, sumTRA, sumPART float64

	for _, id := range a.Snapshot.StudentOrder {
		s := a.Snapshot.Students[id]
		total++
		if s.Gender == GenderFemale {
			female++
		}
		sumCOM += s.COM()
		sumTRA += s.TRA()
		sumPART += s.PART()
	}

	if total == 0 {
		return CohortStats{}
	}

	return CohortStats{
		RatioF:   float64(female) / float64(total),
		MeanCOM:  sumCOM / float64(total),
		MeanTRA:  sumTRA / float64(total),
		MeanPART: sumPART / float64(total),
	}
}

// StableClassNames returns a's class names in the snapshot's original
// ingestion order — used whenever iteration order must not depend on
// map iteration (worst-class ties, partner search). Ties are broken
// by this order, not alphabetically.
func StableClassNames(a *Assignment) []string {
	names := make([]string, len(a.Snapshot.ClassNames))
	copy(names, a.Snapshot.ClassNames)
	return names
}
