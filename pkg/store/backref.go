package store

import (
	"context"
	"sort"

	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

// BackRef reports what happened to the user-side copy of a course
// relationship. A course operation succeeds independently of its BackRef.
type BackRef int

const (
	// BackRefApplied means the user record was updated and persisted.
	BackRefApplied BackRef = iota + 1
	// BackRefUnchanged means the user already reflected the relationship.
	BackRefUnchanged
	// BackRefSkippedMalformedID means a referenced id was not numeric.
	BackRefSkippedMalformedID
	// BackRefSkippedNoUser means no user of the expected role has the id.
	BackRefSkippedNoUser
	// BackRefFailed means the user record changed in memory but could not be persisted.
	BackRefFailed
)

func (b BackRef) String() string {
	switch b {
	case BackRefApplied:
		return "applied"
	case BackRefUnchanged:
		return "unchanged"
	case BackRefSkippedMalformedID:
		return "skipped_malformed_id"
	case BackRefSkippedNoUser:
		return "skipped_no_user"
	case BackRefFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (b BackRef) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

const (
	relationInstructor = "instructor"
	relationStudent    = "student"
)

// CascadeResult describes a deleted course and how each of its back-references
// was handled.
type CascadeResult struct {
	Course     *types.Course      `json:"course"`
	Instructor BackRef            `json:"instructor"`
	Students   map[string]BackRef `json:"students"`
}

// RepairReport counts users whose back-references were rewritten by
// RepairBackReferences.
type RepairReport struct {
	InstructorsUpdated int `json:"instructorsUpdated"`
	StudentsUpdated    int `json:"studentsUpdated"`
}

func recordBackRef(ctx context.Context, operation, relation, ref string, outcome BackRef) {
	telemetry.GetStoreMetrics().RecordBackRef(ctx, operation, relation, outcome.String())

	log := logger.Logger(ctx).WithField("operation", operation).WithField(relation+"_id", ref)
	switch outcome {
	case BackRefSkippedMalformedID, BackRefSkippedNoUser:
		log.WithField("outcome", outcome.String()).Debug("skipped back-reference update")
	case BackRefFailed:
		log.Warn("failed to persist back-reference update")
	}
}

// linkStudent resolves a string student reference and applies fn to a copy
// of that student.
func (s *CourseStore) linkStudent(ctx context.Context, operation, studentRef string, fn func(*types.Student) bool) (BackRef, error) {
	id, ok := ParseRef(studentRef)
	if !ok {
		recordBackRef(ctx, operation, relationStudent, studentRef, BackRefSkippedMalformedID)
		return BackRefSkippedMalformedID, nil
	}
	outcome, err := updateUser(ctx, s.users, id, func(st *types.Student) (bool, error) {
		return fn(st), nil
	})
	recordBackRef(ctx, operation, relationStudent, studentRef, outcome)
	return outcome, err
}

// linkInstructor resolves the instructor reference and the numeric form of
// courseID, and applies fn to a copy of that instructor.
func (s *CourseStore) linkInstructor(ctx context.Context, operation, instructorRef, courseID string, fn func(*types.Instructor, int) bool) (BackRef, error) {
	instructorID, ok := ParseRef(instructorRef)
	if !ok {
		recordBackRef(ctx, operation, relationInstructor, instructorRef, BackRefSkippedMalformedID)
		return BackRefSkippedMalformedID, nil
	}
	numericCourseID, ok := ParseRef(courseID)
	if !ok {
		recordBackRef(ctx, operation, relationInstructor, instructorRef, BackRefSkippedMalformedID)
		return BackRefSkippedMalformedID, nil
	}
	outcome, err := updateUser(ctx, s.users, instructorID, func(in *types.Instructor) (bool, error) {
		return fn(in, numericCourseID), nil
	})
	recordBackRef(ctx, operation, relationInstructor, instructorRef, outcome)
	return outcome, err
}

// backRefIndex is the user-side view implied by the course collection.
type backRefIndex struct {
	created  map[int][]int
	enrolled map[int][]string
}

func indexCourses(courses []*types.Course) backRefIndex {
	idx := backRefIndex{
		created:  make(map[int][]int),
		enrolled: make(map[int][]string),
	}
	for _, c := range courses {
		if instructorID, ok := ParseRef(c.InstructorID); ok {
			if courseID, ok := ParseRef(c.CourseID); ok {
				idx.created[instructorID] = append(idx.created[instructorID], courseID)
			}
		}
		for _, sid := range c.Students {
			if studentID, ok := ParseRef(sid); ok {
				idx.enrolled[studentID] = append(idx.enrolled[studentID], c.CourseID)
			}
		}
	}
	for id := range idx.created {
		sort.Ints(idx.created[id])
	}
	return idx
}
