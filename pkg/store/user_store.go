package store

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

// UserStore owns every user and rewrites the whole users document after
// each mutation. Values handed out are copies.
type UserStore struct {
	mu       sync.RWMutex
	backend  docstore.Backend
	document string
	users    map[int]types.User
}

// newUserStore creates an empty UserStore; call Load to read the document.
func newUserStore(backend docstore.Backend, document string) *UserStore {
	return &UserStore{
		backend:  backend,
		document: document,
		users:    make(map[int]types.User),
	}
}

// Load replaces the in-memory users with the persisted document.
// A missing document loads as empty.
func (s *UserStore) Load(ctx context.Context) error {
	users, err := loadDocument(ctx, s.backend, s.document, decodeUsers)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	logger.Logger(ctx).WithFields(logrus.Fields{
		"document": s.document,
		"users":    len(users),
	}).Info("loaded users")
	return nil
}

// persist rewrites the users document. Caller must hold s.mu.
func (s *UserStore) persist(ctx context.Context) error {
	data, err := encodeUsers(s.users)
	if err != nil {
		return err
	}
	return writeDocument(ctx, s.backend, s.document, data)
}

func (s *UserStore) GetByID(_ context.Context, id int) (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// GetStudentByID returns false when the id is unknown or belongs to another role.
func (s *UserStore) GetStudentByID(_ context.Context, id int) (*types.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.users[id].(*types.Student)
	if !ok {
		return nil, false
	}
	return st.CloneStudent(), true
}

// GetInstructorByID returns false when the id is unknown or belongs to another role.
func (s *UserStore) GetInstructorByID(_ context.Context, id int) (*types.Instructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in, ok := s.users[id].(*types.Instructor)
	if !ok {
		return nil, false
	}
	return in.CloneInstructor(), true
}

// GetByEmail matches case-insensitively.
func (s *UserStore) GetByEmail(_ context.Context, email string) (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Base().Email, strings.TrimSpace(email)) {
			return u.Clone(), true
		}
	}
	return nil, false
}

func (s *UserStore) ExistsEmail(ctx context.Context, email string) bool {
	_, ok := s.GetByEmail(ctx, email)
	return ok
}

// GetAll returns copies of every user ordered by id.
func (s *UserStore) GetAll(_ context.Context) []types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]types.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.users[id].Clone())
	}
	return out
}

// NextUserID returns one more than the largest known user id.
func (s *UserStore) NextUserID(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	next := 1
	for id := range s.users {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// SaveOrUpdate upserts a copy of user by id and persists.
func (s *UserStore) SaveOrUpdate(ctx context.Context, user types.User) (err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "save_user", err) }()

	if user == nil || user.ID() <= 0 {
		return fmt.Errorf("%w: user with a positive id is required", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID()] = user.Clone()
	return s.persist(ctx)
}

// RecordQuizAttempt appends attempt to the student's history. No attempt
// limit is applied here.
func (s *UserStore) RecordQuizAttempt(ctx context.Context, studentID int, attempt types.QuizAttempt) (err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "record_quiz_attempt", err) }()

	outcome, err := updateUser(ctx, s, studentID, func(st *types.Student) (bool, error) {
		st.AddQuizAttempt(attempt)
		return true, nil
	})
	if outcome == BackRefSkippedNoUser {
		return fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}
	return err
}

// MarkLessonCompleted reports whether the lesson was newly marked.
func (s *UserStore) MarkLessonCompleted(ctx context.Context, studentID int, lessonID string) (marked bool, err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "mark_lesson_completed", err) }()

	outcome, err := updateUser(ctx, s, studentID, func(st *types.Student) (bool, error) {
		return st.MarkLessonCompleted(lessonID), nil
	})
	if outcome == BackRefSkippedNoUser {
		return false, fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}
	return outcome == BackRefApplied || outcome == BackRefFailed, err
}

// HasPassedLesson is false for unknown students.
func (s *UserStore) HasPassedLesson(ctx context.Context, studentID int, lessonID string, passingPercentage int) bool {
	st, ok := s.GetStudentByID(ctx, studentID)
	if !ok {
		return false
	}
	return st.HasPassedLesson(lessonID, passingPercentage)
}

// repairBackReferences overwrites the course lists of every instructor and
// student with idx and persists once if anything changed.
func (s *UserStore) repairBackReferences(ctx context.Context, idx backRefIndex) (*RepairReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &RepairReport{}
	for id, u := range s.users {
		switch v := u.(type) {
		case *types.Instructor:
			want := orEmpty(idx.created[id])
			if slices.Equal(v.CreatedCourses, want) {
				continue
			}
			in := v.CloneInstructor()
			in.CreatedCourses = slices.Clone(want)
			s.users[id] = in
			report.InstructorsUpdated++
		case *types.Student:
			want := mergeOrdered(v.EnrolledCourseIDs, idx.enrolled[id])
			if slices.Equal(v.EnrolledCourseIDs, want) {
				continue
			}
			st := v.CloneStudent()
			st.EnrolledCourseIDs = want
			s.users[id] = st
			report.StudentsUpdated++
		}
	}

	if report.InstructorsUpdated == 0 && report.StudentsUpdated == 0 {
		return report, nil
	}
	return report, s.persist(ctx)
}

// mergeOrdered keeps the entries of current that appear in want, in their
// current order, followed by the remaining entries of want.
func mergeOrdered(current, want []string) []string {
	out := make([]string, 0, len(want))
	for _, id := range current {
		if slices.Contains(want, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	for _, id := range want {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// updateUser applies fn to a copy of the user with the given id when that
// user is a T. The copy replaces the stored user only when fn reports a change.
func updateUser[T types.User](ctx context.Context, s *UserStore, id int, fn func(T) (bool, error)) (BackRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[id]
	if !ok {
		return BackRefSkippedNoUser, nil
	}
	typed, ok := current.Clone().(T)
	if !ok {
		return BackRefSkippedNoUser, nil
	}

	changed, err := fn(typed)
	if err != nil {
		return BackRefUnchanged, err
	}
	if !changed {
		return BackRefUnchanged, nil
	}

	s.users[id] = typed
	if err := s.persist(ctx); err != nil {
		return BackRefFailed, err
	}
	return BackRefApplied, nil
}
