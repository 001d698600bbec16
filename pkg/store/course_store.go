package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

const issueDateLayout = "2006-01-02"

// CourseStore owns every course and keeps the user-side copies of course
// relationships in sync through UserStore. It holds its own lock while
// calling into UserStore; UserStore never calls back.
type CourseStore struct {
	mu       sync.RWMutex
	backend  docstore.Backend
	document string
	users    *UserStore
	now      func() time.Time

	courses      map[string]*types.Course
	nextCourseID int
	nextLessonID int
}

func newCourseStore(backend docstore.Backend, document string, users *UserStore, now func() time.Time) *CourseStore {
	return &CourseStore{
		backend:      backend,
		document:     document,
		users:        users,
		now:          now,
		courses:      make(map[string]*types.Course),
		nextCourseID: 1,
		nextLessonID: 1,
	}
}

// Load replaces the in-memory courses with the persisted document and
// derives both id counters as max(numeric id)+1. Non-numeric ids count as 0.
func (s *CourseStore) Load(ctx context.Context) error {
	courses, err := loadDocument(ctx, s.backend, s.document, decodeCourses)
	if err != nil {
		return err
	}

	maxCourse, maxLesson := 0, 0
	for id, c := range courses {
		maxCourse = max(maxCourse, parseIDOrZero(id))
		for _, l := range c.Lessons {
			maxLesson = max(maxLesson, parseIDOrZero(l.LessonID))
		}
	}

	s.mu.Lock()
	s.courses = courses
	s.nextCourseID = maxCourse + 1
	s.nextLessonID = maxLesson + 1
	s.mu.Unlock()

	logger.Logger(ctx).WithFields(logrus.Fields{
		"document":       s.document,
		"courses":        len(courses),
		"next_course_id": maxCourse + 1,
		"next_lesson_id": maxLesson + 1,
	}).Info("loaded courses")
	return nil
}

// persist rewrites the courses document. Caller must hold s.mu.
func (s *CourseStore) persist(ctx context.Context) error {
	data, err := encodeCourses(s.courses)
	if err != nil {
		return err
	}
	return writeDocument(ctx, s.backend, s.document, data)
}

// NextCourseID allocates a course id. Counters are process-local and are
// only re-derived on Load.
func (s *CourseStore) NextCourseID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocCourseID()
}

func (s *CourseStore) NextLessonID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocLessonID()
}

func (s *CourseStore) allocCourseID() string {
	id := s.nextCourseID
	s.nextCourseID++
	return strconv.Itoa(id)
}

func (s *CourseStore) allocLessonID() string {
	id := s.nextLessonID
	s.nextLessonID++
	return strconv.Itoa(id)
}

func (s *CourseStore) GetCourseByID(_ context.Context, courseID string) (*types.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[courseID]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// GetAllCourses returns copies ordered by numeric course id.
func (s *CourseStore) GetAllCourses(_ context.Context) []*types.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCourses(sortedCourses(s.courses), nil)
}

// GetVisibleCourses returns the approved courses.
func (s *CourseStore) GetVisibleCourses(_ context.Context) []*types.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCourses(sortedCourses(s.courses), func(c *types.Course) bool {
		return c.Status == types.CourseStatusApproved
	})
}

func cloneCourses(in []*types.Course, keep func(*types.Course) bool) []*types.Course {
	out := make([]*types.Course, 0, len(in))
	for _, c := range in {
		if keep == nil || keep(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// SaveOrUpdateCourse upserts a copy of course by id without touching any
// back-reference.
func (s *CourseStore) SaveOrUpdateCourse(ctx context.Context, course *types.Course) (err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "save_course", err) }()

	if course == nil || strings.TrimSpace(course.CourseID) == "" {
		return fmt.Errorf("%w: course with an id is required", ErrInvalidArgument)
	}
	c := course.Clone()
	if c.Status == "" {
		c.Status = types.CourseStatusPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses[c.CourseID] = c
	return s.persist(ctx)
}

// CreateCourse stores a new PENDING course owned by instructorID and then
// tries to record it in the instructor's created courses. The course is
// created whatever the outcome of that second step.
func (s *CourseStore) CreateCourse(ctx context.Context, instructorID, title, description string) (_ *types.Course, _ BackRef, err error) {
	const op = "create_course"
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c := types.NewCourse(s.allocCourseID(), title, description, instructorID)
	s.courses[c.CourseID] = c

	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"course_id":     c.CourseID,
		"instructor_id": instructorID,
	})

	outcome, refErr := s.linkInstructor(ctx, op, instructorID, c.CourseID, func(in *types.Instructor, courseID int) bool {
		return in.AddCreatedCourse(courseID)
	})

	if err := s.persist(ctx); err != nil {
		return c.Clone(), outcome, errors.Join(err, refErr)
	}
	log.WithField("instructor_ref", outcome.String()).Info("created course")
	return c.Clone(), outcome, refErr
}

// EditCourse replaces title and description. instructorID must equal the
// stored owner id exactly.
func (s *CourseStore) EditCourse(ctx context.Context, instructorID, courseID, title, description string) (_ *types.Course, err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "edit_course", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.ownedCourse(instructorID, courseID)
	if err != nil {
		return nil, err
	}
	c.Title = title
	c.Description = description

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// DeleteCourse removes the course, then removes it from its instructor's
// created courses and from each enrolled student's course list. Back-reference
// failures do not stop the cascade; the courses document is written last.
func (s *CourseStore) DeleteCourse(ctx context.Context, courseID string) (_ *CascadeResult, err error) {
	const op = "delete_course"
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[courseID]
	if !ok {
		return nil, fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}
	delete(s.courses, courseID)

	result := &CascadeResult{
		Course:   c.Clone(),
		Students: make(map[string]BackRef, len(c.Students)),
	}

	var errs []error
	result.Instructor, err = s.linkInstructor(ctx, op, c.InstructorID, courseID, func(in *types.Instructor, id int) bool {
		return in.RemoveCreatedCourse(id)
	})
	errs = append(errs, err)

	for _, sid := range c.Students {
		result.Students[sid], err = s.linkStudent(ctx, op, sid, func(st *types.Student) bool {
			return st.UnenrollFromCourse(courseID)
		})
		errs = append(errs, err)
	}

	errs = append(errs, s.persist(ctx))

	logger.Logger(ctx).WithFields(logrus.Fields{
		"course_id":      courseID,
		"instructor_ref": result.Instructor.String(),
		"students":       len(c.Students),
	}).Info("deleted course")

	return result, errors.Join(errs...)
}

// EnrollStudentInCourse adds studentID to the course once. Only a new
// enrollment updates the student's own course list. Unlike
// UnenrollStudentFromCourse, a missing course is an error.
func (s *CourseStore) EnrollStudentInCourse(ctx context.Context, courseID, studentID string) (_ BackRef, err error) {
	const op = "enroll_student"
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[courseID]
	if !ok {
		return BackRefUnchanged, fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}
	if !c.EnrollStudent(studentID) {
		return BackRefUnchanged, nil
	}

	outcome, refErr := s.linkStudent(ctx, op, studentID, func(st *types.Student) bool {
		return st.EnrollInCourse(courseID)
	})
	return outcome, errors.Join(refErr, s.persist(ctx))
}

// UnenrollStudentFromCourse removes studentID from the course and the
// course from the student's list. A missing course is a no-op.
func (s *CourseStore) UnenrollStudentFromCourse(ctx context.Context, courseID, studentID string) (_ BackRef, err error) {
	const op = "unenroll_student"
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[courseID]
	if !ok {
		logger.Logger(ctx).WithField("course_id", courseID).Debug("unenroll from unknown course ignored")
		return BackRefUnchanged, nil
	}
	c.UnenrollStudent(studentID)

	outcome, refErr := s.linkStudent(ctx, op, studentID, func(st *types.Student) bool {
		return st.UnenrollFromCourse(courseID)
	})
	return outcome, errors.Join(refErr, s.persist(ctx))
}

func (s *CourseStore) GetEnrolledStudentIDs(_ context.Context, courseID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[courseID]
	if !ok {
		return []string{}
	}
	return orEmpty(append([]string(nil), c.Students...))
}

// GetEnrolledStudentsForCourse resolves enrolled ids to students, dropping
// ids that are not numeric or do not name a student.
func (s *CourseStore) GetEnrolledStudentsForCourse(ctx context.Context, courseID string) []*types.Student {
	out := []*types.Student{}
	for _, sid := range s.GetEnrolledStudentIDs(ctx, courseID) {
		id, ok := ParseRef(sid)
		if !ok {
			continue
		}
		if st, ok := s.users.GetStudentByID(ctx, id); ok {
			out = append(out, st)
		}
	}
	return out
}

// ApproveCourse moves a PENDING course to APPROVED.
func (s *CourseStore) ApproveCourse(ctx context.Context, courseID string) (*types.Course, error) {
	return s.setStatus(ctx, "approve_course", courseID, types.CourseStatusApproved)
}

// RejectCourse moves a PENDING course to REJECTED.
func (s *CourseStore) RejectCourse(ctx context.Context, courseID string) (*types.Course, error) {
	return s.setStatus(ctx, "reject_course", courseID, types.CourseStatusRejected)
}

func (s *CourseStore) setStatus(ctx context.Context, op, courseID string, next types.CourseStatus) (_ *types.Course, err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[courseID]
	if !ok {
		return nil, fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}
	if !c.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, next)
	}
	c.Status = next

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	logger.Logger(ctx).WithFields(logrus.Fields{
		"course_id": courseID,
		"status":    next,
	}).Info("course status changed")
	return c.Clone(), nil
}

// ownedCourse resolves courseID and checks its owner. Caller must hold s.mu.
func (s *CourseStore) ownedCourse(instructorID, courseID string) (*types.Course, error) {
	c, ok := s.courses[courseID]
	if !ok {
		return nil, fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}
	if c.InstructorID != instructorID {
		return nil, fmt.Errorf("%w: instructor %s does not own course %s", ErrUnauthorized, instructorID, courseID)
	}
	return c, nil
}

// ownedLesson resolves the course, its owner and then the lesson. Caller must hold s.mu.
func (s *CourseStore) ownedLesson(instructorID, courseID, lessonID string) (*types.Lesson, error) {
	c, err := s.ownedCourse(instructorID, courseID)
	if err != nil {
		return nil, err
	}
	l, ok := c.Lesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: lesson %s in course %s", ErrNotFound, lessonID, courseID)
	}
	return l, nil
}

func (s *CourseStore) AddLesson(ctx context.Context, instructorID, courseID, title, content string) (_ *types.Lesson, err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "add_lesson", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.ownedCourse(instructorID, courseID)
	if err != nil {
		return nil, err
	}
	lesson := types.Lesson{
		LessonID:  s.allocLessonID(),
		Title:     title,
		Content:   content,
		Resources: []string{},
	}
	c.Lessons = append(c.Lessons, lesson)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	out := lesson.Clone()
	return &out, nil
}

func (s *CourseStore) EditLesson(ctx context.Context, instructorID, courseID, lessonID, title, content string) (*types.Lesson, error) {
	return s.mutateLesson(ctx, "edit_lesson", instructorID, courseID, lessonID, func(l *types.Lesson) error {
		l.Title = title
		l.Content = content
		return nil
	})
}

// SetLessonQuiz attaches quiz to the lesson; a nil quiz removes it. A zero
// passing percentage is replaced by the default.
func (s *CourseStore) SetLessonQuiz(ctx context.Context, instructorID, courseID, lessonID string, quiz *types.Quiz) (*types.Lesson, error) {
	return s.mutateLesson(ctx, "set_lesson_quiz", instructorID, courseID, lessonID, func(l *types.Lesson) error {
		if quiz == nil {
			l.Quiz = nil
			return nil
		}
		if err := validateQuiz(quiz); err != nil {
			return err
		}
		q := quiz.Clone()
		if q.PassingPercentage == 0 {
			q.PassingPercentage = types.DefaultPassingPercentage
		}
		l.Quiz = &q
		return nil
	})
}

func (s *CourseStore) SetLessonResources(ctx context.Context, instructorID, courseID, lessonID string, resources []string) (*types.Lesson, error) {
	return s.mutateLesson(ctx, "set_lesson_resources", instructorID, courseID, lessonID, func(l *types.Lesson) error {
		l.Resources = orEmpty(append([]string(nil), resources...))
		return nil
	})
}

func (s *CourseStore) mutateLesson(ctx context.Context, op, instructorID, courseID, lessonID string, fn func(*types.Lesson) error) (_ *types.Lesson, err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, op, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ownedLesson(instructorID, courseID, lessonID)
	if err != nil {
		return nil, err
	}
	if err := fn(l); err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	out := l.Clone()
	return &out, nil
}

func (s *CourseStore) DeleteLesson(ctx context.Context, instructorID, courseID, lessonID string) (err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "delete_lesson", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.ownedCourse(instructorID, courseID)
	if err != nil {
		return err
	}
	if !c.RemoveLesson(lessonID) {
		return fmt.Errorf("%w: lesson %s in course %s", ErrNotFound, lessonID, courseID)
	}
	return s.persist(ctx)
}

func validateQuiz(q *types.Quiz) error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: quiz needs at least one question", ErrInvalidArgument)
	}
	if q.PassingPercentage < 0 || q.PassingPercentage > 100 {
		return fmt.Errorf("%w: passing percentage %d out of range", ErrInvalidArgument, q.PassingPercentage)
	}
	if q.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts cannot be negative", ErrInvalidArgument)
	}
	for i, qs := range q.Questions {
		if qs.CorrectOptionIndex < 0 || qs.CorrectOptionIndex >= len(qs.Options) {
			return fmt.Errorf("%w: question %d has no option %d", ErrInvalidArgument, i, qs.CorrectOptionIndex)
		}
	}
	return nil
}

// SubmitQuizAttempt grades answers against the lesson quiz and records the
// attempt. The student must be enrolled in the course and must not have
// used up the quiz's MaxAttempts. A passing attempt also marks the lesson
// completed.
func (s *CourseStore) SubmitQuizAttempt(ctx context.Context, studentID int, courseID, lessonID string, answers []int) (_ *types.QuizAttempt, err error) {
	const op = "submit_quiz_attempt"
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, op, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[courseID]
	if !ok {
		return nil, fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}
	if !c.IsStudentEnrolled(strconv.Itoa(studentID)) {
		return nil, fmt.Errorf("%w: student %d is not enrolled in course %s", ErrUnauthorized, studentID, courseID)
	}
	l, ok := c.Lesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: lesson %s in course %s", ErrNotFound, lessonID, courseID)
	}
	if l.Quiz == nil {
		return nil, fmt.Errorf("%w: lesson %s has no quiz", ErrNotFound, lessonID)
	}
	quiz := l.Quiz
	if len(answers) != quiz.TotalQuestions() {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidArgument, quiz.TotalQuestions(), len(answers))
	}

	attempt := grade(quiz, lessonID, answers, s.now())

	outcome, err := updateUser(ctx, s.users, studentID, func(st *types.Student) (bool, error) {
		if quiz.MaxAttempts > 0 && len(st.AttemptsFor(lessonID)) >= quiz.MaxAttempts {
			return false, fmt.Errorf("%w: %d of %d used", ErrAttemptsExhausted, len(st.AttemptsFor(lessonID)), quiz.MaxAttempts)
		}
		st.AddQuizAttempt(attempt)
		if attempt.Score >= quiz.PassingPercentage {
			st.MarkLessonCompleted(lessonID)
		}
		return true, nil
	})
	if outcome == BackRefSkippedNoUser {
		return nil, fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}
	if err != nil {
		return nil, err
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"student_id": studentID,
		"course_id":  courseID,
		"lesson_id":  lessonID,
		"score":      attempt.Score,
	}).Info("recorded quiz attempt")
	return &attempt, nil
}

func grade(q *types.Quiz, lessonID string, answers []int, at time.Time) types.QuizAttempt {
	correct := 0
	for i, qs := range q.Questions {
		if answers[i] == qs.CorrectOptionIndex {
			correct++
		}
	}
	total := q.TotalQuestions()
	score := 0
	if total > 0 {
		score = correct * 100 / total
	}
	return types.QuizAttempt{
		LessonID:       lessonID,
		Timestamp:      at.UnixMilli(),
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
	}
}

// IsCourseCompleted reports whether the student has completed every lesson
// of the course. A course without lessons counts as completed.
func (s *CourseStore) IsCourseCompleted(ctx context.Context, studentID int, courseID string) (bool, error) {
	c, ok := s.GetCourseByID(ctx, courseID)
	if !ok {
		return false, fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}
	st, ok := s.users.GetStudentByID(ctx, studentID)
	if !ok {
		return false, fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}
	return courseCompleted(st, c), nil
}

func courseCompleted(st *types.Student, c *types.Course) bool {
	for _, l := range c.Lessons {
		if !st.HasCompletedLesson(l.LessonID) {
			return false
		}
	}
	return true
}

// IssueCertificate returns the student's certificate for the course,
// issuing one when the course is completed and none exists yet.
func (s *CourseStore) IssueCertificate(ctx context.Context, studentID int, courseID string) (_ *types.Certificate, err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "issue_certificate", err) }()

	c, ok := s.GetCourseByID(ctx, courseID)
	if !ok {
		return nil, fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}

	var cert types.Certificate
	outcome, err := updateUser(ctx, s.users, studentID, func(st *types.Student) (bool, error) {
		if existing, ok := st.CertificateFor(courseID); ok {
			cert = existing
			return false, nil
		}
		if !courseCompleted(st, c) {
			return false, fmt.Errorf("%w: student %d has not completed course %s", ErrInvalidArgument, studentID, courseID)
		}
		cert = types.Certificate{
			CertificateID: uuid.NewString(),
			StudentID:     studentID,
			CourseID:      courseID,
			IssueDate:     s.now().Format(issueDateLayout),
		}
		st.Certificates = append(st.Certificates, cert)
		return true, nil
	})
	if outcome == BackRefSkippedNoUser {
		return nil, fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}
