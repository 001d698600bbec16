package store

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
)

const (
	DefaultUsersDocument   = "users.json"
	DefaultCoursesDocument = "courses.json"
)

// Store bundles the user and course stores of one logical database.
type Store struct {
	User   UserStoreInterface
	Course CourseStoreInterface

	users   *UserStore
	courses *CourseStore
}

type options struct {
	usersDocument   string
	coursesDocument string
	now             func() time.Time
}

type Option func(*options)

// WithDocuments overrides the document names used for users and courses.
func WithDocuments(users, courses string) Option {
	return func(o *options) {
		if users != "" {
			o.usersDocument = users
		}
		if courses != "" {
			o.coursesDocument = courses
		}
	}
}

// WithClock sets the time source for quiz attempts and certificates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Open creates both documents when missing and loads both stores.
func Open(ctx context.Context, backend docstore.Backend, opts ...Option) (*Store, error) {
	o := options{
		usersDocument:   DefaultUsersDocument,
		coursesDocument: DefaultCoursesDocument,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.usersDocument == o.coursesDocument {
		return nil, fmt.Errorf("%w: users and courses must use different documents", ErrInvalidArgument)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range []string{o.usersDocument, o.coursesDocument} {
		name := name
		g.Go(func() error {
			if err := docstore.Ensure(gctx, backend, name); err != nil {
				return fmt.Errorf("%w: %w", ErrPersistence, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	users := newUserStore(backend, o.usersDocument)
	courses := newCourseStore(backend, o.coursesDocument, users, o.now)
	s := &Store{
		User:    users,
		Course:  courses,
		users:   users,
		courses: courses,
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads both documents. The two loads are independent.
func (s *Store) Reload(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.users.Load(gctx) })
	g.Go(func() error { return s.courses.Load(gctx) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	return nil
}

// RepairBackReferences rewrites every instructor's created courses and every
// student's enrolled courses from the course collection, which is treated
// as the source of truth.
func (s *Store) RepairBackReferences(ctx context.Context) (_ *RepairReport, err error) {
	defer func() { telemetry.GetStoreMetrics().RecordMutation(ctx, "repair_back_references", err) }()

	idx := indexCourses(s.courses.GetAllCourses(ctx))
	report, err := s.users.repairBackReferences(ctx, idx)
	if err != nil {
		return nil, err
	}

	logger.Logger(ctx).WithField("instructors", report.InstructorsUpdated).
		WithField("students", report.StudentsUpdated).
		Info("repaired back-references")
	return report, nil
}

func (s *Store) GetUserStore() UserStoreInterface {
	return s.User
}

func (s *Store) GetCourseStore() CourseStoreInterface {
	return s.Course
}

// Compile-time interface compliance checks
var (
	_ UserStoreInterface   = (*UserStore)(nil)
	_ CourseStoreInterface = (*CourseStore)(nil)
	_ StoreInterface       = (*Store)(nil)
)
