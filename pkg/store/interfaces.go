package store

import (
	"context"

	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/redhat-data-and-ai/coursenaut/pkg/store UserStoreInterface,CourseStoreInterface,StoreInterface

// UserStoreInterface defines the user lookups and mutations.
// This interface enables mocking in tests.
type UserStoreInterface interface {
	// Load replaces in-memory state with the persisted users document
	Load(ctx context.Context) error

	// GetByID returns a copy of the user with the given id
	GetByID(ctx context.Context, id int) (types.User, bool)

	// GetStudentByID returns false if the id is unknown or not a student
	GetStudentByID(ctx context.Context, id int) (*types.Student, bool)

	// GetInstructorByID returns false if the id is unknown or not an instructor
	GetInstructorByID(ctx context.Context, id int) (*types.Instructor, bool)

	// GetByEmail matches the email case-insensitively
	GetByEmail(ctx context.Context, email string) (types.User, bool)

	ExistsEmail(ctx context.Context, email string) bool

	// GetAll returns copies of all users ordered by id
	GetAll(ctx context.Context) []types.User

	NextUserID(ctx context.Context) int

	// SaveOrUpdate upserts by id and rewrites the users document
	SaveOrUpdate(ctx context.Context, user types.User) error

	RecordQuizAttempt(ctx context.Context, studentID int, attempt types.QuizAttempt) error

	MarkLessonCompleted(ctx context.Context, studentID int, lessonID string) (bool, error)

	HasPassedLesson(ctx context.Context, studentID int, lessonID string, passingPercentage int) bool
}

// CourseStoreInterface defines course, lesson and enrollment operations.
// Operations that touch users report the user-side result as a BackRef.
type CourseStoreInterface interface {
	// Load replaces in-memory state and re-derives the id counters
	Load(ctx context.Context) error

	NextCourseID() string
	NextLessonID() string

	GetCourseByID(ctx context.Context, courseID string) (*types.Course, bool)
	GetAllCourses(ctx context.Context) []*types.Course

	// GetVisibleCourses returns approved courses only
	GetVisibleCourses(ctx context.Context) []*types.Course

	SaveOrUpdateCourse(ctx context.Context, course *types.Course) error

	// CreateCourse stores the course even when the instructor cannot be updated
	CreateCourse(ctx context.Context, instructorID, title, description string) (*types.Course, BackRef, error)

	// EditCourse returns ErrUnauthorized unless instructorID owns the course
	EditCourse(ctx context.Context, instructorID, courseID, title, description string) (*types.Course, error)

	// DeleteCourse removes the course and cascades to its instructor and students
	DeleteCourse(ctx context.Context, courseID string) (*CascadeResult, error)

	ApproveCourse(ctx context.Context, courseID string) (*types.Course, error)
	RejectCourse(ctx context.Context, courseID string) (*types.Course, error)

	// EnrollStudentInCourse returns ErrNotFound when the course is missing
	EnrollStudentInCourse(ctx context.Context, courseID, studentID string) (BackRef, error)

	// UnenrollStudentFromCourse ignores a missing course
	UnenrollStudentFromCourse(ctx context.Context, courseID, studentID string) (BackRef, error)

	GetEnrolledStudentIDs(ctx context.Context, courseID string) []string
	GetEnrolledStudentsForCourse(ctx context.Context, courseID string) []*types.Student

	AddLesson(ctx context.Context, instructorID, courseID, title, content string) (*types.Lesson, error)
	EditLesson(ctx context.Context, instructorID, courseID, lessonID, title, content string) (*types.Lesson, error)
	DeleteLesson(ctx context.Context, instructorID, courseID, lessonID string) error
	SetLessonQuiz(ctx context.Context, instructorID, courseID, lessonID string, quiz *types.Quiz) (*types.Lesson, error)
	SetLessonResources(ctx context.Context, instructorID, courseID, lessonID string, resources []string) (*types.Lesson, error)

	SubmitQuizAttempt(ctx context.Context, studentID int, courseID, lessonID string, answers []int) (*types.QuizAttempt, error)
	IsCourseCompleted(ctx context.Context, studentID int, courseID string) (bool, error)
	IssueCertificate(ctx context.Context, studentID int, courseID string) (*types.Certificate, error)
}

// StoreInterface is the main interface used by consumers.
type StoreInterface interface {
	GetUserStore() UserStoreInterface
	GetCourseStore() CourseStoreInterface

	// RepairBackReferences rebuilds user-side course lists from the courses
	RepairBackReferences(ctx context.Context) (*RepairReport, error)
}
