// Package seed loads demo users and courses from a YAML fixture into a store.
package seed

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

type Fixture struct {
	Users   []User   `yaml:"users"`
	Courses []Course `yaml:"courses"`
}

type User struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Course references its instructor and students by email.
type Course struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Instructor  string   `yaml:"instructor"`
	Approved    bool     `yaml:"approved"`
	Lessons     []Lesson `yaml:"lessons"`
	Students    []string `yaml:"students"`
}

type Lesson struct {
	Title     string   `yaml:"title"`
	Content   string   `yaml:"content"`
	Resources []string `yaml:"resources"`
	Quiz      *Quiz    `yaml:"quiz"`
}

type Quiz struct {
	PassingPercentage int        `yaml:"passing_percentage"`
	MaxAttempts       int        `yaml:"max_attempts"`
	Questions         []Question `yaml:"questions"`
}

type Question struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// Result counts what Apply created. Existing users and courses are skipped.
type Result struct {
	UsersCreated   int
	CoursesCreated int
	Enrollments    int
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Apply creates the fixture through the store operations so back-references
// are maintained as in normal use. It can be run repeatedly: users are
// matched by email and courses by title and instructor.
func Apply(ctx context.Context, s store.StoreInterface, f *Fixture) (*Result, error) {
	users := s.GetUserStore()
	result := &Result{}

	for _, u := range f.Users {
		if users.ExistsEmail(ctx, u.Email) {
			continue
		}
		user, err := newUser(users.NextUserID(ctx), u)
		if err != nil {
			return result, err
		}
		if err := users.SaveOrUpdate(ctx, user); err != nil {
			return result, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		result.UsersCreated++
	}

	for _, c := range f.Courses {
		created, enrolled, err := applyCourse(ctx, s, c)
		if err != nil {
			return result, err
		}
		if created {
			result.CoursesCreated++
		}
		result.Enrollments += enrolled
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"users_created":   result.UsersCreated,
		"courses_created": result.CoursesCreated,
		"enrollments":     result.Enrollments,
	}).Info("applied seed fixture")
	return result, nil
}

func newUser(id int, u User) (types.User, error) {
	role, err := types.ParseRole(u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
	}
	params := types.AccountParams{UserID: id, Username: u.Username, Email: u.Email, Password: u.Password}

	var user types.User
	switch role {
	case types.RoleStudent:
		user, err = types.NewStudent(params)
	case types.RoleInstructor:
		user, err = types.NewInstructor(params)
	default:
		user, err = types.NewAdmin(params)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
	}
	return user, nil
}

func applyCourse(ctx context.Context, s store.StoreInterface, c Course) (bool, int, error) {
	users, courses := s.GetUserStore(), s.GetCourseStore()

	owner, ok := users.GetByEmail(ctx, c.Instructor)
	if !ok || owner.Role() != types.RoleInstructor {
		return false, 0, fmt.Errorf("%w: seed course %q has no instructor %s", store.ErrInvalidArgument, c.Title, c.Instructor)
	}
	instructorID := strconv.Itoa(owner.ID())

	if existing := findCourse(ctx, courses, instructorID, c.Title); existing != nil {
		n, err := enroll(ctx, s, existing.CourseID, c.Students)
		return false, n, err
	}

	course, _, err := courses.CreateCourse(ctx, instructorID, c.Title, c.Description)
	if err != nil {
		return false, 0, fmt.Errorf("failed to seed course %q: %w", c.Title, err)
	}
	if c.Approved {
		if _, err := courses.ApproveCourse(ctx, course.CourseID); err != nil {
			return true, 0, err
		}
	}

	for _, l := range c.Lessons {
		if err := addLesson(ctx, courses, instructorID, course.CourseID, l); err != nil {
			return true, 0, fmt.Errorf("failed to seed lesson %q: %w", l.Title, err)
		}
	}

	n, err := enroll(ctx, s, course.CourseID, c.Students)
	return true, n, err
}

func findCourse(ctx context.Context, courses store.CourseStoreInterface, instructorID, title string) *types.Course {
	for _, c := range courses.GetAllCourses(ctx) {
		if c.InstructorID == instructorID && strings.EqualFold(c.Title, title) {
			return c
		}
	}
	return nil
}

func addLesson(ctx context.Context, courses store.CourseStoreInterface, instructorID, courseID string, l Lesson) error {
	lesson, err := courses.AddLesson(ctx, instructorID, courseID, l.Title, l.Content)
	if err != nil {
		return err
	}
	if len(l.Resources) > 0 {
		if _, err := courses.SetLessonResources(ctx, instructorID, courseID, lesson.LessonID, l.Resources); err != nil {
			return err
		}
	}
	if l.Quiz == nil {
		return nil
	}
	quiz := &types.Quiz{
		PassingPercentage: l.Quiz.PassingPercentage,
		MaxAttempts:       l.Quiz.MaxAttempts,
	}
	for _, q := range l.Quiz.Questions {
		quiz.Questions = append(quiz.Questions, types.Question{
			QuestionText:       q.Text,
			Options:            q.Options,
			CorrectOptionIndex: q.Correct,
		})
	}
	_, err = courses.SetLessonQuiz(ctx, instructorID, courseID, lesson.LessonID, quiz)
	return err
}

func enroll(ctx context.Context, s store.StoreInterface, courseID string, emails []string) (int, error) {
	n := 0
	for _, email := range emails {
		u, ok := s.GetUserStore().GetByEmail(ctx, email)
		if !ok {
			logger.Logger(ctx).WithField("email", email).Warn("seed student not found, skipping enrollment")
			continue
		}
		outcome, err := s.GetCourseStore().EnrollStudentInCourse(ctx, courseID, strconv.Itoa(u.ID()))
		if err != nil {
			return n, fmt.Errorf("failed to enroll %s: %w", email, err)
		}
		if outcome == store.BackRefApplied {
			n++
		}
	}
	return n, nil
}
