package types

import (
	"fmt"
	"slices"
	"strings"
)

type CourseStatus string

const (
	CourseStatusPending  CourseStatus = "PENDING"
	CourseStatusApproved CourseStatus = "APPROVED"
	CourseStatusRejected CourseStatus = "REJECTED"
)

// ParseCourseStatus maps a persisted status to a CourseStatus. Empty input
// yields PENDING.
func ParseCourseStatus(s string) (CourseStatus, error) {
	if strings.TrimSpace(s) == "" {
		return CourseStatusPending, nil
	}
	switch st := CourseStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case CourseStatusPending, CourseStatusApproved, CourseStatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("unknown course status %q", s)
	}
}

// Known reports whether s is one of the workflow statuses. Courses loaded
// with any other status keep it unchanged; they are never visible and cannot
// be approved or rejected.
func (s CourseStatus) Known() bool {
	switch s {
	case CourseStatusPending, CourseStatusApproved, CourseStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the approval workflow may move a course
// from s to next. Only PENDING courses can be decided.
func (s CourseStatus) CanTransitionTo(next CourseStatus) bool {
	return s == CourseStatusPending && (next == CourseStatusApproved || next == CourseStatusRejected)
}

type Course struct {
	CourseID     string       `json:"courseId"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	InstructorID string       `json:"instructorId"`
	Status       CourseStatus `json:"status"`
	Lessons      []Lesson     `json:"lessons"`
	// Students holds enrolled user ids as strings.
	Students []string `json:"students"`
}

func NewCourse(courseID, title, description, instructorID string) *Course {
	return &Course{
		CourseID:     courseID,
		Title:        title,
		Description:  description,
		InstructorID: instructorID,
		Status:       CourseStatusPending,
		Lessons:      []Lesson{},
		Students:     []string{},
	}
}

func (c *Course) Clone() *Course {
	out := *c
	out.Students = slices.Clone(c.Students)
	if out.Students == nil {
		out.Students = []string{}
	}
	out.Lessons = make([]Lesson, len(c.Lessons))
	for i := range c.Lessons {
		out.Lessons[i] = c.Lessons[i].Clone()
	}
	return &out
}

func (c *Course) IsStudentEnrolled(studentID string) bool {
	return slices.Contains(c.Students, studentID)
}

func (c *Course) EnrollStudent(studentID string) bool {
	if c.IsStudentEnrolled(studentID) {
		return false
	}
	c.Students = append(c.Students, studentID)
	return true
}

func (c *Course) UnenrollStudent(studentID string) bool {
	n := len(c.Students)
	c.Students = slices.DeleteFunc(c.Students, func(id string) bool { return id == studentID })
	return len(c.Students) != n
}

// Lesson returns a pointer into the course's lesson slice.
func (c *Course) Lesson(lessonID string) (*Lesson, bool) {
	for i := range c.Lessons {
		if c.Lessons[i].LessonID == lessonID {
			return &c.Lessons[i], true
		}
	}
	return nil, false
}

func (c *Course) RemoveLesson(lessonID string) bool {
	n := len(c.Lessons)
	c.Lessons = slices.DeleteFunc(c.Lessons, func(l Lesson) bool { return l.LessonID == lessonID })
	return len(c.Lessons) != n
}

type Lesson struct {
	LessonID  string   `json:"lessonId"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Resources []string `json:"resources"`
	Quiz      *Quiz    `json:"quiz,omitempty"`
}

func (l Lesson) Clone() Lesson {
	out := l
	out.Resources = slices.Clone(l.Resources)
	if out.Resources == nil {
		out.Resources = []string{}
	}
	if l.Quiz != nil {
		q := l.Quiz.Clone()
		out.Quiz = &q
	}
	return out
}

const DefaultPassingPercentage = 60

type Quiz struct {
	Questions         []Question `json:"questions"`
	PassingPercentage int        `json:"passingPercentage"`
	// MaxAttempts of 0 means unlimited.
	MaxAttempts int `json:"maxAttempts"`
}

func NewQuiz(questions ...Question) *Quiz {
	return &Quiz{
		Questions:         questions,
		PassingPercentage: DefaultPassingPercentage,
	}
}

func (q Quiz) Clone() Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	for i, qs := range q.Questions {
		qs.Options = slices.Clone(qs.Options)
		out.Questions[i] = qs
	}
	return out
}

func (q Quiz) TotalQuestions() int {
	return len(q.Questions)
}

type Question struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
}

type QuizAttempt struct {
	LessonID string `json:"lessonId"`
	// Timestamp is in unix milliseconds.
	Timestamp      int64 `json:"timestamp"`
	Score          int   `json:"score"`
	CorrectCount   int   `json:"correctCount"`
	TotalQuestions int   `json:"totalQuestions"`
}

type Certificate struct {
	CertificateID string `json:"certificateId"`
	StudentID     int    `json:"studentId"`
	CourseID      string `json:"courseId"`
	// IssueDate is formatted as YYYY-MM-DD.
	IssueDate string `json:"issueDate"`
}
