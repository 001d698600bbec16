package types

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

// ParseRole normalizes a persisted role string. Unknown roles return an error.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

var (
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.com$`)
	legacyHashPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

var ErrInvalidAccount = errors.New("invalid account")

// User is implemented by *Student, *Instructor and *Admin.
type User interface {
	Base() Account
	ID() int
	Role() Role
	Clone() User
}

// Account holds the fields shared by every user variant.
// UserID and the role are fixed once the user is constructed.
type Account struct {
	UserID       int    `json:"userId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// AccountParams describes a user to construct. When PasswordHashed is false
// Password is treated as a raw password and hashed.
type AccountParams struct {
	UserID         int
	Username       string
	Email          string
	Password       string
	PasswordHashed bool
}

func newAccount(p AccountParams) (Account, error) {
	if p.UserID <= 0 {
		return Account{}, fmt.Errorf("%w: userId must be a positive integer", ErrInvalidAccount)
	}
	username := strings.TrimSpace(p.Username)
	if username == "" {
		return Account{}, fmt.Errorf("%w: username cannot be empty", ErrInvalidAccount)
	}
	email := strings.TrimSpace(p.Email)
	if !emailPattern.MatchString(email) {
		return Account{}, fmt.Errorf("%w: invalid email format %q", ErrInvalidAccount, p.Email)
	}

	hash := p.Password
	if !p.PasswordHashed {
		if strings.TrimSpace(p.Password) == "" {
			return Account{}, fmt.Errorf("%w: password cannot be empty", ErrInvalidAccount)
		}
		h, err := HashPassword(strings.TrimSpace(p.Password))
		if err != nil {
			return Account{}, err
		}
		hash = h
	}

	return Account{
		UserID:       p.UserID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}, nil
}

func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

func (a Account) ID() int { return a.UserID }

// CheckPassword reports whether raw matches the stored hash. Documents
// written before bcrypt was adopted hold unsalted SHA-256 hex digests; those
// are still accepted.
func (a Account) CheckPassword(raw string) bool {
	if legacyHashPattern.MatchString(a.PasswordHash) {
		sum := sha256.Sum256([]byte(raw))
		return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(strings.ToLower(a.PasswordHash))) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(raw)) == nil
}

type Student struct {
	Account
	EnrolledCourseIDs  []string                 `json:"enrolledCourseIds"`
	CompletedLessonIDs []string                 `json:"completedLessonIds"`
	QuizAttempts       map[string][]QuizAttempt `json:"quizAttempts"`
	Certificates       []Certificate            `json:"certificates"`
}

func NewStudent(p AccountParams) (*Student, error) {
	acc, err := newAccount(p)
	if err != nil {
		return nil, err
	}
	return &Student{
		Account:            acc,
		EnrolledCourseIDs:  []string{},
		CompletedLessonIDs: []string{},
		QuizAttempts:       make(map[string][]QuizAttempt),
		Certificates:       []Certificate{},
	}, nil
}

func (s *Student) Base() Account { return s.Account }
func (s *Student) Role() Role { return RoleStudent }

func (s *Student) Clone() User { return s.CloneStudent() }

func (s *Student) CloneStudent() *Student {
	out := &Student{
		Account:            s.Account,
		EnrolledCourseIDs:  slices.Clone(s.EnrolledCourseIDs),
		CompletedLessonIDs: slices.Clone(s.CompletedLessonIDs),
		QuizAttempts:       make(map[string][]QuizAttempt, len(s.QuizAttempts)),
		Certificates:       slices.Clone(s.Certificates),
	}
	for lessonID, attempts := range s.QuizAttempts {
		out.QuizAttempts[lessonID] = slices.Clone(attempts)
	}
	if out.EnrolledCourseIDs == nil {
		out.EnrolledCourseIDs = []string{}
	}
	if out.CompletedLessonIDs == nil {
		out.CompletedLessonIDs = []string{}
	}
	if out.Certificates == nil {
		out.Certificates = []Certificate{}
	}
	return out
}

// EnrollInCourse adds courseID once. It reports whether the list changed.
func (s *Student) EnrollInCourse(courseID string) bool {
	if slices.Contains(s.EnrolledCourseIDs, courseID) {
		return false
	}
	s.EnrolledCourseIDs = append(s.EnrolledCourseIDs, courseID)
	return true
}

// UnenrollFromCourse removes courseID. It reports whether the list changed.
func (s *Student) UnenrollFromCourse(courseID string) bool {
	n := len(s.EnrolledCourseIDs)
	s.EnrolledCourseIDs = slices.DeleteFunc(s.EnrolledCourseIDs, func(id string) bool { return id == courseID })
	return len(s.EnrolledCourseIDs) != n
}

func (s *Student) IsEnrolledIn(courseID string) bool {
	return slices.Contains(s.EnrolledCourseIDs, courseID)
}

func (s *Student) MarkLessonCompleted(lessonID string) bool {
	if slices.Contains(s.CompletedLessonIDs, lessonID) {
		return false
	}
	s.CompletedLessonIDs = append(s.CompletedLessonIDs, lessonID)
	return true
}

func (s *Student) HasCompletedLesson(lessonID string) bool {
	return slices.Contains(s.CompletedLessonIDs, lessonID)
}

func (s *Student) AddQuizAttempt(attempt QuizAttempt) {
	if s.QuizAttempts == nil {
		s.QuizAttempts = make(map[string][]QuizAttempt)
	}
	s.QuizAttempts[attempt.LessonID] = append(s.QuizAttempts[attempt.LessonID], attempt)
}

func (s *Student) AttemptsFor(lessonID string) []QuizAttempt {
	return s.QuizAttempts[lessonID]
}

// HasPassedLesson reports whether any recorded attempt reached passingPercentage.
func (s *Student) HasPassedLesson(lessonID string, passingPercentage int) bool {
	for _, a := range s.QuizAttempts[lessonID] {
		if a.Score >= passingPercentage {
			return true
		}
	}
	return false
}

func (s *Student) CertificateFor(courseID string) (Certificate, bool) {
	for _, c := range s.Certificates {
		if c.CourseID == courseID {
			return c, true
		}
	}
	return Certificate{}, false
}

type Instructor struct {
	Account
	// CreatedCourses is a denormalized, advisory list of numeric course ids.
	CreatedCourses []int `json:"createdCourses"`
}

func NewInstructor(p AccountParams) (*Instructor, error) {
	acc, err := newAccount(p)
	if err != nil {
		return nil, err
	}
	return &Instructor{Account: acc, CreatedCourses: []int{}}, nil
}

func (i *Instructor) Base() Account { return i.Account }
func (i *Instructor) Role() Role { return RoleInstructor }

func (i *Instructor) Clone() User { return i.CloneInstructor() }

func (i *Instructor) CloneInstructor() *Instructor {
	out := &Instructor{Account: i.Account, CreatedCourses: slices.Clone(i.CreatedCourses)}
	if out.CreatedCourses == nil {
		out.CreatedCourses = []int{}
	}
	return out
}

func (i *Instructor) AddCreatedCourse(courseID int) bool {
	if slices.Contains(i.CreatedCourses, courseID) {
		return false
	}
	i.CreatedCourses = append(i.CreatedCourses, courseID)
	return true
}

func (i *Instructor) RemoveCreatedCourse(courseID int) bool {
	n := len(i.CreatedCourses)
	i.CreatedCourses = slices.DeleteFunc(i.CreatedCourses, func(id int) bool { return id == courseID })
	return len(i.CreatedCourses) != n
}

type Admin struct {
	Account
}

func NewAdmin(p AccountParams) (*Admin, error) {
	acc, err := newAccount(p)
	if err != nil {
		return nil, err
	}
	return &Admin{Account: acc}, nil
}

func (a *Admin) Base() Account { return a.Account }
func (a *Admin) Role() Role { return RoleAdmin }
func (a *Admin) Clone() User { return &Admin{Account: a.Account} }
