package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

const indent = "    "

type userRecord struct {
	UserID       int    `json:"userId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`

	// Role-specific lists are pointers so that empty lists are still written
	// for the role that owns them and omitted for the others.
	EnrolledCourseIDs  *[]string            `json:"enrolledCourseIds,omitempty"`
	CompletedLessonIDs *[]string            `json:"completedLessonIds,omitempty"`
	Certificates       *[]certificateRecord `json:"certificates,omitempty"`
	QuizAttempts       *[]quizAttemptRecord `json:"quizAttempts,omitempty"`

	CreatedCourses *[]int `json:"createdCourses,omitempty"`
}

type certificateRecord struct {
	CertificateID string `json:"certificateId"`
	StudentID     int    `json:"studentId"`
	CourseID      string `json:"courseId"`
	IssueDate     string `json:"issueDate"`
}

type quizAttemptRecord struct {
	LessonID       string `json:"lessonId"`
	Timestamp      int64  `json:"timestamp"`
	Score          int    `json:"score"`
	CorrectCount   int    `json:"correctCount"`
	TotalQuestions int    `json:"totalQuestions"`
}

type courseRecord struct {
	CourseID     string         `json:"courseId"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	InstructorID string         `json:"instructorId"`
	Status       string         `json:"status,omitempty"`
	Students     []string       `json:"students"`
	Lessons      []lessonRecord `json:"lessons"`
}

type lessonRecord struct {
	LessonID  string      `json:"lessonId"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Resources []string    `json:"resources"`
	Quiz      *quizRecord `json:"quiz,omitempty"`
}

type quizRecord struct {
	PassingPercentage *int             `json:"passingPercentage,omitempty"`
	MaxAttempts       int              `json:"maxAttempts"`
	Questions         []questionRecord `json:"questions"`
}

type questionRecord struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
}

// decodeUsers parses a users document. A document that is not a JSON array
// is an error; individual records that cannot be decoded, or that carry an
// unknown role, are logged and skipped.
func decodeUsers(ctx context.Context, data []byte) (map[int]types.User, error) {
	log := logger.Logger(ctx)

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users document: %w", err)
	}

	users := make(map[int]types.User, len(raw))
	for i, msg := range raw {
		var rec userRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			log.WithError(err).WithField("index", i).Warn("skipping unparseable user record")
			continue
		}
		user, err := rec.toUser()
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"index":   i,
				"user_id": rec.UserID,
			}).Warn("skipping invalid user record")
			continue
		}
		users[user.ID()] = user
	}
	return users, nil
}

func (r userRecord) toUser() (types.User, error) {
	if r.UserID <= 0 {
		return nil, fmt.Errorf("userId must be positive, got %d", r.UserID)
	}
	role, err := types.ParseRole(r.Role)
	if err != nil {
		return nil, err
	}

	acc := types.Account{
		UserID:       r.UserID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	}

	switch role {
	case types.RoleStudent:
		s := &types.Student{
			Account:            acc,
			EnrolledCourseIDs:  deref(r.EnrolledCourseIDs),
			CompletedLessonIDs: deref(r.CompletedLessonIDs),
			QuizAttempts:       make(map[string][]types.QuizAttempt),
			Certificates:       []types.Certificate{},
		}
		for _, c := range deref(r.Certificates) {
			s.Certificates = append(s.Certificates, types.Certificate(c))
		}
		for _, a := range deref(r.QuizAttempts) {
			s.AddQuizAttempt(types.QuizAttempt(a))
		}
		return s, nil
	case types.RoleInstructor:
		return &types.Instructor{Account: acc, CreatedCourses: deref(r.CreatedCourses)}, nil
	default:
		return &types.Admin{Account: acc}, nil
	}
}

func encodeUsers(users map[int]types.User) ([]byte, error) {
	ids := make([]int, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([]userRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, toUserRecord(users[id]))
	}

	data, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal users: %w", err)
	}
	return data, nil
}

func toUserRecord(u types.User) userRecord {
	acc := u.Base()
	rec := userRecord{
		UserID:       acc.UserID,
		Username:     acc.Username,
		Email:        acc.Email,
		PasswordHash: acc.PasswordHash,
		Role:         string(u.Role()),
	}

	switch v := u.(type) {
	case *types.Student:
		certificates := make([]certificateRecord, 0, len(v.Certificates))
		for _, c := range v.Certificates {
			certificates = append(certificates, certificateRecord(c))
		}
		lessonIDs := make([]string, 0, len(v.QuizAttempts))
		for lessonID := range v.QuizAttempts {
			lessonIDs = append(lessonIDs, lessonID)
		}
		sort.Strings(lessonIDs)
		attempts := []quizAttemptRecord{}
		for _, lessonID := range lessonIDs {
			for _, a := range v.QuizAttempts[lessonID] {
				attempts = append(attempts, quizAttemptRecord(a))
			}
		}
		rec.EnrolledCourseIDs = ptr(orEmpty(v.EnrolledCourseIDs))
		rec.CompletedLessonIDs = ptr(orEmpty(v.CompletedLessonIDs))
		rec.Certificates = &certificates
		rec.QuizAttempts = &attempts
	case *types.Instructor:
		rec.CreatedCourses = ptr(orEmpty(v.CreatedCourses))
	}
	return rec
}

// decodeCourses parses a courses document with the same per-record
// isolation as decodeUsers.
func decodeCourses(ctx context.Context, data []byte) (map[string]*types.Course, error) {
	log := logger.Logger(ctx)

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal courses document: %w", err)
	}

	courses := make(map[string]*types.Course, len(raw))
	for i, msg := range raw {
		var rec courseRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			log.WithError(err).WithField("index", i).Warn("skipping unparseable course record")
			continue
		}
		course, err := rec.toCourse()
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"index":     i,
				"course_id": rec.CourseID,
			}).Warn("skipping invalid course record")
			continue
		}
		if !course.Status.Known() {
			log.WithFields(logrus.Fields{
				"index":     i,
				"course_id": course.CourseID,
				"status":    course.Status,
			}).Warn("course has unrecognized status, keeping it as stored")
		}
		courses[course.CourseID] = course
	}
	return courses, nil
}

func (r courseRecord) toCourse() (*types.Course, error) {
	if r.CourseID == "" {
		return nil, fmt.Errorf("courseId is required")
	}
	status, err := types.ParseCourseStatus(r.Status)
	if err != nil {
		status = types.CourseStatus(r.Status)
	}

	c := &types.Course{
		CourseID:     r.CourseID,
		Title:        r.Title,
		Description:  r.Description,
		InstructorID: r.InstructorID,
		Status:       status,
		Students:     orEmpty(r.Students),
		Lessons:      make([]types.Lesson, 0, len(r.Lessons)),
	}
	for _, l := range r.Lessons {
		lesson := types.Lesson{
			LessonID:  l.LessonID,
			Title:     l.Title,
			Content:   l.Content,
			Resources: orEmpty(l.Resources),
		}
		if l.Quiz != nil {
			lesson.Quiz = l.Quiz.toQuiz()
		}
		c.Lessons = append(c.Lessons, lesson)
	}
	return c, nil
}

func (r quizRecord) toQuiz() *types.Quiz {
	q := &types.Quiz{
		PassingPercentage: types.DefaultPassingPercentage,
		MaxAttempts:       r.MaxAttempts,
		Questions:         make([]types.Question, 0, len(r.Questions)),
	}
	if r.PassingPercentage != nil {
		q.PassingPercentage = *r.PassingPercentage
	}
	for _, qs := range r.Questions {
		q.Questions = append(q.Questions, types.Question{
			QuestionText:       qs.QuestionText,
			Options:            orEmpty(qs.Options),
			CorrectOptionIndex: qs.CorrectOptionIndex,
		})
	}
	return q
}

func encodeCourses(courses map[string]*types.Course) ([]byte, error) {
	records := make([]courseRecord, 0, len(courses))
	for _, c := range sortedCourses(courses) {
		records = append(records, toCourseRecord(c))
	}

	data, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal courses: %w", err)
	}
	return data, nil
}

func toCourseRecord(c *types.Course) courseRecord {
	rec := courseRecord{
		CourseID:     c.CourseID,
		Title:        c.Title,
		Description:  c.Description,
		InstructorID: c.InstructorID,
		Status:       string(c.Status),
		Students:     orEmpty(c.Students),
		Lessons:      make([]lessonRecord, 0, len(c.Lessons)),
	}
	for _, l := range c.Lessons {
		lr := lessonRecord{
			LessonID:  l.LessonID,
			Title:     l.Title,
			Content:   l.Content,
			Resources: orEmpty(l.Resources),
		}
		if l.Quiz != nil {
			pass := l.Quiz.PassingPercentage
			qr := &quizRecord{
				PassingPercentage: &pass,
				MaxAttempts:       l.Quiz.MaxAttempts,
				Questions:         make([]questionRecord, 0, len(l.Quiz.Questions)),
			}
			for _, qs := range l.Quiz.Questions {
				qr.Questions = append(qr.Questions, questionRecord{
					QuestionText:       qs.QuestionText,
					Options:            orEmpty(qs.Options),
					CorrectOptionIndex: qs.CorrectOptionIndex,
				})
			}
			lr.Quiz = qr
		}
		rec.Lessons = append(rec.Lessons, lr)
	}
	return rec
}

// sortedCourses orders courses numerically by id, falling back to string
// order for ids that are not numbers.
func sortedCourses(courses map[string]*types.Course) []*types.Course {
	out := make([]*types.Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, aok := ParseRef(out[i].CourseID)
		b, bok := ParseRef(out[j].CourseID)
		switch {
		case aok && bok && a != b:
			return a < b
		case aok != bok:
			return aok
		default:
			return out[i].CourseID < out[j].CourseID
		}
	})
	return out
}

func ptr[T any](v T) *T { return &v }

func deref[T any](s *[]T) []T {
	if s == nil {
		return []T{}
	}
	return orEmpty(*s)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
