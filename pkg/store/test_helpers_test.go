package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/inmemory"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

var (
	fixedNow    = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	errDiskFull = errors.New("disk full")
)

// flakyBackend wraps an in-memory backend and fails writes to selected documents.
type flakyBackend struct {
	docstore.Backend
	mu         sync.Mutex
	failWrites map[string]error
	writes     map[string]int
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{
		Backend:    inmemory.New(),
		failWrites: make(map[string]error),
		writes:     make(map[string]int),
	}
}

func (f *flakyBackend) Write(ctx context.Context, name string, data []byte) error {
	f.mu.Lock()
	err := f.failWrites[name]
	f.writes[name]++
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Backend.Write(ctx, name, data)
}

func (f *flakyBackend) failWrite(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failWrites, name)
		return
	}
	f.failWrites[name] = err
}

func (f *flakyBackend) writeCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes[name]
}

func (f *flakyBackend) raw(t *testing.T, name string) string {
	t.Helper()
	data, found, err := f.Backend.Read(context.Background(), name)
	require.NoError(t, err)
	require.True(t, found, "document %s not found", name)
	return string(data)
}

// setupStore seeds the users and courses documents with raw JSON (empty
// strings leave a document absent) and opens a Store over them.
func setupStore(t *testing.T, usersJSON, coursesJSON string) (*Store, *flakyBackend) {
	t.Helper()
	ctx := context.Background()
	b := newFlakyBackend()
	if usersJSON != "" {
		require.NoError(t, b.Backend.Write(ctx, DefaultUsersDocument, []byte(usersJSON)))
	}
	if coursesJSON != "" {
		require.NoError(t, b.Backend.Write(ctx, DefaultCoursesDocument, []byte(coursesJSON)))
	}

	s, err := Open(ctx, b, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return s, b
}

// reopen loads a fresh Store from the same backend.
func reopen(t *testing.T, b *flakyBackend) *Store {
	t.Helper()
	s, err := Open(context.Background(), b, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return s
}

func params(id int, name string) types.AccountParams {
	return types.AccountParams{
		UserID:         id,
		Username:       name,
		Email:          name + "@example.com",
		Password:       "$2a$10$hashed",
		PasswordHashed: true,
	}
}

func newStudent(t *testing.T, id int, enrolled ...string) *types.Student {
	t.Helper()
	s, err := types.NewStudent(params(id, "student"+strconv.Itoa(id)))
	require.NoError(t, err)
	s.EnrolledCourseIDs = append(s.EnrolledCourseIDs, enrolled...)
	return s
}

func newInstructor(t *testing.T, id int, created ...int) *types.Instructor {
	t.Helper()
	in, err := types.NewInstructor(params(id, "instructor"+strconv.Itoa(id)))
	require.NoError(t, err)
	in.CreatedCourses = append(in.CreatedCourses, created...)
	return in
}

func newAdmin(t *testing.T, id int) *types.Admin {
	t.Helper()
	a, err := types.NewAdmin(params(id, "admin"+strconv.Itoa(id)))
	require.NoError(t, err)
	return a
}

func saveUsers(t *testing.T, s *Store, users ...types.User) {
	t.Helper()
	for _, u := range users {
		require.NoError(t, s.User.SaveOrUpdate(context.Background(), u))
	}
}

func saveCourses(t *testing.T, s *Store, courses ...*types.Course) {
	t.Helper()
	for _, c := range courses {
		require.NoError(t, s.Course.SaveOrUpdateCourse(context.Background(), c))
	}
}

func course(id, instructorID string, students ...string) *types.Course {
	c := types.NewCourse(id, "Course "+id, "About "+id, instructorID)
	c.Students = append(c.Students, students...)
	return c
}

func threeQuestionQuiz() *types.Quiz {
	q := types.NewQuiz(
		types.Question{QuestionText: "2+2?", Options: []string{"3", "4"}, CorrectOptionIndex: 1},
		types.Question{QuestionText: "Capital of France?", Options: []string{"Paris", "Rome", "Oslo"}, CorrectOptionIndex: 0},
		types.Question{QuestionText: "Go keyword for goroutines?", Options: []string{"go", "async"}, CorrectOptionIndex: 0},
	)
	q.MaxAttempts = 2
	return q
}
