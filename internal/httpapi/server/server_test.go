package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/inmemory"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
)

type client struct {
	t       *testing.T
	handler http.Handler
	apiKey  string
}

func (c *client) call(method, path, body string, out any) int {
	c.t.Helper()
	req := httptest.NewRequest(method, "/api/v1"+path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	if out != nil && w.Code < 300 && w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func newTestServer(t *testing.T) (*client, *store.Store) {
	t.Helper()
	ctx := context.Background()
	backend := inmemory.New()
	t.Cleanup(func() { _ = backend.Close() })

	s, err := store.Open(ctx, backend)
	require.NoError(t, err)

	cfg := &config.AppConfig{
		App: config.App{Name: "coursenaut", Environment: "test"},
		APIServer: config.APIServerConfig{
			Auth: config.AuthConfig{Enabled: true, Mode: "apikey", APIKeys: []string{"k"}},
		},
	}
	srv := NewAPIServer(cfg, s)
	return &client{t: t, handler: srv.Handler(), apiKey: "k"}, s
}

func TestStatusIsPublic(t *testing.T) {
	c, _ := newTestServer(t)
	c.apiKey = ""

	assert.Equal(t, http.StatusOK, c.call(http.MethodGet, "/status", "", nil))
	assert.Equal(t, http.StatusUnauthorized, c.call(http.MethodGet, "/courses", "", nil))
}

func TestCourseLifecycle(t *testing.T) {
	c, s := newTestServer(t)
	ctx := context.Background()

	var instructor, student struct {
		User struct {
			UserID int `json:"userId"`
		} `json:"user"`
	}
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/users",
		`{"username":"ivy","email":"ivy@example.com","password":"pw","role":"INSTRUCTOR"}`, &instructor))
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/users",
		`{"username":"sam","email":"sam@example.com","password":"pw","role":"STUDENT"}`, &student))
	assert.Equal(t, http.StatusConflict, c.call(http.MethodPost, "/users",
		`{"username":"sam2","email":"Sam@Example.com","password":"pw","role":"STUDENT"}`, nil))

	iid := instructor.User.UserID
	sid := student.User.UserID

	var created struct {
		Course struct {
			CourseID string `json:"courseId"`
		} `json:"course"`
		Instructor string `json:"instructor"`
	}
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/courses",
		`{"instructorId":"`+strconv.Itoa(iid)+`","title":"Go","description":"Basics"}`, &created))
	assert.Equal(t, "applied", created.Instructor)
	courseID := created.Course.CourseID

	var visible []json.RawMessage
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/courses", "", &visible))
	assert.Empty(t, visible)
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/courses/"+courseID+"/approve", "", nil))
	assert.Equal(t, http.StatusConflict, c.call(http.MethodPost, "/courses/"+courseID+"/reject", "", nil))
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/courses", "", &visible))
	assert.Len(t, visible, 1)

	var enrolled struct {
		Student string `json:"student"`
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/courses/"+courseID+"/enrollments",
		`{"studentId":"`+strconv.Itoa(sid)+`"}`, &enrolled))
	assert.Equal(t, "applied", enrolled.Student)

	var lesson struct {
		LessonID string `json:"lessonId"`
	}
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/courses/"+courseID+"/lessons",
		`{"instructorId":"`+strconv.Itoa(iid)+`","title":"Intro","content":"..."}`, &lesson))
	require.Equal(t, http.StatusOK, c.call(http.MethodPut, "/courses/"+courseID+"/lessons/"+lesson.LessonID+"/quiz",
		`{"instructorId":"`+strconv.Itoa(iid)+`","questions":[{"questionText":"2+2","options":["3","4"],"correctOptionIndex":1}]}`, nil))

	var completion struct {
		Completed bool `json:"completed"`
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/users/"+strconv.Itoa(sid)+"/courses/"+courseID+"/completion", "", &completion))
	assert.False(t, completion.Completed)
	assert.Equal(t, http.StatusBadRequest, c.call(http.MethodPost, "/users/"+strconv.Itoa(sid)+"/courses/"+courseID+"/certificate", "", nil))

	var attempt struct {
		Score int `json:"score"`
	}
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/courses/"+courseID+"/lessons/"+lesson.LessonID+"/attempts",
		`{"studentId":`+strconv.Itoa(sid)+`,"answers":[1]}`, &attempt))
	assert.Equal(t, 100, attempt.Score)

	var cert struct {
		CertificateID string `json:"certificateId"`
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/users/"+strconv.Itoa(sid)+"/courses/"+courseID+"/certificate", "", &cert))
	assert.NotEmpty(t, cert.CertificateID)

	require.Equal(t, http.StatusOK, c.call(http.MethodDelete, "/courses/"+courseID, "", nil))
	assert.Equal(t, http.StatusNotFound, c.call(http.MethodDelete, "/courses/"+courseID, "", nil))

	st, ok := s.User.GetStudentByID(ctx, sid)
	require.True(t, ok)
	assert.Empty(t, st.EnrolledCourseIDs)
	assert.Len(t, st.Certificates, 1)

	in, ok := s.User.GetInstructorByID(ctx, iid)
	require.True(t, ok)
	assert.Empty(t, in.CreatedCourses)

	var report store.RepairReport
	require.Equal(t, http.StatusOK, c.call(http.MethodPost, "/admin/repair", "", &report))
	assert.Equal(t, store.RepairReport{}, report)
}
