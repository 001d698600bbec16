package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "STUDENT", want: RoleStudent},
		{in: " instructor ", want: RoleInstructor},
		{in: "Admin", want: RoleAdmin},
		{in: "guest", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAccountValidation(t *testing.T) {
	tests := []struct {
		name        string
		params      AccountParams
		errContains string
	}{
		{
			name:   "valid raw password",
			params: AccountParams{UserID: 1, Username: " sam ", Email: "sam@example.com", Password: "pw"},
		},
		{
			name:        "zero id",
			params:      AccountParams{UserID: 0, Username: "sam", Email: "sam@example.com", Password: "pw"},
			errContains: "userId",
		},
		{
			name:        "blank username",
			params:      AccountParams{UserID: 1, Username: "  ", Email: "sam@example.com", Password: "pw"},
			errContains: "username",
		},
		{
			name:        "email without .com",
			params:      AccountParams{UserID: 1, Username: "sam", Email: "sam@example.org", Password: "pw"},
			errContains: "email",
		},
		{
			name:        "email with two at signs",
			params:      AccountParams{UserID: 1, Username: "sam", Email: "a@b@example.com", Password: "pw"},
			errContains: "email",
		},
		{
			name:        "blank password",
			params:      AccountParams{UserID: 1, Username: "sam", Email: "sam@example.com", Password: " "},
			errContains: "password",
		},
		{
			name:   "pre-hashed password may be anything",
			params: AccountParams{UserID: 1, Username: "sam", Email: "sam@example.com", PasswordHashed: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStudent(tt.params)
			if tt.errContains != "" {
				require.ErrorIs(t, err, ErrInvalidAccount)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "sam", s.Username)
			assert.Equal(t, RoleStudent, s.Role())
			assert.Equal(t, tt.params.UserID, s.ID())
		})
	}
}

func TestCheckPassword(t *testing.T) {
	s, err := NewStudent(AccountParams{UserID: 1, Username: "sam", Email: "sam@example.com", Password: " pw "})
	require.NoError(t, err)

	assert.NotEqual(t, "pw", s.PasswordHash)
	assert.True(t, s.Base().CheckPassword("pw"))
	assert.False(t, s.Base().CheckPassword("other"))
}

func TestCheckPassword_LegacySHA256(t *testing.T) {
	// sha256("password")
	const digest = "5E884898DA28047151D0E56F8DC6292773603D0D6AABBDD62A11EF721D1542D8"
	s, err := NewStudent(AccountParams{
		UserID: 1, Username: "sam", Email: "sam@example.com", Password: digest, PasswordHashed: true,
	})
	require.NoError(t, err)

	assert.True(t, s.Base().CheckPassword("password"))
	assert.False(t, s.Base().CheckPassword("Password"))
}

func TestStudentClone(t *testing.T) {
	s, err := NewStudent(AccountParams{UserID: 1, Username: "sam", Email: "sam@example.com", PasswordHashed: true})
	require.NoError(t, err)
	s.EnrollInCourse("1")
	s.AddQuizAttempt(QuizAttempt{LessonID: "3", Score: 40})

	c, ok := s.Clone().(*Student)
	require.True(t, ok)
	c.EnrollInCourse("2")
	c.AddQuizAttempt(QuizAttempt{LessonID: "3", Score: 90})
	c.Certificates = append(c.Certificates, Certificate{CourseID: "1"})

	assert.Equal(t, []string{"1"}, s.EnrolledCourseIDs)
	assert.Len(t, s.AttemptsFor("3"), 1)
	assert.Empty(t, s.Certificates)
	assert.False(t, s.HasPassedLesson("3", 60))
	assert.True(t, c.HasPassedLesson("3", 60))
}

func TestStudentEnrollment(t *testing.T) {
	s := &Student{}

	assert.True(t, s.EnrollInCourse("1"))
	assert.False(t, s.EnrollInCourse("1"))
	assert.True(t, s.IsEnrolledIn("1"))
	assert.True(t, s.UnenrollFromCourse("1"))
	assert.False(t, s.UnenrollFromCourse("1"))

	assert.True(t, s.MarkLessonCompleted("5"))
	assert.False(t, s.MarkLessonCompleted("5"))
	assert.True(t, s.HasCompletedLesson("5"))
}

func TestInstructorCreatedCourses(t *testing.T) {
	in, err := NewInstructor(AccountParams{UserID: 2, Username: "ivy", Email: "ivy@example.com", PasswordHashed: true})
	require.NoError(t, err)

	assert.True(t, in.AddCreatedCourse(3))
	assert.False(t, in.AddCreatedCourse(3))

	c := in.CloneInstructor()
	assert.True(t, c.RemoveCreatedCourse(3))
	assert.Equal(t, []int{3}, in.CreatedCourses)
	assert.Equal(t, []int{}, c.CreatedCourses)
	assert.False(t, c.RemoveCreatedCourse(3))
}
