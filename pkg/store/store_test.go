package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

func TestOpen_CreatesMissingDocuments(t *testing.T) {
	s, b := setupStore(t, "", "")

	assert.NotNil(t, s.User)
	assert.NotNil(t, s.Course)
	assert.Same(t, s.User, s.GetUserStore())
	assert.Equal(t, "[]", b.raw(t, DefaultUsersDocument))
	assert.Equal(t, "[]", b.raw(t, DefaultCoursesDocument))
}

func TestOpen_KeepsExistingDocuments(t *testing.T) {
	s, b := setupStore(t, `[{"userId": 1, "username": "a", "email": "a@example.com", "passwordHash": "h", "role": "ADMIN"}]`, "")

	assert.Len(t, s.User.GetAll(context.Background()), 1)
	assert.Equal(t, 0, b.writeCount(DefaultUsersDocument))
	assert.Equal(t, 1, b.writeCount(DefaultCoursesDocument))
}

func TestOpen_Options(t *testing.T) {
	ctx := context.Background()
	b := newFlakyBackend()

	s, err := Open(ctx, b, WithDocuments("u.json", "c.json"))
	require.NoError(t, err)
	_, _, err = s.Course.CreateCourse(ctx, "1", "t", "d")
	require.NoError(t, err)
	assert.Equal(t, 2, b.writeCount("c.json"))
	assert.Equal(t, 0, b.writeCount(DefaultCoursesDocument))

	_, err = Open(ctx, b, WithDocuments("same.json", "same.json"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOpen_EnsureFailure(t *testing.T) {
	b := newFlakyBackend()
	b.failWrite(DefaultCoursesDocument, errDiskFull)

	_, err := Open(context.Background(), b)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, errDiskFull)
}

func TestStore_Reload(t *testing.T) {
	ctx := context.Background()
	s, b := setupStore(t, "", "")
	saveCourses(t, s, course("4", "1"))

	other := reopen(t, b)
	_, _, err := other.Course.CreateCourse(ctx, "1", "From another process", "")
	require.NoError(t, err)

	_, ok := s.Course.GetCourseByID(ctx, "5")
	assert.False(t, ok)

	require.NoError(t, s.Reload(ctx))
	c, ok := s.Course.GetCourseByID(ctx, "5")
	require.True(t, ok)
	assert.Equal(t, "From another process", c.Title)
	assert.Equal(t, "6", s.Course.NextCourseID())
}

func TestStore_RepairBackReferences(t *testing.T) {
	ctx := context.Background()
	s, b := setupStore(t, "", "")

	// Back-references that drifted from the course collection.
	saveUsers(t, s,
		newInstructor(t, 1, 99),
		newInstructor(t, 5, 11),
		newStudent(t, 2, "old", "11"),
		newStudent(t, 3, "10"),
		newAdmin(t, 4),
	)
	saveCourses(t, s,
		course("11", "1", "2"),
		course("10", "1", "2", "3", "guest"),
		course("intro", "1", "3"),
		course("12", "abc"),
	)

	report, err := s.RepairBackReferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, &RepairReport{InstructorsUpdated: 2, StudentsUpdated: 2}, report)

	fresh := reopen(t, b)
	in, _ := fresh.User.GetInstructorByID(ctx, 1)
	assert.Equal(t, []int{10, 11}, in.CreatedCourses)
	in, _ = fresh.User.GetInstructorByID(ctx, 5)
	assert.Equal(t, []int{}, in.CreatedCourses)

	st, _ := fresh.User.GetStudentByID(ctx, 2)
	assert.Equal(t, []string{"11", "10"}, st.EnrolledCourseIDs)
	st, _ = fresh.User.GetStudentByID(ctx, 3)
	assert.Equal(t, []string{"10", "intro"}, st.EnrolledCourseIDs)

	writes := b.writeCount(DefaultUsersDocument)
	report, err = s.RepairBackReferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, &RepairReport{}, report)
	assert.Equal(t, writes, b.writeCount(DefaultUsersDocument))
}

func TestBackRef_String(t *testing.T) {
	tests := []struct {
		ref  BackRef
		want string
	}{
		{BackRefApplied, "applied"},
		{BackRefUnchanged, "unchanged"},
		{BackRefSkippedMalformedID, "skipped_malformed_id"},
		{BackRefSkippedNoUser, "skipped_no_user"},
		{BackRefFailed, "failed"},
		{BackRef(0), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ref.String())
	}
}

func TestIndexCourses(t *testing.T) {
	idx := indexCourses([]*types.Course{
		course("3", "1", "2"),
		course("1", "1"),
		course("x", "1", "2"),
		course("4", "7", "y"),
	})
	assert.Equal(t, map[int][]int{1: {1, 3}, 7: {4}}, idx.created)
	assert.Equal(t, map[int][]string{2: {"3", "x"}}, idx.enrolled)
}
