package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/apperrors"
)

func TestAddStudent(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewAdminService(store)
	ctx := context.Background()

	id, err := svc.AddStudent(ctx, dto.AddStudentRequest{
		Name:         "Grace Hopper",
		Email:        "Grace@Example.COM",
		University:   "Yale",
		Location:     "New Haven",
		BEPercentage: 92.5,
		BERanking:    1,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	// Account is created without credentials, email normalized
	user, ok := store.users.users["grace@example.com"]
	require.True(t, ok)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Nil(t, user.PasswordHash)

	details := store.details[id]
	require.NotNil(t, details)
	assert.Equal(t, "Yale", details.University)
	assert.Equal(t, models.StatusPending, details.Status)
}

func TestAddStudentValidation(t *testing.T) {
	svc := NewAdminService(newFakeStudentStore())
	ctx := context.Background()

	_, err := svc.AddStudent(ctx, dto.AddStudentRequest{Name: "", Email: "a@b.com"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddStudent(ctx, dto.AddStudentRequest{Name: "Grace", Email: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddStudent(ctx, dto.AddStudentRequest{Name: "Grace", Email: "not-an-email"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestAddStudentDuplicateEmail(t *testing.T) {
	svc := NewAdminService(newFakeStudentStore())
	ctx := context.Background()

	req := dto.AddStudentRequest{Name: "Grace", Email: "grace@example.com"}
	_, err := svc.AddStudent(ctx, req)
	require.NoError(t, err)

	_, err = svc.AddStudent(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestListStudentsEmpty(t *testing.T) {
	svc := NewAdminService(newFakeStudentStore())

	students, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	// Must be an empty slice, not nil, so it serializes as []
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestListStudents(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewAdminService(store)
	ctx := context.Background()

	id, err := svc.AddStudent(ctx, dto.AddStudentRequest{
		Name: "Grace", Email: "grace@example.com", University: "Yale",
	})
	require.NoError(t, err)

	students, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, id, students[0].ID)
	assert.Equal(t, "Yale", students[0].University)
	assert.Equal(t, string(models.StatusPending), students[0].Status)
}

func TestGetStudent(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewAdminService(store)
	ctx := context.Background()

	_, err := svc.GetStudent(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	id, err := svc.AddStudent(ctx, dto.AddStudentRequest{
		Name: "Grace", Email: "grace@example.com",
	})
	require.NoError(t, err)

	record, err := svc.GetStudent(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Grace", record.Name)
	assert.Equal(t, "grace@example.com", record.Email)
}
