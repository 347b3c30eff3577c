package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/apperrors"
)

// stubAdminService scripts service outcomes for handler tests.
type stubAdminService struct {
	students      []dto.StudentSummary
	listErr       error
	record        *dto.StudentRecord
	getErr        error
	addStudentID  int64
	addStudentErr error
}

func (s *stubAdminService) ListStudents(context.Context) ([]dto.StudentSummary, error) {
	return s.students, s.listErr
}

func (s *stubAdminService) GetStudent(context.Context, int64) (*dto.StudentRecord, error) {
	return s.record, s.getErr
}

func (s *stubAdminService) AddStudent(context.Context, dto.AddStudentRequest) (int64, error) {
	return s.addStudentID, s.addStudentErr
}

func newAdminTestRouter(stub *stubAdminService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAdminController(stub)

	router := gin.New()
	router.GET("/api/admin/students", ctrl.ListStudents)
	router.GET("/api/admin/student/:id", ctrl.GetStudent)
	router.POST("/api/admin/student", ctrl.AddStudent)
	return router
}

func TestListStudentsHandlerBareArray(t *testing.T) {
	router := newAdminTestRouter(&stubAdminService{students: []dto.StudentSummary{}})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/students", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetStudentHandlerBadID(t *testing.T) {
	router := newAdminTestRouter(&stubAdminService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/student/not-a-number", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Student not found"}`, rec.Body.String())
}

func TestGetStudentHandlerNotFound(t *testing.T) {
	router := newAdminTestRouter(&stubAdminService{getErr: apperrors.ErrStudentNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/student/404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Student not found"}`, rec.Body.String())
}

func TestAddStudentHandler(t *testing.T) {
	router := newAdminTestRouter(&stubAdminService{addStudentID: 12})

	rec := postJSON(router, "/api/admin/student", dto.AddStudentRequest{
		Name: "Grace", Email: "grace@example.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Student added successfully","student_id":12}`, rec.Body.String())
}

func TestAddStudentHandlerMissingFields(t *testing.T) {
	router := newAdminTestRouter(&stubAdminService{})

	rec := postJSON(router, "/api/admin/student", map[string]string{"name": "Grace"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Name and Email are required"}`, rec.Body.String())
}

func TestAddStudentHandlerDuplicateEmailIs400(t *testing.T) {
	// A duplicate here is a 400, unlike the 409 the signup flow answers
	router := newAdminTestRouter(&stubAdminService{addStudentErr: apperrors.ErrEmailAlreadyExists})

	rec := postJSON(router, "/api/admin/student", dto.AddStudentRequest{
		Name: "Grace", Email: "grace@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Email already exists"}`, rec.Body.String())
}
