package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/roster/internal/app/models"
	"github.com/campushq/roster/internal/app/models/dto"
	"github.com/campushq/roster/internal/middleware"
	"github.com/campushq/roster/internal/pkg/apperrors"
)

type stubRosterService struct {
	students  []*models.Student
	listErr   error
	addErr    error
	updateErr error
	deleteErr error

	gotForm    *dto.AddStudentForm
	gotIDCard  *multipart.FileHeader
	gotStaffID int64
	gotID      int64
	gotUpdate  *dto.UpdateStudentRequest
}

func (s *stubRosterService) AddStudent(ctx context.Context, form *dto.AddStudentForm, idCard *multipart.FileHeader, staffID int64) (*models.Student, error) {
	s.gotForm, s.gotIDCard, s.gotStaffID = form, idCard, staffID
	if s.addErr != nil {
		return nil, s.addErr
	}
	return &models.Student{ID: 1}, nil
}

func (s *stubRosterService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students, s.listErr
}

func (s *stubRosterService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	s.gotID, s.gotUpdate = id, req
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Student{ID: id}, nil
}

func (s *stubRosterService) DeleteStudent(ctx context.Context, id int64) error {
	s.gotID = id
	return s.deleteErr
}

// newStudentTestRouter wires the controller behind a stand-in for the auth
// middleware that injects a fixed staff identity.
func newStudentTestRouter(svc *stubRosterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewStudentController(svc, zerolog.Nop())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.StaffIDKey, int64(7))
	})
	router.POST("/add-contact", controller.AddStudent)
	router.GET("/view-contacts", controller.ListStudents)
	router.PUT("/edit-contact/:id", controller.UpdateStudent)
	router.DELETE("/delete-contact/:id", controller.DeleteStudent)
	return router
}

func studentFormBody(t *testing.T, withIDCard bool, cgpa string) (io.Reader, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":        "Asha Rao",
		"rollNo":      "CS-2026-014",
		"phoneNo":     "5550001111",
		"yearOfStudy": "2",
		"department":  "CSE",
		"cgpa":        cgpa,
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if withIDCard {
		part, err := writer.CreateFormFile("idCard", "card.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake png bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestAddStudentEndpoint(t *testing.T) {
	t.Run("with id card", func(t *testing.T) {
		svc := &stubRosterService{}
		router := newStudentTestRouter(svc)

		body, contentType := studentFormBody(t, true, "8.4")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add-contact", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Contact added successfully")

		require.NotNil(t, svc.gotForm)
		assert.Equal(t, "Asha Rao", svc.gotForm.Name)
		assert.Equal(t, 2, svc.gotForm.YearOfStudy)
		require.NotNil(t, svc.gotForm.Cgpa)
		assert.InDelta(t, 8.4, *svc.gotForm.Cgpa, 0.001)
		require.NotNil(t, svc.gotIDCard)
		assert.Equal(t, "card.png", svc.gotIDCard.Filename)
		assert.Equal(t, int64(7), svc.gotStaffID)
	})

	t.Run("without id card", func(t *testing.T) {
		svc := &stubRosterService{}
		router := newStudentTestRouter(svc)

		body, contentType := studentFormBody(t, false, "8.4")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add-contact", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotIDCard)
	})

	t.Run("zero cgpa accepted", func(t *testing.T) {
		svc := &stubRosterService{}
		router := newStudentTestRouter(svc)

		body, contentType := studentFormBody(t, false, "0")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add-contact", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotForm)
		require.NotNil(t, svc.gotForm.Cgpa)
		assert.Zero(t, *svc.gotForm.Cgpa)
	})

	t.Run("missing required field", func(t *testing.T) {
		svc := &stubRosterService{}
		router := newStudentTestRouter(svc)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("name", "Asha Rao"))
		require.NoError(t, writer.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add-contact", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, svc.gotForm, "service must not be called for invalid forms")
	})

	t.Run("oversized upload", func(t *testing.T) {
		svc := &stubRosterService{addErr: apperrors.ErrFileTooLarge}
		router := newStudentTestRouter(svc)

		body, contentType := studentFormBody(t, true, "8.4")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add-contact", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "FILE_002")
	})
}

func TestViewContactsEndpoint(t *testing.T) {
	url := "uploads/1700000000000-card.png"
	svc := &stubRosterService{
		students: []*models.Student{
			{ID: 3, Name: "top", Cgpa: 9.1, IDCardURL: &url},
			{ID: 1, Name: "middle", Cgpa: 8.0},
			{ID: 2, Name: "last", Cgpa: 7.2},
		},
	}
	router := newStudentTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/view-contacts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "top", got[0]["name"])
	assert.Equal(t, url, got[0]["idCard"])
	assert.Equal(t, "last", got[2]["name"])
	_, hasIDCard := got[2]["idCard"]
	assert.False(t, hasIDCard, "records without a stored file must omit idCard")
}

func TestEditContactEndpoint(t *testing.T) {
	t.Run("yearOfStudy in payload is ignored", func(t *testing.T) {
		svc := &stubRosterService{}
		router := newStudentTestRouter(svc)

		payload := `{"name":"Asha Rao","rollNo":"CS-2026-014","phoneNo":"5550001111","department":"CSE","cgpa":9.0,"yearOfStudy":4}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/edit-contact/5", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Contact updated successfully")
		assert.Equal(t, int64(5), svc.gotID)
		require.NotNil(t, svc.gotUpdate)
		require.NotNil(t, svc.gotUpdate.Cgpa)
		assert.InDelta(t, 9.0, *svc.gotUpdate.Cgpa, 0.001)
	})

	t.Run("zero cgpa accepted", func(t *testing.T) {
		svc := &stubRosterService{}
		router := newStudentTestRouter(svc)

		payload := `{"name":"Asha Rao","rollNo":"CS-2026-014","phoneNo":"5550001111","department":"CSE","cgpa":0}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/edit-contact/5", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotUpdate)
		require.NotNil(t, svc.gotUpdate.Cgpa)
		assert.Zero(t, *svc.gotUpdate.Cgpa)
	})

	t.Run("unknown record", func(t *testing.T) {
		svc := &stubRosterService{updateErr: apperrors.ErrStudentNotFound}
		router := newStudentTestRouter(svc)

		payload := `{"name":"x","rollNo":"r","phoneNo":"p","department":"d","cgpa":5}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/edit-contact/404", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "RES_001")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := newStudentTestRouter(&stubRosterService{})

		payload := `{"name":"x","rollNo":"r","phoneNo":"p","department":"d","cgpa":5}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/edit-contact/abc", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteContactEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubRosterService{}
		router := newStudentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/delete-contact/"+strconv.Itoa(9), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Contact deleted successfully")
		assert.Equal(t, int64(9), svc.gotID)
	})

	t.Run("unknown record", func(t *testing.T) {
		svc := &stubRosterService{deleteErr: apperrors.ErrStudentNotFound}
		router := newStudentTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/delete-contact/404", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
