package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	"github.com/noah-isme/tutor-booking-api/internal/repository"
	"github.com/noah-isme/tutor-booking-api/internal/service"
	"github.com/noah-isme/tutor-booking-api/pkg/response"
)

func newTutorRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewTutorStore()
	store.Initialize(context.Background(), []models.Tutor{
		{ID: "t1", Name: "Ava", Department: "Mathematics", Subjects: []string{"Calculus"}, Rating: 4.9, Modalities: []models.Modality{models.ModalityOnline}},
		{ID: "t2", Name: "Ben", Department: "Physics", Subjects: []string{"Mechanics"}, Rating: 4.1, Modalities: []models.Modality{models.ModalityInPerson}},
	})

	h := NewTutorHandler(
		service.NewTutorService(store, zap.NewNop()),
		service.NewMatchService(store, validator.New(), zap.NewNop()),
		nil,
	)

	r := gin.New()
	r.GET("/tutors", h.List)
	r.GET("/tutors/:id", h.Get)
	r.GET("/tutors/meta/subjects", h.Subjects)
	r.POST("/tutors/match", h.Match)
	return r
}

func TestTutorHandlerList(t *testing.T) {
	r := newTutorRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/tutors?search=mathematics", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 1, envelope.Pagination.TotalCount)
}

func TestTutorHandlerGetNotFound(t *testing.T) {
	r := newTutorRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/tutors/ghost", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTutorHandlerSubjects(t *testing.T) {
	r := newTutorRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/tutors/meta/subjects", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Calculus")
}

func TestTutorHandlerMatch(t *testing.T) {
	r := newTutorRouter(t)

	body, _ := json.Marshal(service.MatchRequest{Subject: "Calculus", Modality: "online"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/tutors/match", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data service.MatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data.Recommended)
	assert.Equal(t, "t1", envelope.Data.Recommended.ID)
	assert.Empty(t, envelope.Data.Alternates)
}

func TestTutorHandlerMatchInvalidBody(t *testing.T) {
	r := newTutorRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/tutors/match", bytes.NewBufferString(`{"subject":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
