package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/apperror"
	"backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuery struct {
	subject *model.Subject
	user    *model.Request
	grouped map[string][]model.Request
	err     error
}

func (f *fakeQuery) SubjectByClass(_ context.Context, _ string) (*model.Subject, error) {
	return f.subject, f.err
}

func (f *fakeQuery) ApprovedUserByEmail(_ context.Context, _ string) (*model.Request, error) {
	return f.user, f.err
}

func (f *fakeQuery) PendingByClass(_ context.Context, _ model.Role) (map[string][]model.Request, error) {
	return f.grouped, f.err
}

func (f *fakeQuery) ApprovedByClass(_ context.Context, _ model.Role) (map[string][]model.Request, error) {
	return f.grouped, f.err
}

func (f *fakeQuery) RejectedByClass(_ context.Context, _ model.Role) (map[string][]model.Request, error) {
	return f.grouped, f.err
}

func newQueryRouter(fake *fakeQuery) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewQueryHandler(fake).RegisterRoutes(router.Group(""))
	return router
}

func get(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGetSubjects(t *testing.T) {
	router := newQueryRouter(&fakeQuery{subject: &model.Subject{Class: "5", Subjects: []string{"Math"}}})

	rec, _ := get(t, router, "/subjects/5")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSubjectsNotFound(t *testing.T) {
	router := newQueryRouter(&fakeQuery{err: fmt.Errorf("lookup subject: %w", apperror.ErrNotFound)})

	rec, body := get(t, router, "/subjects/12")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, string(body["error"]), "not found")
}

func TestApprovedUserRoutes(t *testing.T) {
	fake := &fakeQuery{user: &model.Request{Name: "Alice", Email: "a@x.com"}}
	router := newQueryRouter(fake)

	// Both route spellings resolve the same lookup.
	for _, path := range []string{"/get-approved-user/a@x.com", "/user/a@x.com"} {
		rec, _ := get(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGroupedListingsEmptyObject(t *testing.T) {
	router := newQueryRouter(&fakeQuery{grouped: map[string][]model.Request{}})

	for _, path := range []string{
		"/students-request", "/instructors-request",
		"/approved-students", "/approved-instructors",
		"/rejected-students", "/rejected-instructors",
	} {
		rec, body := get(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{}`, string(body["data"]), path)
	}
}

func TestGroupedListingStoreFailure(t *testing.T) {
	router := newQueryRouter(&fakeQuery{err: fmt.Errorf("list: %w", apperror.ErrStoreUnavailable)})

	rec, _ := get(t, router, "/approved-students")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
