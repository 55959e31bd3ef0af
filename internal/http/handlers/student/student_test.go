package student

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhelinfan/HW1-CloudComputing/internal/storage/memory"
	"github.com/zhelinfan/HW1-CloudComputing/internal/types"
)

func newTestRouter() *http.ServeMux {
	store := memory.New[types.StudentRecord]("Student")
	router := http.NewServeMux()
	router.HandleFunc("POST /students", New(store))
	router.HandleFunc("GET /students", GetList(store))
	router.HandleFunc("GET /students/{id}", GetByID(store))
	router.HandleFunc("PUT /students/{id}", Update(store))
	router.HandleFunc("DELETE /students/{id}", Delete(store))
	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validStudent = `{
	"uni": "zf1234",
	"first_name": "Jocelyn",
	"last_name": "Fan",
	"email": "zf1234@columbia.edu",
	"student_status": "graduate",
	"courses": [
		{"course_code": "COMS4153", "title": "Cloud Computing", "credits": 3}
	]
}`

func TestStudentLifecycle(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodPost, "/students", validStudent)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.StudentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "zf1234", created.Uni)
	assert.Equal(t, "graduate", created.StudentStatus)
	require.Len(t, created.Courses, 1)
	assert.Equal(t, "COMS4153", created.Courses[0].CourseCode)

	// PUT is a sparse merge: only the supplied field changes.
	rec = do(t, router, http.MethodPut, "/students/"+created.ID.String(),
		`{"student_status": "alumni"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.StudentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "alumni", updated.StudentStatus)
	assert.Equal(t, "zf1234", updated.Uni)
	assert.Equal(t, "Jocelyn", updated.FirstName)
	require.Len(t, updated.Courses, 1, "omitted course list must survive the merge")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	rec = do(t, router, http.MethodDelete, "/students/"+created.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/students/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Student not found")
}

func TestStudentCoursesReplacedWholesale(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodPost, "/students", validStudent)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created types.StudentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// A supplied list replaces the stored one; it never appends.
	rec = do(t, router, http.MethodPut, "/students/"+created.ID.String(),
		`{"courses": [{"course_code": "COMS4170", "title": "User Interface Design", "credits": 3}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.StudentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Len(t, updated.Courses, 1)
	assert.Equal(t, "COMS4170", updated.Courses[0].CourseCode)

	// And an explicit empty list clears enrollment.
	rec = do(t, router, http.MethodPut, "/students/"+created.ID.String(), `{"courses": []}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Empty(t, updated.Courses)
}

func TestStudentDefaultsOnCreate(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodPost, "/students",
		`{"uni": "ab123", "first_name": "Ada", "last_name": "Lovelace",
		  "email": "ada@example.com", "student_status": "senior"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The omitted course list serializes as [], not null.
	assert.Contains(t, rec.Body.String(), `"courses":[]`)
}

func TestCreateStudentValidation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "uppercase uni rejected",
			body: `{"uni": "ZF1234", "first_name": "Jocelyn", "last_name": "Fan",
			        "email": "zf1234@columbia.edu", "student_status": "graduate"}`,
			want: "Uni",
		},
		{
			name: "malformed email rejected",
			body: `{"uni": "zf1234", "first_name": "Jocelyn", "last_name": "Fan",
			        "email": "not-an-email", "student_status": "graduate"}`,
			want: "Email",
		},
		{
			name: "missing student_status",
			body: `{"uni": "zf1234", "first_name": "Jocelyn", "last_name": "Fan",
			        "email": "zf1234@columbia.edu"}`,
			want: "StudentStatus",
		},
		{
			name: "bad embedded course code",
			body: `{"uni": "zf1234", "first_name": "Jocelyn", "last_name": "Fan",
			        "email": "zf1234@columbia.edu", "student_status": "graduate",
			        "courses": [{"course_code": "coms4153", "title": "Cloud Computing", "credits": 3}]}`,
			want: "CourseCode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/students", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestStudentListInsertionOrder(t *testing.T) {
	router := newTestRouter()

	for _, uni := range []string{"aa1111", "bb2222", "cc3333"} {
		rec := do(t, router, http.MethodPost, "/students",
			`{"uni": "`+uni+`", "first_name": "A", "last_name": "B",
			  "email": "`+uni+`@columbia.edu", "student_status": "senior"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, router, http.MethodGet, "/students", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []types.StudentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, "aa1111", listed[0].Uni)
	assert.Equal(t, "bb2222", listed[1].Uni)
	assert.Equal(t, "cc3333", listed[2].Uni)
}

func TestStudentNotFound(t *testing.T) {
	router := newTestRouter()
	missing := uuid.New().String()

	for _, tc := range []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"student_status": "alumni"}`},
		{http.MethodDelete, ""},
	} {
		rec := do(t, router, tc.method, "/students/"+missing, tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)
		assert.Contains(t, rec.Body.String(), "Student not found", tc.method)
	}
}

func TestStudentInvalidID(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodDelete, "/students/42", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be a UUID")
}
