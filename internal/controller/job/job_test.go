package job

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/database"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/store"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func newRouter() *gin.Engine {
	r := gin.New()
	jc := NewJobController(store.NewJobStore(testDB))
	r.GET("/api/jobs", jc.ListJobs)
	r.GET("/api/jobs/:id", jc.GetJobByID)
	r.POST("/api/jobs", jc.CreateJob)
	r.PUT("/api/jobs/:id", jc.UpdateJob)
	r.DELETE("/api/jobs/:id", jc.DeleteJob)
	return r
}

func performRaw(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validBody() gin.H {
	return gin.H{
		"title":    "QA Engineer",
		"company":  "Quality First Ltd",
		"location": "London",
		"jobType":  "Full-time",
	}
}

func TestCreateJob_roundTripsTagsInOrder(t *testing.T) {
	r := newRouter()

	body := validBody()
	body["tags"] = []string{"A", "B"}

	rec, resp := testutil.MakeJSONRequest(body, r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []interface{}{"A", "B"}, resp["tags"])

	id, ok := resp["id"].(string)
	assert.True(t, ok, "id must serialize as a string")

	rec, resp = testutil.MakeJSONRequest(nil, r, "/api/jobs/"+id, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{"A", "B"}, resp["tags"])
}

func TestCreateJob_defaultsTagsAndDescription(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(validBody(), r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []interface{}{}, resp["tags"])
	assert.Equal(t, "", resp["description"])
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp["datePosted"])
}

func TestCreateJob_joinsValidationMessages(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"location": "Paris",
		"jobType":  "Full-time",
	}, r, "/api/jobs", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Title is required, Company is required", resp["error"])
}

func TestCreateJob_invalidJobType(t *testing.T) {
	r := newRouter()

	body := validBody()
	body["jobType"] = "Freelance"

	rec, resp := testutil.MakeJSONRequest(body, r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid job type", resp["error"])
}

func TestCreateJob_emptyBody(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No data provided", resp["error"])
}

func TestGetJobByID_notFound(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/jobs/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])

	rec, resp = testutil.MakeJSONRequest(nil, r, "/api/jobs/abc", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestGetJobByID_success(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r,
		fmt.Sprintf("/api/jobs/%d", database.TestJobBackend.ID), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fmt.Sprint(database.TestJobBackend.ID), resp["id"])
	assert.Equal(t, database.TestJobBackend.Title, resp["title"])
	assert.Equal(t, database.TestJobBackend.JobType, resp["jobType"])
}

func TestUpdateJob_replacesListedFields(t *testing.T) {
	r := newRouter()

	rec, created := testutil.MakeJSONRequest(validBody(), r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	id := created["id"].(string)

	rec, updated := testutil.MakeJSONRequest(gin.H{
		"title":       "QA Lead",
		"company":     "Quality First Ltd",
		"location":    "Leeds",
		"jobType":     "Part-time",
		"tags":        []string{"testing"},
		"description": "Lead the QA practice.",
	}, r, "/api/jobs/"+id, http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, "QA Lead", updated["title"])
	assert.Equal(t, "Part-time", updated["jobType"])
	assert.Equal(t, []interface{}{"testing"}, updated["tags"])
	assert.Equal(t, created["datePosted"], updated["datePosted"])
}

func TestUpdateJob_notFound(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(validBody(), r, "/api/jobs/999999", http.MethodPut)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestUpdateJob_validationFailureLeavesRecordUntouched(t *testing.T) {
	r := newRouter()

	rec, created := testutil.MakeJSONRequest(validBody(), r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	id := created["id"].(string)

	rec, resp := testutil.MakeJSONRequest(gin.H{"jobType": "Full-time"}, r, "/api/jobs/"+id, http.MethodPut)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Title is required, Company is required, Location is required", resp["error"])

	rec, after := testutil.MakeJSONRequest(nil, r, "/api/jobs/"+id, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created["title"], after["title"])
}

func TestDeleteJob_thenGetReturns404(t *testing.T) {
	r := newRouter()

	rec, created := testutil.MakeJSONRequest(validBody(), r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	id := created["id"].(string)

	req, _ := http.NewRequest(http.MethodDelete, "/api/jobs/"+id, nil)
	del := performRaw(r, req)
	assert.Equal(t, http.StatusNoContent, del.Code)
	assert.Empty(t, del.Body.String())

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/jobs/"+id, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestListJobs_filtersByExactJobType(t *testing.T) {
	r := newRouter()

	rec, jobs := testutil.MakeListRequest(r, "/api/jobs?jobType=Full-time")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, jobs)
	for _, j := range jobs {
		assert.Equal(t, "Full-time", j["jobType"])
	}
}

func TestListJobs_sortAscendingByDate(t *testing.T) {
	r := newRouter()

	rec, jobs := testutil.MakeListRequest(r, "/api/jobs?sortBy=date_asc")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, jobs)
	for i := 1; i < len(jobs); i++ {
		assert.LessOrEqual(t, jobs[i-1]["datePosted"].(string), jobs[i]["datePosted"].(string))
	}
}

func TestListJobs_repeatedTagsParams(t *testing.T) {
	r := newRouter()

	rec, jobs := testutil.MakeListRequest(r, "/api/jobs?tags=Figma&tags=User+Research")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, jobs)
	for _, j := range jobs {
		assert.Equal(t, "UX/UI Designer", j["title"])
	}
}
