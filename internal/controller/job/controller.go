// Package job provides HTTP handlers for job posting related operations.
package job

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/model"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/store"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/utilities"
)

// JobController handles job posting related endpoints
type JobController struct {
	Store *store.JobStore
}

// NewJobController creates a new instance of JobController
func NewJobController(st *store.JobStore) *JobController {
	return &JobController{
		Store: st,
	}
}

// ListJobs fetches all job postings that match the query from the database
// and returns them as a JSON response. Every query parameter is optional;
// filters are conjunctive.
func (jc *JobController) ListJobs(c *gin.Context) {

	filter := store.Filter{
		Keyword:  c.Query("keyword"),
		JobType:  c.Query("jobType"),
		Location: c.Query("location"),
		Tags:     c.QueryArray("tags"),
		SortBy:   c.Query("sortBy"),
	}

	jobs, err := jc.Store.List(filter)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	resp := []model.JobResponse{}
	for i := range jobs {
		resp = append(resp, jobs[i].ToResponse())
	}

	c.JSON(http.StatusOK, resp)
}

// GetJobByID fetches a job posting by its ID from the database
// and returns it as a JSON response.
func (jc *JobController) GetJobByID(c *gin.Context) {
	id := c.Param("id")

	job, err := jc.Store.Get(id)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, job.ToResponse())
}

// CreateJob handles the creation of a new job posting.
func (jc *JobController) CreateJob(c *gin.Context) {

	// construct job posting from request
	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		if errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "No data provided"})
			return
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := jc.Store.Create(info)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job.ToResponse())
}

// UpdateJob fully replaces the editable fields of an existing job posting.
func (jc *JobController) UpdateJob(c *gin.Context) {
	id := c.Param("id")

	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		if errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "No data provided"})
			return
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := jc.Store.Update(id, info)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, job.ToResponse())
}

// DeleteJob removes a job posting by its ID.
func (jc *JobController) DeleteJob(c *gin.Context) {
	id := c.Param("id")

	if err := jc.Store.Delete(id); err != nil {
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
