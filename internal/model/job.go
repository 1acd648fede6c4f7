package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// ValidJobTypes is the closed set of employment types a job posting may carry.
var ValidJobTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Remote"}

// FilterAll is the sentinel filter value meaning "do not filter on this field".
const FilterAll = "All"

// EditableJobInfo is part of a job posting that can be set by clients.
type EditableJobInfo struct {
	Title       string         `gorm:"type:text;not null" json:"title"`
	Company     string         `gorm:"type:text;not null" json:"company"`
	Location    string         `gorm:"type:text;not null" json:"location"`
	JobType     string         `gorm:"type:text;not null;column:job_type" json:"jobType"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Description string         `gorm:"type:text" json:"description"`
}

// Job is gorm model for store job posting data in DB
type Job struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EditableJobInfo
	// Insert-only so seeding can backdate postings; never touched by update.
	DatePosted time.Time `gorm:"type:date;default:CURRENT_DATE;<-:create" json:"date_posted"`
}

// JobResponse is the external JSON representation of a job posting.
// ID goes out as a string and DatePosted as a plain calendar date.
type JobResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	JobType     string   `json:"jobType"`
	Tags        []string `json:"tags"`
	DatePosted  string   `json:"datePosted"`
	Description string   `json:"description"`
}

// ToResponse converts a Job row to its external representation.
func (j *Job) ToResponse() JobResponse {
	tags := []string(j.Tags)
	if tags == nil {
		tags = []string{}
	}
	return JobResponse{
		ID:          strconv.Itoa(int(j.ID)),
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		JobType:     j.JobType,
		Tags:        tags,
		DatePosted:  j.DatePosted.Format("2006-01-02"),
		Description: j.Description,
	}
}

// Validate checks the payload against the required-field and enumerated-value
// rules and returns every violated rule's message, in rule order.
func (e *EditableJobInfo) Validate() []string {
	errors := []string{}
	if strings.TrimSpace(e.Title) == "" {
		errors = append(errors, "Title is required")
	}
	if strings.TrimSpace(e.Company) == "" {
		errors = append(errors, "Company is required")
	}
	if strings.TrimSpace(e.Location) == "" {
		errors = append(errors, "Location is required")
	}
	if strings.TrimSpace(e.JobType) == "" {
		errors = append(errors, "Job type is required")
	}
	valid := false
	for _, t := range ValidJobTypes {
		if e.JobType == t {
			valid = true
			break
		}
	}
	if !valid {
		errors = append(errors, "Invalid job type")
	}
	return errors
}
