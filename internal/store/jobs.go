// Package store provides persistence operations for job postings on top of the
// database layer. Every operation reports failure through typed errors so the
// HTTP layer can translate them to statuses in one place.
package store

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/database"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/model"
)

// ErrJobNotFound is returned when the referenced job id does not exist.
var ErrJobNotFound = errors.New("job not found")

// ValidationError carries every violated validation rule for a rejected payload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// Recognized sortBy keys for List. Anything else keeps the table's natural order.
const (
	SortDateDesc   = "date_desc"
	SortDateAsc    = "date_asc"
	SortTitleAsc   = "title_asc"
	SortCompanyAsc = "company_asc"
)

// Filter holds the optional narrowing and ordering parameters for List.
// Zero values mean "do not filter"; JobType and Location also treat the
// sentinel "All" that way.
type Filter struct {
	Keyword  string
	JobType  string
	Location string
	Tags     []string
	SortBy   string
}

// JobStore is the durable keyed storage of job postings. Writes are serialized
// through a mutex and run inside a transaction, so a failed write rolls back
// before the error reaches the caller.
type JobStore struct {
	DB *database.DBinstanceStruct

	writeMu sync.Mutex
}

// NewJobStore creates a new JobStore backed by the given database instance.
func NewJobStore(db *database.DBinstanceStruct) *JobStore {
	return &JobStore{
		DB: db,
	}
}

// List fetches all job postings matching every supplied filter, ordered by the
// requested sort key.
func (s *JobStore) List(f Filter) ([]model.Job, error) {

	result := s.DB.Model(&model.Job{})

	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		result = result.Where("title ILIKE ? OR company ILIKE ?", pattern, pattern)
	}

	if f.JobType != "" && f.JobType != model.FilterAll {
		result = result.Where("job_type = ?", f.JobType)
	}

	if f.Location != "" && f.Location != model.FilterAll {
		result = result.Where("location ILIKE ?", "%"+f.Location+"%")
	}

	// Each requested tag must appear somewhere in the comma-joined tag text.
	// Substring match, not set membership: a query for "S" matches almost
	// every posting. Kept on purpose.
	for _, tag := range f.Tags {
		result = result.Where("array_to_string(tags, ',') ILIKE ?", "%"+tag+"%")
	}

	recognized := true
	switch f.SortBy {
	case "", SortDateDesc:
		result = result.Order(clause.OrderByColumn{
			Column: clause.Column{Name: "date_posted"},
			Desc:   true,
		})
	case SortDateAsc:
		result = result.Order(clause.OrderByColumn{
			Column: clause.Column{Name: "date_posted"},
		})
	case SortTitleAsc:
		result = result.Order(clause.OrderByColumn{
			Column: clause.Column{Name: "title"},
		})
	case SortCompanyAsc:
		result = result.Order(clause.OrderByColumn{
			Column: clause.Column{Name: "company"},
		})
	default:
		// Unrecognized keys keep the table's natural order.
		recognized = false
	}
	if recognized {
		// Deterministic tie-break for equal sort keys.
		result = result.Order(clause.OrderByColumn{
			Column: clause.Column{Name: "id"},
		})
	}

	var jobs []model.Job
	if err := result.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get fetches a single job posting by id.
func (s *JobStore) Get(id string) (model.Job, error) {
	jobID, err := parseID(id)
	if err != nil {
		return model.Job{}, err
	}
	var job model.Job
	if err := s.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Job{}, ErrJobNotFound
		}
		return model.Job{}, err
	}
	return job, nil
}

// Create validates and persists a new job posting. The id and posting date are
// assigned by the database; the created row is returned.
func (s *JobStore) Create(info model.EditableJobInfo) (model.Job, error) {
	if violations := info.Validate(); len(violations) > 0 {
		return model.Job{}, &ValidationError{Violations: violations}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	job := model.Job{EditableJobInfo: normalize(info)}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&job).Error; err != nil {
			return err
		}
		// Reload to pick up the defaulted posting date.
		return tx.Where("id = ?", job.ID).First(&job).Error
	})
	if err != nil {
		return model.Job{}, err
	}
	return job, nil
}

// Update fully replaces the editable fields of an existing job posting. The
// id and posting date are never altered. An unknown id reports not-found
// before the payload is validated.
func (s *JobStore) Update(id string, info model.EditableJobInfo) (model.Job, error) {
	jobID, err := parseID(id)
	if err != nil {
		return model.Job{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var job model.Job
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", jobID).First(&job).Error; err != nil {
			return err
		}

		if violations := info.Validate(); len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}

		// Select forces zero-valued fields through, giving full-replace
		// semantics instead of gorm's skip-zero-value default.
		updated := normalize(info)
		if err := tx.Model(&job).
			Select("title", "company", "location", "job_type", "tags", "description").
			Updates(model.Job{EditableJobInfo: updated}).Error; err != nil {
			return err
		}

		// Reload the job posting to return the latest data
		return tx.Where("id = ?", job.ID).First(&job).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Job{}, ErrJobNotFound
		}
		return model.Job{}, err
	}
	return job, nil
}

// Delete removes a job posting by id. The id is never reassigned afterwards.
func (s *JobStore) Delete(id string) error {
	jobID, err := parseID(id)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var job model.Job
		if err := tx.Where("id = ?", jobID).First(&job).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	return nil
}

// parseID converts a path id to its integer form. Ids that are not integers
// cannot reference any row, so they report as not found.
func parseID(id string) (int, error) {
	jobID, err := strconv.Atoi(id)
	if err != nil {
		return 0, ErrJobNotFound
	}
	return jobID, nil
}

// normalize trims surrounding whitespace from the free-text fields and makes
// sure tags land as an empty array instead of NULL.
func normalize(info model.EditableJobInfo) model.EditableJobInfo {
	info.Title = strings.TrimSpace(info.Title)
	info.Company = strings.TrimSpace(info.Company)
	info.Location = strings.TrimSpace(info.Location)
	info.Description = strings.TrimSpace(info.Description)
	if info.Tags == nil {
		info.Tags = pq.StringArray{}
	}
	return info
}
