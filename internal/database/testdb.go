package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/KhubaibShabbir4/Job-Finder-App/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded job postings, ordered oldest to newest posting date.
var (
	TestJobFrontend m.Job
	TestJobDesigner m.Job
	TestJobBackend  m.Job
	TestJobIntern   m.Job
	TestJobDevOps   m.Job
	TestJobManager  m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample job postings
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts the sample postings if the table is empty. Posting dates
// are spread out so ordering tests have something to order.
func seedTestData(db *DBinstanceStruct) error {
	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		return loadTestData(db)
	}

	date := func(daysAgo int) time.Time {
		return time.Now().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour)
	}

	jobs := []m.Job{
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Frontend Developer Intern",
				Company:     "StartupX",
				Location:    "Austin, TX",
				JobType:     "Internship",
				Tags:        pq.StringArray{"React", "TypeScript", "CSS"},
				Description: "Assist building our component library.",
			},
			DatePosted: date(30),
		},
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:       "UX/UI Designer",
				Company:     "Creative Studios",
				Location:    "New York, NY",
				JobType:     "Full-time",
				Tags:        pq.StringArray{"Figma", "Design Systems", "User Research"},
				Description: "Design beautiful and intuitive user interfaces.",
			},
			DatePosted: date(21),
		},
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Backend Developer",
				Company:     "DataFlow Solutions",
				Location:    "Remote",
				JobType:     "Remote",
				Tags:        pq.StringArray{"Go", "API Design", "Database"},
				Description: "Build scalable backend services and APIs.",
			},
			DatePosted: date(14),
		},
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Marketing Intern",
				Company:     "StartupX",
				Location:    "Austin, TX",
				JobType:     "Internship",
				Tags:        pq.StringArray{"Digital Marketing", "Social Media"},
				Description: "Learn and contribute to our marketing efforts.",
			},
			DatePosted: date(10),
		},
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:       "DevOps Engineer",
				Company:     "CloudTech Solutions",
				Location:    "Seattle, WA",
				JobType:     "Contract",
				Tags:        pq.StringArray{"AWS", "Docker", "Kubernetes"},
				Description: "Help us maintain our cloud infrastructure.",
			},
			DatePosted: date(5),
		},
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Product Manager",
				Company:     "InnovateCorp",
				Location:    "Los Angeles, CA",
				JobType:     "Full-time",
				Tags:        pq.StringArray{"Product Strategy", "Agile", "Leadership"},
				Description: "Lead product development and strategy.",
			},
			DatePosted: date(1),
		},
	}

	if err := db.Create(&jobs).Error; err != nil {
		return err
	}

	TestJobFrontend = jobs[0]
	TestJobDesigner = jobs[1]
	TestJobBackend = jobs[2]
	TestJobIntern = jobs[3]
	TestJobDevOps = jobs[4]
	TestJobManager = jobs[5]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(6).Find(&jobs).Error; err != nil {
		return err
	}
	targets := []*m.Job{
		&TestJobFrontend, &TestJobDesigner, &TestJobBackend,
		&TestJobIntern, &TestJobDevOps, &TestJobManager,
	}
	for i := range jobs {
		if i < len(targets) {
			*targets[i] = jobs[i]
		}
	}
	return nil
}
