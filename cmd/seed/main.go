package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lib/pq"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/database"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/model"
)

// sampleJobs are inserted when the jobs table is empty so a fresh deployment
// has something to show.
var sampleJobs = []model.Job{
	{
		EditableJobInfo: model.EditableJobInfo{
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp Inc.",
			Location:    "San Francisco, CA",
			JobType:     "Full-time",
			Tags:        pq.StringArray{"React", "TypeScript", "JavaScript", "CSS"},
			Description: "Join our team to build amazing user experiences with React and TypeScript.",
		},
	},
	{
		EditableJobInfo: model.EditableJobInfo{
			Title:       "UX/UI Designer",
			Company:     "Creative Studios",
			Location:    "New York, NY",
			JobType:     "Full-time",
			Tags:        pq.StringArray{"Figma", "Design Systems", "User Research"},
			Description: "Design beautiful and intuitive user interfaces for our web applications.",
		},
	},
	{
		EditableJobInfo: model.EditableJobInfo{
			Title:       "Backend Developer",
			Company:     "DataFlow Solutions",
			Location:    "Remote",
			JobType:     "Remote",
			Tags:        pq.StringArray{"Node.js", "Python", "API Design", "Database"},
			Description: "Build scalable backend services and APIs for our growing platform.",
		},
	},
	{
		EditableJobInfo: model.EditableJobInfo{
			Title:       "Marketing Intern",
			Company:     "StartupX",
			Location:    "Austin, TX",
			JobType:     "Internship",
			Tags:        pq.StringArray{"Digital Marketing", "Social Media", "Content Creation"},
			Description: "Learn and contribute to our marketing efforts in a fast-paced startup environment.",
		},
	},
	{
		EditableJobInfo: model.EditableJobInfo{
			Title:       "DevOps Engineer",
			Company:     "CloudTech Solutions",
			Location:    "Seattle, WA",
			JobType:     "Contract",
			Tags:        pq.StringArray{"AWS", "Docker", "Kubernetes", "CI/CD"},
			Description: "Help us build and maintain our cloud infrastructure and deployment pipelines.",
		},
	},
	{
		EditableJobInfo: model.EditableJobInfo{
			Title:       "Product Manager",
			Company:     "InnovateCorp",
			Location:    "Los Angeles, CA",
			JobType:     "Full-time",
			Tags:        pq.StringArray{"Product Strategy", "Agile", "Analytics", "Leadership"},
			Description: "Lead product development and strategy for our flagship applications.",
		},
	},
}

func main() {

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	var count int64
	if err := db.Model(&model.Job{}).Count(&count).Error; err != nil {
		log.Fatal("failed to count job postings: ", err)
	}
	if count > 0 {
		fmt.Printf("Jobs table already has %d posting(s), nothing to do\n", count)
		os.Exit(0)
	}

	if err := db.Create(&sampleJobs).Error; err != nil {
		log.Fatal("failed to seed job postings: ", err)
	}

	fmt.Printf("Seeded %d sample job postings\n", len(sampleJobs))
}
