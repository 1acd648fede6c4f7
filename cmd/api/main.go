package main

import (
	"log"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/database"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/server"
)

func main() {
	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %s", err)
		}
	}()

	srv := server.NewServer(db)

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
