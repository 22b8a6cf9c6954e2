package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/drazenc/fittrack/internal/catalog"
	"github.com/drazenc/fittrack/internal/db"
)

// Imports an exercises dataset JSON file into the exercise catalog
// table. Meant to be run once per dataset release, the service reads
// the catalog at boot.
func main() {
	datasetPath := flag.String("dataset", "./exercises.json", "path to the exercises dataset JSON file")
	dbHost := flag.String("db-host", "localhost", "postgres host")
	dbPort := flag.String("db-port", "5432", "postgres port")
	dbName := flag.String("db-name", "fittrack_db", "postgres database name")
	flag.Parse()

	datasetFile, err := os.Open(*datasetPath)
	if err != nil {
		log.Fatalf("open dataset file: %s", err)
	}
	defer datasetFile.Close()

	exercises, err := catalog.ParseDataset(datasetFile)
	if err != nil {
		log.Fatalf("parse dataset: %s", err)
	}
	log.Infof("parsed %d exercises from %s", len(exercises), *datasetPath)

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: *dbHost,
		DBPort: *dbPort,
		DBName: *dbName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	repo := catalog.NewRepo(dbPool)
	imported := 0
	for _, exercise := range exercises {
		if err := repo.Upsert(ctx, exercise); err != nil {
			log.Errorf("upsert exercise %s: %s", exercise.ID, err)
			continue
		}
		imported++
	}

	fmt.Printf("done, imported %d/%d exercises\n", imported, len(exercises))
}
