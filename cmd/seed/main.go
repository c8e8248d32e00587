package main

import (
	"log"
	"os"
	"path/filepath"

	"cinimagic-be/internal/model"
	"cinimagic-be/pkg/database"
	"cinimagic-be/pkg/recommender"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Demo accounts for local development. Credentials are stored as-is, the
// auth flow does a straight comparison.
var demoUsers = []model.User{
	{Username: "demo", Password: "demo123"},
	{Username: "cinephile", Password: "popcorn"},
}

// A tiny hand-built catalog so the recommendation screen works out of the
// box without the offline similarity pipeline.
var demoTitles = []string{
	"The Matrix",
	"Inception",
	"Interstellar",
	"Blade Runner 2049",
	"The Prestige",
	"Arrival",
}

var demoMatrix = [][]float64{
	{1.00, 0.82, 0.64, 0.78, 0.55, 0.60},
	{0.82, 1.00, 0.75, 0.66, 0.80, 0.58},
	{0.64, 0.75, 1.00, 0.70, 0.62, 0.85},
	{0.78, 0.66, 0.70, 1.00, 0.52, 0.72},
	{0.55, 0.80, 0.62, 0.52, 1.00, 0.50},
	{0.60, 0.58, 0.85, 0.72, 0.50, 1.00},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	seedUsers()
	seedArtifact()
}

func seedUsers() {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Yellow("Skipping user seed: DB_CONNECTION_STRING is not set")
		return
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo accounts...")

	for _, u := range demoUsers {
		var existing model.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			color.Yellow("User '%s' already exists, skipping...", u.Username)
			continue
		}

		if err := db.Create(&u).Error; err != nil {
			color.Red("Error creating user '%s': %v", u.Username, err)
		} else {
			color.Green("Created user: %s", u.Username)
		}
	}
}

func seedArtifact() {
	path := os.Getenv("RECOMMENDER_ARTIFACT_PATH")
	if path == "" {
		path = "artifacts/catalog.gob"
	}

	if _, err := os.Stat(path); err == nil {
		color.Yellow("Artifact '%s' already exists, skipping...", path)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("Error: Failed to create artifacts directory: %v", err)
	}

	artifact := &recommender.Artifact{
		Titles: demoTitles,
		Matrix: demoMatrix,
	}
	if err := recommender.SaveArtifact(path, artifact); err != nil {
		log.Fatalf("Error: Failed to write artifact: %v", err)
	}

	color.Green("Wrote demo similarity artifact: %s (%d titles)", path, len(demoTitles))
}
