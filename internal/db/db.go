package db

import (
	"log"
	"os"

	"loop/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=loop port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.University{},
		&models.Review{},
		&models.Post{},
		&models.Comment{},
		&models.PostVote{},
		&models.CommentVote{},
		// University page threading
		&models.UniComment{},
		&models.UniReply{},
		&models.UniVote{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedUniversities()
}

func seedUniversities() {
	var count int64
	DB.Model(&models.University{}).Count(&count)
	if count > 0 {
		log.Println("Universities already seeded, skipping")
		return
	}

	universities := []models.University{
		{
			Title:       "MIT",
			Description: "Private research university known for engineering and computer science.",
			Country:     "United States",
			Region:      "Massachusetts",
			Address:     "77 Massachusetts Ave, Cambridge, MA 02139",
			WebsiteURL:  "https://web.mit.edu",
		},
		{
			Title:       "ETH Zurich",
			Description: "Public research university with a strong science and technology focus.",
			Country:     "Switzerland",
			Region:      "Zurich",
			Address:     "Ramistrasse 101, 8092 Zurich",
			WebsiteURL:  "https://ethz.ch",
		},
		{
			Title:       "University of Melbourne",
			Description: "Public research university and the oldest in Victoria.",
			Country:     "Australia",
			Region:      "Victoria",
			Address:     "Parkville VIC 3010, Melbourne",
			WebsiteURL:  "https://www.unimelb.edu.au",
		},
	}

	for _, uni := range universities {
		if err := DB.Create(&uni).Error; err != nil {
			log.Printf("Failed to create university %s: %v", uni.Title, err)
		}
	}
	log.Println("Initial universities created successfully")
}
