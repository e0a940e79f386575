package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/emilythestrangee/twitter-clone/backend/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	srv := server.NewServer()
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
