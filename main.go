package main

import (
	"log"

	"github.com/alamin516/roombooking-server/startup"
	"github.com/alamin516/roombooking-server/startup/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.NewConfig()
	server := startup.NewServer(cfg)
	server.Start()
}
