package main

import (
	"log"

	"go-farmtrack/config"
	"go-farmtrack/routes"
	"go-farmtrack/store"
)

func main() {
	cfg := config.Load()

	// All state lives in memory; every start begins from the samples.
	s := store.New()
	s.Seed()

	r := routes.SetupRouter(s, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
