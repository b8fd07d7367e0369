package main

import (
	"log"

	"github.com/jdelcourt/marque/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ marque failed to start: %v", err)
	}
}
