package main

import (
	"log"

	"github.com/MrSnakeDoc/snip/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ snip failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ snip failed: %v", err)
	}
}
