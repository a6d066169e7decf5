package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
)

// main prints the seed catalog as indented JSON.
// Usage: go run cmd/catalog/main.go > catalog.json
// Handy for generating frontend fixtures; not part of the main application.
func main() {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(models.DefaultProducts()); err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}
}
