// filepath: cmd/flowershop/main.go
package main

import (
	"flowershop/internal/cli"

	// Import docs for Swagger
	_ "flowershop/docs"
)

// @title Flower Shop API
// @version 1.0.0
// @description Catalog backend for a flower shop: CRUD with images, reference lists, stats and catalog exports.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
