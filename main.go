package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"restock/app"
)

func main() {
	// Load .env in development; in production variables are set directly.
	// Overload lets .env values win over the inherited environment.
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
		}
	}

	if err := app.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
