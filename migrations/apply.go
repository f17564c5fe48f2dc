package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		fmt.Printf("Failed to connect to DB: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	files := os.Args[1:]
	if len(files) == 0 {
		files = []string{"migrations/001_init.sql"}
	}

	for _, f := range files {
		sqlFile, err := os.ReadFile(f)
		if err != nil {
			fmt.Printf("Failed to read sql file %s: %v\n", f, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sqlFile)); err != nil {
			fmt.Printf("Migration %s failed: %v\n", f, err)
			os.Exit(1)
		}
		fmt.Printf("Applied %s.\n", f)
	}
}
