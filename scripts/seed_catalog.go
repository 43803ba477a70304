package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/andregumieri/fiap-brigalab/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	path := flag.String("db", "brigadeiro.sqlite", "SQLite database file")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*path), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	ctx := context.Background()
	catalogService := services.NewCatalogService(db)
	if err := catalogService.Migrate(ctx); err != nil {
		log.Fatal("Failed to migrate catalog table:", err)
	}

	seeded, err := catalogService.Seed(ctx, catalog.Default())
	if err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}
	if seeded {
		fmt.Printf("Seeded the default catalog into %s\n", *path)
	} else {
		fmt.Printf("Catalog already present in %s, nothing written\n", *path)
	}

	cat, err := catalogService.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	fmt.Println("\nBases:")
	printOptions(cat.Bases, cat.DefaultBase)
	fmt.Println("\nToppings:")
	printOptions(cat.Toppings, cat.DefaultTopping)

	fmt.Println("\nStart a session with:")
	fmt.Printf("curl -X POST http://localhost:8080/api/v1/sessions\n")
}

func printOptions(opts []catalog.Option, defaultID string) {
	for _, opt := range opts {
		marker := " "
		if opt.ID == defaultID {
			marker = "*"
		}
		fmt.Printf(" %s %-16s %-18s %s\n", marker, opt.ID, opt.Name, opt.Style)
	}
}
