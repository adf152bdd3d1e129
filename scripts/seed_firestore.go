//go:build ignore
// +build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/trip-planner-service/internal/config"
	firestoreRepo "github.com/trip-planner-service/internal/repository/firestore"
	"github.com/trip-planner-service/internal/repository/local"
	"go.uber.org/zap"
)

// Copies the bundled planner dataset into the remote planners collection.
// Credentials come from the same FIREBASE_* settings the service uses.
func main() {
	collection := flag.String("collection", "planners", "target Firestore collection")
	dryRun := flag.Bool("dry-run", false, "print the planners without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.RemoteConfigured() {
		log.Fatal("FIREBASE_PROJECT_ID and FIREBASE_CREDENTIALS_BASE64 must be set")
	}

	planners, err := local.BundledPlanners()
	if err != nil {
		log.Fatalf("Failed to read bundled planners: %v", err)
	}

	if *dryRun {
		for _, p := range planners {
			fmt.Printf("%s  %-20s areas=%v available=%t\n", p.ID, p.Name, p.Areas, p.Availability)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := firestoreRepo.NewClient(ctx, &cfg.Firebase, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()

	batch := client.Batch()
	for _, p := range planners {
		batch.Set(client.Collection(*collection).Doc(p.ID), p)
	}
	if _, err := batch.Commit(ctx); err != nil {
		log.Fatalf("Failed to write planners: %v", err)
	}

	fmt.Printf("Seeded %d planners into %s\n", len(planners), *collection)
}
