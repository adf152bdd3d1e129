//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trip-planner-service/internal/domain"
)

// Prints every local-ledger event published while the remote backend is down.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	stream := flag.String("stream", domain.StreamLocalLedger, "ledger event stream")
	fromStart := flag.Bool("from-start", false, "replay the whole stream instead of new events only")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	lastID := "$"
	if *fromStart {
		lastID = "0"
	}

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", *stream)

	for {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{*stream, lastID},
			Count:   10,
			Block:   5 * time.Second,
		}).Result()
		if ctx.Err() != nil {
			return
		}
		if err != nil && err != redis.Nil {
			log.Printf("Failed to read stream: %v", err)
			continue
		}

		for _, s := range results {
			for _, msg := range s.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var event domain.LedgerEvent
				if err := json.Unmarshal([]byte(dataStr), &event); err != nil {
					log.Printf("Skipping malformed event %s: %v", msg.ID, err)
					continue
				}

				fmt.Printf("%s  %-14s %s  at %s\n",
					msg.ID, event.Kind, event.RecordID, event.RecordedAt.Format(time.RFC3339))
			}
		}
	}
}
