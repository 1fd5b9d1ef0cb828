//go:build ignore

// Создаёт заявку через POST /api/orders и ждёт событие в stream:orders:created.
//
//	go run scripts/order_smoke.go -api http://localhost:8080 -redis localhost:6379
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/redis/go-redis/v9"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/usecase/dto"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "API base URL")
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// последний ID до публикации, чтобы читать только новые события
	lastID := "0"
	if msgs, err := client.XRevRangeN(ctx, domain.StreamOrdersCreated, "+", "-", 1).Result(); err == nil && len(msgs) > 0 {
		lastID = msgs[0].ID
	}

	date := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	body, err := json.Marshal(dto.CreateOrderRequest{
		ListingType:   "empty_leg",
		Name:          "Smoke Test",
		Email:         "smoke@example.com",
		Phone:         "+33 6 00 00 00 00",
		Passengers:    2,
		From:          "Nice",
		To:            "Geneva",
		DepartureDate: date,
	})
	if err != nil {
		log.Fatalf("Failed to marshal order: %v", err)
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, *apiURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		log.Fatalf("Failed to create order: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Unexpected status: %d", resp.StatusCode)
	}
	fmt.Printf("Order created, waiting for event in %s...\n", domain.StreamOrdersCreated)

	for {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamOrdersCreated, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if ctx.Err() != nil {
			log.Fatal("Timeout waiting for order event")
		}
		if err != nil && err != redis.Nil {
			continue
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				data, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var event domain.OrderCreatedEvent
				if err := json.Unmarshal([]byte(data), &event); err != nil {
					continue
				}
				if event.Email == "smoke@example.com" {
					pretty, _ := json.MarshalIndent(event, "", "  ")
					fmt.Printf("Event received (message %s):\n%s\n", msg.ID, pretty)
					return
				}
			}
		}
	}
}
