package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

const actorKeyPrefix = "actor:"

// Index keys share the actor prefix but never hold an actor
var indexPrefixes = []string{"actor:all", "actor:owner:", "actor:assignment:", "actor:assigned:"}

func isIndexKey(key string) bool {
	for _, prefix := range indexPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// outOfRange lists the values the actor repair command would clamp
func outOfRange(actor *entities.Actor) []string {
	var problems []string
	if actor.HP.Value < 0 || actor.HP.Value > actor.HP.Max {
		problems = append(problems, fmt.Sprintf("hp %d/%d", actor.HP.Value, actor.HP.Max))
	}
	if actor.Will.Value < 0 || actor.Will.Value > actor.Will.Max {
		problems = append(problems, fmt.Sprintf("will %d/%d", actor.Will.Value, actor.Will.Max))
	}
	if actor.PainPenalty < 0 || actor.PainPenalty > 2 {
		problems = append(problems, fmt.Sprintf("pain penalty %d", actor.PainPenalty))
	}
	if actor.Round.ActionsRemaining < 0 {
		problems = append(problems, fmt.Sprintf("actions remaining %d", actor.Round.ActionsRemaining))
	}
	return problems
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning actors...")

	iter := client.Scan(ctx, 0, actorKeyPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	var needsRepair int
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if isIndexKey(key) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var actor entities.Actor
		if err := json.Unmarshal([]byte(data), &actor); err != nil || actor.ID == "" {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if problems := outOfRange(&actor); len(problems) > 0 {
			needsRepair++
			fmt.Printf("! %s (%s): %s\n", key, actor.Name, strings.Join(problems, ", "))
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d actors, %d corrupted, %d out of range\n", checkedCount, len(corruptedKeys), needsRepair)
	if needsRepair > 0 {
		fmt.Println("Run `pokerole-bot actor repair` to clamp out of range values.")
	}

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')

	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		actorID := strings.TrimPrefix(key, actorKeyPrefix)
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, "actor:all", actorID)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
