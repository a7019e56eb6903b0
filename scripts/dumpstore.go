package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"emplealocal-backend/config"
	"emplealocal-backend/pkg/kvstore"
)

// Dumps the persisted collections as indented JSON. Handy for inspecting
// a store file while developing: go run ./scripts
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var store kvstore.Store
	switch cfg.StoreDriver {
	case "file":
		store, err = kvstore.NewFile(cfg.StorePath)
	case "memory":
		log.Fatal("memory stores hold nothing between runs")
	default:
		store, err = kvstore.NewSQLite(cfg.StorePath)
	}
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	keys := []string{
		"emplealocal_users",
		"emplealocal_jobs",
		"emplealocal_applications",
		"emplealocal_currentUser",
	}

	for _, key := range keys {
		value, err := store.Get(ctx, key)
		if errors.Is(err, kvstore.ErrNoKey) {
			fmt.Printf("%s: <empty>\n\n", key)
			continue
		}
		if err != nil {
			log.Fatalf("read %s: %v", key, err)
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, []byte(value), "", "  "); err != nil {
			fmt.Printf("%s (raw): %s\n\n", key, value)
			continue
		}
		fmt.Printf("%s:\n%s\n\n", key, pretty.String())
	}
}
