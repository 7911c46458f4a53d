package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"storefront/internal/api"
	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/session"
	"storefront/internal/storage"
)

func main() {
	config.Load()

	store, err := openStorage()
	if err != nil {
		log.Fatal(err)
	}

	sess, err := session.New(store)
	if err != nil {
		log.Fatal(err)
	}
	basket, err := cart.New(store)
	if err != nil {
		log.Fatal(err)
	}

	client := api.NewClient(config.AppEnv.APIBaseURL, config.AppEnv.Brand, config.AppEnv.RequestTimeout)

	app := &app{
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
		client: client,
		sess:   sess,
		basket: basket,
	}
	if err := app.run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// openStorage picks the state backend: Redis when REDIS_ADDR is set (shared
// terminals), otherwise one JSON file per record in the state dir.
func openStorage() (storage.Store, error) {
	if config.AppEnv.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.AppEnv.RedisAddr})
		log.Println("state stored in Redis at", config.AppEnv.RedisAddr)
		return storage.NewRedisStore(client), nil
	}
	return storage.NewFileStore(config.AppEnv.StateDir)
}
