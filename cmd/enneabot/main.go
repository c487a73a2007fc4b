package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	enneabot "github.com/ennealab/enneabot-go"
	"github.com/ennealab/enneabot-go/store"
)

func main() {
	config := enneabot.NewBotConfigFromEnv()

	db, err := sql.Open("sqlite", config.SQLitePath)
	if err != nil {
		log.Fatalf("[main] open database: %v", err)
	}
	defer db.Close()

	results, err := store.NewSQLResultStore(db)
	if err != nil {
		log.Fatalf("[main] init result store: %v", err)
	}

	var sessions enneabot.SessionStore = enneabot.NewInMemorySessionStore()
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		sessions = store.NewRedisSessionStore(client, store.RedisSessionConfig{
			TTL: config.SessionTTL,
		})
	}

	bot := enneabot.NewQuizBot(config, sessions, results)
	if err := bot.Run(); err != nil {
		log.Fatalf("[main] %v", err)
	}
}
