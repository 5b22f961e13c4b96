package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"m2_studio/internal/adapter/persistence/repository"
	"m2_studio/internal/infrastructure/database"
	"m2_studio/internal/infrastructure/notify"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
)

// The worker drains the notification outbox and delivers each event to the
// configured channels.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb := database.ConnectDynamoDB(ctx)
	processor := notify.NewProcessor(notify.ChannelsFromEnv(repository.NewNotificationDynamoRepository(ddb))...)
	concurrency := envInt("WORKER_CONCURRENCY", 10)

	switch strings.ToLower(os.Getenv("NOTIFY_TRANSPORT")) {
	case notify.TransportAMQP:
		log.Printf("[worker] consuming %s", notify.QueueWorker)
		consumer := notify.NewAMQPConsumer(notify.AMQPURLFromEnv(), concurrency)
		if err := consumer.Run(ctx, processor); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("[worker] amqp consumer stopped: %v", err)
		}
	case notify.TransportLog:
		log.Printf("[worker] NOTIFY_TRANSPORT=log has no queue to drain")
	default:
		addr := notify.RedisAddrFromEnv()
		client := asynq.NewClient(asynq.RedisClientOpt{Addr: addr})
		defer client.Close()
		srv := notify.NewServer(addr, concurrency)
		if err := srv.Start(processor.Mux(client)); err != nil {
			log.Fatalf("[worker] could not start asynq server addr=%s: %v", addr, err)
		}
		log.Printf("[worker] asynq server started addr=%s concurrency=%d", addr, concurrency)
		<-ctx.Done()
		srv.Shutdown()
	}
	log.Printf("[worker] stopped")
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
