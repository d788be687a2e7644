package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wheelify/config"
	reservationRepo "wheelify/database/repository/reservation"
	"wheelify/services/tasks"

	"github.com/hibiken/asynq"
)

// InitExpiryWorker runs the async worker that releases reservations left
// unpaid past the hold window.
func InitExpiryWorker(repo reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationExpire, handleExpiryTask(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpiryTask(repo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ExpiryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryHandler] invalid payload: %v", err)
			return err
		}

		released, err := repo.CancelIfUnpaid(ctx, p.ReservationID, "payment hold expired")
		if err != nil {
			log.Printf("[ExpiryHandler] failed to release reservation %s: %v", p.ReservationID, err)
			return err
		}
		if released {
			log.Printf("[ExpiryHandler] released unpaid reservation %s", p.ReservationID)
		}
		return nil
	}
}
