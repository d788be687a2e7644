package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeReservationExpire = "reservation:expire"

// ExpiryPayload identifies the reservation whose payment hold has run out.
type ExpiryPayload struct {
	ReservationID string `json:"reservationId"`
}

// NewExpiryTask builds the task that releases an unpaid reservation at fireAt.
func NewExpiryTask(reservationID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ExpiryPayload{ReservationID: reservationID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqExpiryScheduler enqueues expiry tasks on the shared queue.
type AsynqExpiryScheduler struct {
	Client *asynq.Client
}

func (s *AsynqExpiryScheduler) ScheduleExpiry(reservationID string, at time.Time) error {
	task, opts, err := NewExpiryTask(reservationID, at)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
