package scheduler

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"reservation-service/config"
	"reservation-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeMarkNoShow = "mark_no_show"

	queueDefault = "default"
)

type NoShowPayload struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	// net/http.ServeMux needs the trailing slash to match sub paths.
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(fmt.Sprintf(":%s", port), mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) InitInspector(cfg *config.RedisConfig) *asynq.Inspector {
	return asynq.NewInspector(redisOpt(cfg))
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				queueDefault: 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}

// TaskClient schedules and cancels the delayed booking tasks.
type TaskClient interface {
	ScheduleNoShow(ctx context.Context, bookingID uuid.UUID, at time.Time) error
	CancelNoShow(ctx context.Context, bookingID uuid.UUID) error
}

type taskClient struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewTaskClient(client *asynq.Client, inspector *asynq.Inspector) TaskClient {
	return &taskClient{client: client, inspector: inspector}
}

func NoShowTaskID(bookingID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", TypeMarkNoShow, bookingID)
}

func NewNoShowTask(bookingID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(NoShowPayload{BookingID: bookingID.String()})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMarkNoShow, payload), nil
}

// ScheduleNoShow is idempotent per booking.
func (c *taskClient) ScheduleNoShow(ctx context.Context, bookingID uuid.UUID, at time.Time) error {
	task, err := NewNoShowTask(bookingID)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(at),
		asynq.TaskID(NoShowTaskID(bookingID)),
		asynq.Queue(queueDefault),
	)
	if stderrors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func (c *taskClient) CancelNoShow(_ context.Context, bookingID uuid.UUID) error {
	err := c.inspector.DeleteTask(queueDefault, NoShowTaskID(bookingID))
	if stderrors.Is(err, asynq.ErrTaskNotFound) || stderrors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return err
}
