package taskqueue

import (
	"encoding/json"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Job kinds understood by the background workers.
const (
	JobSendEmail   = "send_email"
	JobUploadImage = "upload_image"
)

// Job is the wire format pushed onto the broker.
type Job struct {
	Kind       string      `json:"kind"`
	Payload    interface{} `json:"payload"`
	EnqueuedAt time.Time   `json:"enqueued_at"`
}

// TaskQueue dispatches fire-and-forget background jobs. Callers never await
// or observe job results; a failed enqueue is logged and swallowed.
type TaskQueue interface {
	Enqueue(kind string, payload interface{}) error
}

// RedisQueue pushes jobs onto a Redis list consumed by the worker process.
type RedisQueue struct {
	pool *redis.Pool
	key  string
	log  zerolog.Logger
}

// NewRedisQueue creates a RedisQueue connected to addr, publishing to key.
func NewRedisQueue(addr, key string) *RedisQueue {
	pool := &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
	}

	return &RedisQueue{
		pool: pool,
		key:  key,
		log:  log.With().Str("component", "taskqueue").Logger(),
	}
}

// Enqueue marshals the job and LPUSHes it onto the queue key.
func (q *RedisQueue) Enqueue(kind string, payload interface{}) error {
	job := Job{
		Kind:       kind,
		Payload:    payload,
		EnqueuedAt: time.Now(),
	}

	body, err := json.Marshal(job)
	if err != nil {
		return err
	}

	conn := q.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("LPUSH", q.key, body); err != nil {
		q.log.Error().Err(err).Str("kind", kind).Msg("failed to enqueue job")
		return err
	}

	return nil
}

// Close releases the underlying connection pool.
func (q *RedisQueue) Close() error {
	return q.pool.Close()
}

// LogQueue is a TaskQueue that only logs jobs. Used in tests and when no
// broker is configured.
type LogQueue struct {
	log zerolog.Logger
}

// NewLogQueue creates a LogQueue.
func NewLogQueue() *LogQueue {
	return &LogQueue{
		log: log.With().Str("component", "taskqueue").Logger(),
	}
}

// Enqueue logs the job and drops it.
func (q *LogQueue) Enqueue(kind string, payload interface{}) error {
	q.log.Info().Str("kind", kind).Interface("payload", payload).Msg("dropping job (no broker configured)")
	return nil
}
