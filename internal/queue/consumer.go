package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/files-manager/internal/model"
	"github.com/iliyamo/files-manager/internal/repository"
	"github.com/iliyamo/files-manager/internal/thumbnail"
)

// Widths are the thumbnail target widths, processed in this order.  A
// failure partway leaves the variants already written on disk; the job
// is reported failed and nothing is cleaned up.
var Widths = [3]int{500, 250, 100}

// FileLookup is the slice of the file store the worker needs: a lookup
// scoped to both file and owner, so a forged job cannot reach another
// user's blob.
type FileLookup interface {
	GetByIDAndUser(ctx context.Context, id, userID uint64) (model.File, error)
}

// BlobIO reads source blobs and writes the derived thumbnail keys.
type BlobIO interface {
	Get(ctx context.Context, key string) ([]byte, error)
	PutAt(ctx context.Context, key string, p []byte) error
}

// Worker consumes thumbnail jobs.  A job failure is terminal for that
// job only; the consumer loop keeps running and redelivery policy is
// left to the broker.
type Worker struct {
	URL   string
	Files FileLookup
	Blobs BlobIO
}

func NewWorker(url string, files FileLookup, blobs BlobIO) *Worker {
	return &Worker{URL: url, Files: files, Blobs: blobs}
}

// Run connects to RabbitMQ, declares the durable thumbnail queue, and
// consumes jobs until ctx is cancelled.  It runs a reconnect loop with
// exponential backoff and never returns on processing errors; failed
// jobs are rejected without requeue so a poison message cannot wedge
// the worker.
func (w *Worker) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(w.URL)
		if err != nil {
			log.Printf("thumbnail-worker: failed to dial broker: %v; retrying in %s", err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := w.consumeLoop(ctx, conn); err != nil {
			log.Printf("thumbnail-worker: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(2 * time.Second):
			}
			continue
		}
	}
}

func (w *Worker) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// One unacked job at a time: resizing is CPU-bound, prefetch buys nothing.
	if err := ch.Qos(1, 0, false); err != nil {
		log.Printf("thumbnail-worker: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := w.handleMessage(ctx, d.Body); err != nil {
				log.Printf("thumbnail-worker: job failed: %v", err)
				_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, body []byte) error {
	var job ThumbnailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return w.Process(ctx, job)
}

// Process runs one job to completion: validate, load the owner-scoped
// file record, read the source blob and write every width variant.
// Re-processing the same job overwrites the same derived keys, so
// at-least-once delivery is safe.
func (w *Worker) Process(ctx context.Context, job ThumbnailJob) error {
	if job.FileID == 0 {
		return errors.New("missing fileId")
	}
	if job.UserID == 0 {
		return errors.New("missing userId")
	}

	f, err := w.Files.GetByIDAndUser(ctx, job.FileID, job.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("file %d for user %d not found", job.FileID, job.UserID)
	}
	if err != nil {
		return fmt.Errorf("load file %d: %w", job.FileID, err)
	}

	src, err := w.Blobs.Get(ctx, f.LocalPath)
	if err != nil {
		return fmt.Errorf("read source blob: %w", err)
	}

	for _, width := range Widths {
		out, err := thumbnail.Resize(src, width)
		if err != nil {
			return fmt.Errorf("resize to %d: %w", width, err)
		}
		key := fmt.Sprintf("%s_%d", f.LocalPath, width)
		if err := w.Blobs.PutAt(ctx, key, out); err != nil {
			return fmt.Errorf("write thumbnail %d: %w", width, err)
		}
	}
	return nil
}
