// Package queue carries thumbnail jobs between the upload path and the
// worker over the message broker.  The two sides share nothing but the
// queue name and the job payload defined here.
package queue

// QueueName is the durable queue the jobs travel through.
const QueueName = "image-thumbnailer"

// ThumbnailJob asks the worker to derive resized variants of one
// uploaded image.  UserID repeats the owner so the worker can refuse a
// job that names somebody else's file.  Delivery is at-least-once;
// processing is idempotent because thumbnails are plain overwrites.
type ThumbnailJob struct {
	FileID uint64 `json:"fileId"`
	UserID uint64 `json:"userId"`
}
