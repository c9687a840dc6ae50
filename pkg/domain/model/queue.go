package model

// QueueReport summarizes one pass over the queue.
type QueueReport struct {
	Processed int
	Dropped   int
	Retained  int
}
