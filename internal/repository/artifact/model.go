package repository

import "time"

type ArtifactEntity struct {
	ID          string    `bson:"_id"`
	RunID       string    `bson:"run_id"`
	Flow        string    `bson:"flow"`
	Kind        string    `bson:"kind"`
	Key         string    `bson:"key,omitempty"`
	ContentType string    `bson:"content_type,omitempty"`
	Size        int       `bson:"size"`
	Body        []byte    `bson:"body"`
	FetchedAt   time.Time `bson:"fetched_at"`
}
