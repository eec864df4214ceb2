package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewArtifactRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// EnsureIndexes creates the run lookup index. It is safe to call on every
// start.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	const op = "repository.artifact.EnsureIndexes"

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "run_id", Value: 1}, {Key: "fetched_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) Save(ctx context.Context, a model.Artifact) error {
	const op = "repository.artifact.Save"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(a)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ByRun returns the artifacts of one run in fetch order.
func (r *repository) ByRun(ctx context.Context, runID uuid.UUID) ([]model.Artifact, error) {
	const op = "repository.artifact.ByRun"

	cur, err := r.coll.Find(ctx,
		bson.M{"run_id": runID.String()},
		options.Find().SetSort(bson.D{{Key: "fetched_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "close artifact cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]model.Artifact, 0)
	for cur.Next(ctx) {
		var ent ArtifactEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}
