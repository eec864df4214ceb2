package repository

import (
	"github.com/google/uuid"

	"github.com/you-humble/ge-sync/internal/model"
)

func EntityFromModel(a model.Artifact) ArtifactEntity {
	return ArtifactEntity{
		ID:          uuid.NewString(),
		RunID:       a.RunID.String(),
		Flow:        string(a.Flow),
		Kind:        a.Kind,
		Key:         a.Key,
		ContentType: a.ContentType,
		Size:        len(a.Body),
		Body:        a.Body,
		FetchedAt:   a.FetchedAt.UTC(),
	}
}

func EntityToModel(e ArtifactEntity) model.Artifact {
	runID, _ := uuid.Parse(e.RunID)
	return model.Artifact{
		RunID:       runID,
		Flow:        model.SyncFlow(e.Flow),
		Kind:        e.Kind,
		Key:         e.Key,
		ContentType: e.ContentType,
		Body:        e.Body,
		FetchedAt:   e.FetchedAt,
	}
}
