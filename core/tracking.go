package core

import (
	"context"

	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/schema"
)

// recordRunScore persists one run score when tracking is active. Storage
// failures degrade to warnings; the evaluation itself must not depend on the
// result store being healthy.
func recordRunScore(ctx context.Context, resultStore contract.ResultStore, score schema.RunScore) {
	if resultStore == nil {
		return
	}
	evaluationID, ok := evaluationIDFrom(ctx)
	if !ok {
		return
	}
	if err := resultStore.RecordRunScore(evaluationID, score); err != nil {
		contract.LogWarn("Failed to record run score", err)
	}
}
