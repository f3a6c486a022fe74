package datasheet

import (
	"time"

	"github.com/google/uuid"
)

// FeatureSet is the feature/advantage split extracted from a datasheet's
// bullet regions, for callers that want the lists without the full record.
type FeatureSet struct {
	ID         uuid.UUID  `json:"id"`
	Features   []string   `json:"features"`
	Advantages []string   `json:"advantages"`
	SourceFile string     `json:"source_file"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// NewFeatureSet builds a FeatureSet with a fresh identifier.
func NewFeatureSet(features, advantages []string, sourceFile string) *FeatureSet {
	return &FeatureSet{
		ID:         uuid.New(),
		Features:   features,
		Advantages: advantages,
		SourceFile: sourceFile,
	}
}
