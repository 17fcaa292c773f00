package analysis

import "context"

// ObjectGateway port (interface for content-addressed object retrieval).
// Implementations return an error on any retrieval failure; the caller decides
// how to degrade.
type ObjectGateway interface {
	Fetch(ctx context.Context, objectID string) ([]byte, error)
}

// MetadataProbe port (interface for structural blob inspection). Probe never
// fails: unparsable blobs yield a zero ObjectMetadata.
type MetadataProbe interface {
	Probe(blob []byte) ObjectMetadata
}

// VerdictCache port (optional, caller-supplied). A nil cache means every
// request computes fresh.
type VerdictCache interface {
	Get(ctx context.Context, objectID string) (*Verdict, bool)
	Set(ctx context.Context, objectID string, v Verdict)
}
