package attlog

import (
	"context"
)

// Service ingests raw clock events from devices. Unknown employee codes are
// rejected at the door rather than stored as orphans.
type Service interface {
	Ingest(ctx context.Context, req CreateLogRequest) (LogResponse, error)
}
