package tools

import (
	"context"
	"time"

	"github.com/petasbytes/sous-chef/memory"
)

// Env is what a tool handler may touch: the active user's record, the model
// (through Generate) and the calendar output directory.
type Env interface {
	UserID() string
	Record() *memory.Record
	// Persist writes the record back with read-merge-write.
	Persist(ctx context.Context) error
	// Generate sends prompt to the model in the current conversation and
	// returns the classified reply.
	Generate(ctx context.Context, prompt string) Result
	CalendarDir() string
	Now() time.Time
}
