package launcher

import (
	"context"
)

// Disabled stands in when no player process should be spawned
type Disabled struct{}

// Launch is a no-op
func (Disabled) Launch(ctx context.Context, source string) error { return nil }

// Close is a no-op
func (Disabled) Close() error { return nil }
