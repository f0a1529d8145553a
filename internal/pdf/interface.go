package pdf

import (
	"context"
)

type DocumentRenderer interface {
	Render(ctx context.Context, doc Document, path string) (Result, error)
}
