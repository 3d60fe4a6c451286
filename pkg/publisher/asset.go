package publisher

import (
	"context"
	"io"
)

// OutputWriter はレポートの保存先を抽象化します。remoteio.OutputWriter がこれを満たします。
type OutputWriter interface {
	Write(ctx context.Context, path string, data io.Reader, contentType string) error
}
