package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-adgen-kit/pkg/domain"
)

// InputReader はブリーフの読み込み元を抽象化します。remoteio.InputReader がこれを満たします。
type InputReader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Parser はブリーフを解析するためのインターフェースを定義します。
type Parser interface {
	ParseFromPath(ctx context.Context, fullPath string) (domain.Brief, error)
}

// BriefParser は GCS URIやローカルファイルパスからブリーフを読み込む構造体です。
// 拡張子が .md のファイルは Markdown ブリーフとして、それ以外は JSON として解析します。
type BriefParser struct {
	reader InputReader
}

// NewBriefParser は新しい BriefParser インスタンスを生成します。
func NewBriefParser(r InputReader) *BriefParser {
	return &BriefParser{reader: r}
}

// ParseFromPath は指定されたパスからコンテンツを読み込み、解析して domain.Brief を返します。
func (p *BriefParser) ParseFromPath(ctx context.Context, briefFile string) (domain.Brief, error) {
	slog.InfoContext(ctx, "ブリーフファイルを読み込んでいます", "path", briefFile)
	rc, err := p.reader.Open(ctx, briefFile)
	if err != nil {
		return domain.Brief{}, fmt.Errorf("ブリーフファイルのオープンに失敗しました (%s): %w", briefFile, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.Brief{}, fmt.Errorf("ブリーフファイルの読み取りに失敗しました: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(briefFile), ".md") {
		return NewMarkdownBriefParser().Parse(string(data))
	}
	return domain.ParseBrief(data)
}
