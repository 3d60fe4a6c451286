package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-adgen-kit/pkg/asset"
	"github.com/shouni/go-adgen-kit/pkg/generator"
)

// DescribeRunner は参照画像1枚をテキストモデルに説明させます。
// 参照画像がモデルにどう見えているかを確認するための診断ユーティリティです。
type DescribeRunner struct {
	textGen generator.TextGenerator
	request string
}

// NewDescribeRunner は、依存関係を注入して初期化します。
func NewDescribeRunner(textGen generator.TextGenerator, request string) *DescribeRunner {
	return &DescribeRunner{
		textGen: textGen,
		request: request,
	}
}

// Run は画像の説明文を生成して返します。キャンペーン実行と違い、
// ここでの失敗はフォールバックせずそのままエラーとして返すのだ。
func (r *DescribeRunner) Run(ctx context.Context, ref asset.ReferenceImage) (string, error) {
	slog.Info("参照画像の説明を生成します", "path", ref.Path)

	text, err := r.textGen.GenerateContent(ctx, r.request, []asset.ReferenceImage{ref})
	if err != nil {
		return "", fmt.Errorf("画像の説明生成に失敗しました: %w", err)
	}
	return text, nil
}
