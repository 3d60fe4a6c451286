package generator

import (
	"context"
	"log/slog"

	"github.com/shouni/go-adgen-kit/pkg/asset"
	"github.com/shouni/go-adgen-kit/pkg/prompts"
)

// PromptGenerator は1枚分の広告プロンプトを生成するサービスです。
// テキストモデルの失敗はここで吸収し、固定フォールバックに切り替えて必ず使えるプロンプトを返します。
// パイプラインの生存性をプロンプト品質より優先するトレードオフです。
type PromptGenerator struct {
	textGen  TextGenerator
	builder  *prompts.AdPromptBuilder
	refs     []asset.ReferenceImage
	fallback string
}

// NewPromptGenerator は PromptGenerator の新しいインスタンスを生成して返すのだ。
func NewPromptGenerator(
	textGen TextGenerator,
	builder *prompts.AdPromptBuilder,
	refs []asset.ReferenceImage,
	fallback string,
) *PromptGenerator {
	return &PromptGenerator{
		textGen:  textGen,
		builder:  builder,
		refs:     refs,
		fallback: fallback,
	}
}

// Generate は指定された画像番号向けのプロンプトを生成するのだ。
// エラーは返さない。どんな失敗でもフォールバックプロンプト入りの結果に変換される。
func (pg *PromptGenerator) Generate(ctx context.Context, imageNumber int) PromptResult {
	request, err := pg.builder.BuildCampaignRequest(imageNumber, len(pg.refs) > 0)
	if err != nil {
		slog.Warn("リクエストの組み立てに失敗したため、フォールバックプロンプトを使うのだ",
			"image_number", imageNumber, "error", err)
		return PromptResult{Text: pg.fallback, Status: StatusFallback}
	}

	text, err := pg.textGen.GenerateContent(ctx, request, pg.refs)
	if err != nil {
		slog.Warn("プロンプト生成に失敗したため、フォールバックプロンプトを使うのだ",
			"image_number", imageNumber, "error", err)
		return PromptResult{Text: pg.fallback, Status: StatusFallback}
	}

	return PromptResult{Text: text, Status: StatusOK}
}
