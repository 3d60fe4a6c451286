package runner

import (
	"context"
	"fmt"
	"log/slog"
)

// PromptRunner は画像生成を行わず、各画像のプロンプトだけを生成します。
// ブリーフやテンプレートの調整時に、画像APIのコストをかけずに確認する用途です。
type PromptRunner struct {
	promptGen PromptGenerator
	limiter   Pacer
	count     int
}

// NewPromptRunner は、依存関係を注入して初期化します。
func NewPromptRunner(promptGen PromptGenerator, limiter Pacer, count int) *PromptRunner {
	return &PromptRunner{
		promptGen: promptGen,
		limiter:   limiter,
		count:     count,
	}
}

// Run は 1..count のプロンプトを順番に生成して返すのだ。
func (r *PromptRunner) Run(ctx context.Context) ([]string, error) {
	slog.Info("プロンプトのみの生成を開始します", "count", r.count)

	prompts := make([]string, 0, r.count)
	for i := 1; i <= r.count; i++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return prompts, fmt.Errorf("レート制御の待機が中断されました: %w", err)
		}
		result := r.promptGen.Generate(ctx, i)
		prompts = append(prompts, result.Text)
	}
	return prompts, nil
}
