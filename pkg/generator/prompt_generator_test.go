package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-adgen-kit/pkg/asset"
	"github.com/shouni/go-adgen-kit/pkg/domain"
	"github.com/shouni/go-adgen-kit/pkg/prompts"
)

const testFallback = "High-quality product ad photo."

// mockTextGenerator は受け取ったリクエストを記録し、固定の応答かエラーを返すのだ。
type mockTextGenerator struct {
	response string
	err      error
	requests []string
	refSeen  int
}

func (m *mockTextGenerator) GenerateContent(_ context.Context, request string, refs []asset.ReferenceImage) (string, error) {
	m.requests = append(m.requests, request)
	m.refSeen = len(refs)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func newTestBuilder(t *testing.T) *prompts.AdPromptBuilder {
	t.Helper()
	builder, err := prompts.NewAdPromptBuilder(domain.Brief{
		Campaign:       "Test Campaign",
		FilePrefix:     "test_ad",
		BriefText:      "Product: test sneaker",
		Requirements:   []string{"Show the product."},
		FallbackPrompt: testFallback,
	})
	if err != nil {
		t.Fatalf("ビルダーの初期化に失敗したのだ: %v", err)
	}
	return builder
}

func TestPromptGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("成功時はモデルの応答をそのまま返すのだ", func(t *testing.T) {
		textGen := &mockTextGenerator{response: "a cinematic sneaker shot"}
		pg := NewPromptGenerator(textGen, newTestBuilder(t), nil, testFallback)

		result := pg.Generate(ctx, 1)

		if result.Status != StatusOK {
			t.Errorf("ステータスが違うのだ: %v", result.Status)
		}
		if result.Text != "a cinematic sneaker shot" {
			t.Errorf("プロンプトが違うのだ: %q", result.Text)
		}
		if len(textGen.requests) != 1 || !strings.Contains(textGen.requests[0], "ad image #1") {
			t.Errorf("リクエストが組み立てられていないのだ: %+v", textGen.requests)
		}
	})

	t.Run("モデル失敗時はフォールバックに切り替えて続行できるのだ", func(t *testing.T) {
		textGen := &mockTextGenerator{err: errors.New("quota exceeded")}
		pg := NewPromptGenerator(textGen, newTestBuilder(t), nil, testFallback)

		result := pg.Generate(ctx, 2)

		if result.Status != StatusFallback {
			t.Errorf("ステータスが違うのだ: %v", result.Status)
		}
		if result.Text != testFallback {
			t.Errorf("フォールバックと一字一句一致すべきなのだ: %q", result.Text)
		}
	})

	t.Run("参照画像はモデルへそのまま渡るのだ", func(t *testing.T) {
		refs := []asset.ReferenceImage{
			{Path: "a.png", MIMEType: "image/png", Data: []byte{1}},
			{Path: "b.png", MIMEType: "image/png", Data: []byte{2}},
		}
		textGen := &mockTextGenerator{response: "styled shot"}
		pg := NewPromptGenerator(textGen, newTestBuilder(t), refs, testFallback)

		pg.Generate(ctx, 3)

		if textGen.refSeen != 2 {
			t.Errorf("参照画像の枚数が違うのだ: %d", textGen.refSeen)
		}
		if !strings.Contains(textGen.requests[0], prompts.StyleGuidance) {
			t.Error("スタイル指示ブロックが含まれていないのだ")
		}
	})
}
