package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-adgen-kit/pkg/asset"
	"google.golang.org/genai"
)

const defaultTextTemperature = float32(0.7)

// TextGenerator はテキストモデルとの通信の契約です。
// 参照画像はリクエスト本文の前に添付され、スタイルの手本としてモデルに渡されます。
type TextGenerator interface {
	GenerateContent(ctx context.Context, request string, refs []asset.ReferenceImage) (string, error)
}

// GeminiTextGenerator は google.golang.org/genai を使った TextGenerator の実装です。
// go-gemini-client の GenerateContent はテキスト専用のため、
// 参照画像を添えるマルチモーダル呼び出しはこちらで直接 SDK を叩きます。
type GeminiTextGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiTextGenerator は Gemini API クライアントを初期化します。
func NewGeminiTextGenerator(ctx context.Context, apiKey, model string) (*GeminiTextGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("テキスト生成クライアントの初期化に失敗しました: %w", err)
	}

	return &GeminiTextGenerator{
		client: client,
		model:  model,
	}, nil
}

// GenerateContent はリクエスト本文（と参照画像）をモデルへ送り、整形済みの応答テキストを返します。
func (g *GeminiTextGenerator) GenerateContent(ctx context.Context, request string, refs []asset.ReferenceImage) (string, error) {
	var parts []*genai.Part
	for _, ref := range refs {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: ref.MIMEType, Data: ref.Data},
		})
	}
	parts = append(parts, genai.NewPartFromText(request))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(defaultTextTemperature),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("テキスト生成の呼び出しに失敗しました: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("モデルが空の応答を返しました")
	}
	return text, nil
}
