// Package workflow は、広告キャンペーン生成の各工程を担う Runner 群を組み立てます。
package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-adgen-kit/pkg/asset"
	"github.com/shouni/go-adgen-kit/pkg/domain"
	"github.com/shouni/go-adgen-kit/pkg/generator"
	"github.com/shouni/go-adgen-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

const defaultGeminiTemperature = float32(0.7)

// ManagerArgs は Manager の構築に必要な依存関係をまとめた引数です。
type ManagerArgs struct {
	Config     Config
	Brief      domain.Brief
	HTTPClient httpkit.ClientInterface
	Reader     remoteio.InputReader
	Writer     remoteio.OutputWriter
}

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg        Config
	brief      domain.Brief
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	writer     remoteio.OutputWriter
	aiClient   gemini.GenerativeModel
	textGen    generator.TextGenerator
	builder    *prompts.AdPromptBuilder
	refs       []asset.ReferenceImage
}

// New は、設定とクリエイティブブリーフを基に新しい Manager を初期化するのだ。
// 参照画像はここで一度だけ読み込まれ、以降のプロンプト生成で再利用される。
func New(ctx context.Context, args ManagerArgs) (*Manager, error) {
	if args.HTTPClient == nil {
		return nil, fmt.Errorf("httpClient は必須です")
	}
	if args.Reader == nil {
		return nil, fmt.Errorf("InputReader は必須です")
	}
	if args.Writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}
	if err := args.Brief.Validate(); err != nil {
		return nil, fmt.Errorf("ブリーフの検証に失敗しました: %w", err)
	}

	aiClient, err := initializeAIClient(ctx, args.Config.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	textGen, err := generator.NewGeminiTextGenerator(ctx, args.Config.GeminiAPIKey, args.Config.TextModel)
	if err != nil {
		return nil, fmt.Errorf("テキスト生成器の初期化に失敗しました: %w", err)
	}

	builder, err := prompts.NewAdPromptBuilder(args.Brief)
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	// 参照画像の読み込み失敗は致命傷ではなく、テキストのみモードへ縮退する
	refs := asset.NewReferenceLoader(args.Reader).Load(ctx, args.Config.ReferencePaths)

	return &Manager{
		cfg:        args.Config,
		brief:      args.Brief,
		httpClient: args.HTTPClient,
		reader:     args.Reader,
		writer:     args.Writer,
		aiClient:   aiClient,
		textGen:    textGen,
		builder:    builder,
		refs:       refs,
	}, nil
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// ReferenceImages は読み込み済みの参照画像を返します。
func (m *Manager) ReferenceImages() []asset.ReferenceImage {
	return m.refs
}

// LoadReference は指定パスの画像を1枚だけ読み込みます。describe 用です。
func (m *Manager) LoadReference(ctx context.Context, path string) (asset.ReferenceImage, error) {
	refs := asset.NewReferenceLoader(m.reader).Load(ctx, []string{path})
	if len(refs) == 0 {
		return asset.ReferenceImage{}, fmt.Errorf("参照画像を読み込めませんでした: %s", path)
	}
	return refs[0], nil
}
