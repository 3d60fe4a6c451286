package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/spf13/cobra"

	"github.com/shouni/go-adgen-kit/examples"
	"github.com/shouni/go-adgen-kit/internal/config"
	"github.com/shouni/go-adgen-kit/pkg/domain"
	"github.com/shouni/go-adgen-kit/pkg/parser"
	"github.com/shouni/go-adgen-kit/pkg/workflow"
)

// appDeps は各コマンドで共有するストレージとHTTPクライアントの束なのだ。
type appDeps struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	writer     remoteio.OutputWriter
}

// setupStorage は、HTTPクライアントとGCS/ローカル対応の入出力を初期化するのだ。
func setupStorage(ctx context.Context) (*appDeps, error) {
	httpClient := httpkit.New(opts.HTTPTimeout)

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("GCSクライアントファクトリの初期化に失敗したのだ: %w", err)
	}
	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	return &appDeps{
		httpClient: httpClient,
		reader:     reader,
		writer:     writer,
	}, nil
}

// loadBrief はクリエイティブブリーフを読み込むのだ。JSONとMarkdownの両形式に対応し、
// デフォルトパスのファイルが存在しない場合は組み込みのサンプルブリーフに縮退する。
func loadBrief(ctx context.Context, cmd *cobra.Command, reader parser.InputReader) (domain.Brief, error) {
	brief, err := parser.NewBriefParser(reader).ParseFromPath(ctx, opts.BriefFile)
	if err != nil {
		if cmd.Flags().Changed("brief") {
			return domain.Brief{}, fmt.Errorf("ブリーフの読み込みに失敗したのだ: %w", err)
		}
		slog.Warn("ブリーフファイルが見つからないため組み込みのサンプルを使うのだ",
			"path", opts.BriefFile)
		return domain.ParseBrief(examples.BriefJSON)
	}
	return brief, nil
}

// resolveConfig は、環境変数ベースの設定に CLI フラグの値を上書き反映するのだ。
func resolveConfig() workflow.Config {
	cfg := config.LoadConfig()

	if opts.TextModel != "" {
		cfg.TextModel = opts.TextModel
	}
	if opts.ImageModel != "" {
		cfg.ImageModel = opts.ImageModel
	}
	if opts.ImageCount > 0 {
		cfg.ImageCount = opts.ImageCount
	}
	if len(opts.RefImages) > 0 {
		cfg.ReferencePaths = opts.RefImages
	}
	if opts.NoStyle {
		cfg.ReferencePaths = nil
	}
	cfg.OutputDir = opts.OutputDir
	cfg.MaxConsecutiveFailures = opts.MaxConsecutiveFailures

	return cfg
}

// buildManager は、未初期化の依存を組み立てて Manager を生成するのだ。
func buildManager(ctx context.Context, deps *appDeps, cfg workflow.Config, brief domain.Brief) (*workflow.Manager, error) {
	return workflow.New(ctx, workflow.ManagerArgs{
		Config:     cfg,
		Brief:      brief,
		HTTPClient: deps.httpClient,
		Reader:     deps.reader,
		Writer:     deps.writer,
	})
}
