// Package runner はキャンペーン実行のオーケストレーションを担います。
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-adgen-kit/pkg/domain"
	"github.com/shouni/go-adgen-kit/pkg/generator"
)

// PromptGenerator は広告画像1枚分のプロンプトを生成するインターフェースです。
type PromptGenerator interface {
	Generate(ctx context.Context, imageNumber int) generator.PromptResult
}

// ImageGenerator はプロンプトから広告画像を生成して保存するインターフェースです。
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, imageNumber int) generator.ImageResult
}

// LogWriter はキャンペーンログを永続化するインターフェースです。
type LogWriter interface {
	Write(ctx context.Context, outputDir string, log domain.CampaignLog) (string, error)
}

// Pacer はAPI呼び出しの間隔を制御します。rate.Limiter がこれを満たします。
type Pacer interface {
	Wait(ctx context.Context) error
}

// ReportPublisher はレビュー用レポートを出力するインターフェースです。
type ReportPublisher interface {
	Publish(ctx context.Context, outputDir string, log domain.CampaignLog) (string, error)
}

// CampaignRunner は、プロンプト生成と画像生成を画像1枚単位で直列に進めるのだ。
// 個々の失敗はログに記録して次の画像へ進み、パイプライン全体は止めない。
type CampaignRunner struct {
	cfg       Config
	promptGen PromptGenerator
	imageGen  ImageGenerator
	logWriter LogWriter
	limiter   Pacer
	publisher ReportPublisher
	now       func() time.Time
}

// Config は CampaignRunner の実行パラメータです。
type Config struct {
	// Campaign はログに記録されるキャンペーン名です。
	Campaign string
	// OutputDir はログファイルの出力先ディレクトリです。
	OutputDir string
	// ImageCount は生成する画像の枚数です。
	ImageCount int
	// MaxConsecutiveFailures が正の値のとき、画像生成の連続失敗がこの回数に達すると
	// 実行を中断します。0 は無制限です。
	MaxConsecutiveFailures int
}

// NewCampaignRunner は、依存関係を注入して初期化します。
func NewCampaignRunner(
	cfg Config,
	promptGen PromptGenerator,
	imageGen ImageGenerator,
	logWriter LogWriter,
	limiter Pacer,
) *CampaignRunner {
	return &CampaignRunner{
		cfg:       cfg,
		promptGen: promptGen,
		imageGen:  imageGen,
		logWriter: logWriter,
		limiter:   limiter,
		now:       time.Now,
	}
}

// WithPublisher はレビュー用レポートの出力を有効にします。
func (r *CampaignRunner) WithPublisher(publisher ReportPublisher) *CampaignRunner {
	r.publisher = publisher
	return r
}

// Run は 1..ImageCount の各画像についてプロンプト生成→画像生成を実行し、
// 最後にログを一度だけ書き出します。ログの書き込み失敗のみが致命的です。
func (r *CampaignRunner) Run(ctx context.Context) ([]domain.CampaignItem, error) {
	slog.Info("キャンペーン生成を開始するのだ",
		"campaign", r.cfg.Campaign,
		"image_count", r.cfg.ImageCount,
	)

	items := make([]domain.CampaignItem, 0, r.cfg.ImageCount)
	consecutiveFailures := 0

	for i := 1; i <= r.cfg.ImageCount; i++ {
		// レートリミッターで呼び出し間隔を空ける（初回は待たない）
		if err := r.limiter.Wait(ctx); err != nil {
			return items, fmt.Errorf("レート制御の待機が中断されました: %w", err)
		}

		item, ok := r.generateOne(ctx, i)
		items = append(items, item)

		if ok {
			consecutiveFailures = 0
			continue
		}
		consecutiveFailures++
		if r.cfg.MaxConsecutiveFailures > 0 && consecutiveFailures >= r.cfg.MaxConsecutiveFailures {
			slog.Error("連続失敗が上限に達したため中断します",
				"consecutive_failures", consecutiveFailures,
			)
			break
		}
	}

	log := domain.NewCampaignLog(r.cfg.Campaign, items, r.now())
	if _, err := r.logWriter.Write(ctx, r.cfg.OutputDir, log); err != nil {
		return items, err
	}

	// レポートは補助的な成果物。失敗してもJSONログが正本として残っているため続行する
	if r.publisher != nil {
		if _, err := r.publisher.Publish(ctx, r.cfg.OutputDir, log); err != nil {
			slog.Warn("レポートの出力に失敗しました", "error", err)
		}
	}

	slog.Info("キャンペーン生成が完了しました", "total_images", len(items))
	return items, nil
}

// generateOne は1枚分のプロンプト生成と画像生成を行い、ログ用アイテムと
// 画像生成が成功したかどうかを返します。
func (r *CampaignRunner) generateOne(ctx context.Context, imageNumber int) (domain.CampaignItem, bool) {
	promptResult := r.promptGen.Generate(ctx, imageNumber)
	if promptResult.Status == generator.StatusFallback {
		slog.Warn("フォールバックプロンプトで続行します", "image_number", imageNumber)
	}

	item := domain.CampaignItem{
		ImageNumber: imageNumber,
		Prompt:      promptResult.Text,
		GeneratedAt: r.now().Format(domain.TimeLayout),
	}

	imageResult := r.imageGen.Generate(ctx, promptResult.Text, imageNumber)
	if imageResult.Status != generator.StatusOK {
		// 失敗した画像は image_path を null のままログに残す
		slog.Warn("画像生成に失敗したため次の画像へ進みます", "image_number", imageNumber)
		return item, false
	}

	path := imageResult.Path
	item.ImagePath = &path
	return item, true
}
