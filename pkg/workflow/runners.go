package workflow

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"

	"github.com/shouni/go-adgen-kit/pkg/generator"
	"github.com/shouni/go-adgen-kit/pkg/logbook"
	"github.com/shouni/go-adgen-kit/pkg/publisher"
	"github.com/shouni/go-adgen-kit/pkg/runner"
)

const (
	defaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = 15 * time.Minute
	defaultTTL             = 5 * time.Minute
	defaultRateBurst       = 1
)

// BuildCampaignRunner は、キャンペーン全体（プロンプト生成→画像生成→ログ保存）を
// 担当する Runner を作成するのだ。
func (m *Manager) BuildCampaignRunner() (*runner.CampaignRunner, error) {
	imageModel, err := m.initializeImageModel()
	if err != nil {
		return nil, err
	}

	adImageGen := generator.NewAdImageGenerator(imageModel, m.writer, m.cfg.OutputDir, m.brief.FilePrefix)
	promptGen := generator.NewPromptGenerator(m.textGen, m.builder, m.refs, m.brief.FallbackPrompt)
	logWriter := logbook.NewWriter(m.writer)

	runnerCfg := runner.Config{
		Campaign:               m.brief.Campaign,
		OutputDir:              m.cfg.OutputDir,
		ImageCount:             m.cfg.ImageCount,
		MaxConsecutiveFailures: m.cfg.MaxConsecutiveFailures,
	}

	campaignRunner := runner.NewCampaignRunner(
		runnerCfg,
		promptGen,
		adImageGen,
		logWriter,
		rate.NewLimiter(rate.Every(m.cfg.RateInterval), defaultRateBurst),
	)

	return campaignRunner.WithPublisher(publisher.NewCampaignPublisher(m.writer)), nil
}

// BuildPromptRunner は、画像生成を行わずプロンプトだけを生成する Runner を作成します。
func (m *Manager) BuildPromptRunner() (*runner.PromptRunner, error) {
	promptGen := generator.NewPromptGenerator(m.textGen, m.builder, m.refs, m.brief.FallbackPrompt)
	return runner.NewPromptRunner(
		promptGen,
		rate.NewLimiter(rate.Every(m.cfg.RateInterval), defaultRateBurst),
		m.cfg.ImageCount,
	), nil
}

// BuildDescribeRunner は、参照画像の説明を生成する Runner を作成します。
func (m *Manager) BuildDescribeRunner() (*runner.DescribeRunner, error) {
	request, err := m.builder.BuildDescribeRequest()
	if err != nil {
		return nil, fmt.Errorf("説明リクエストの構築に失敗しました: %w", err)
	}
	return runner.NewDescribeRunner(m.textGen, request), nil
}

// initializeImageModel は、画像キャッシュを含む画像生成エンジンを初期化します。
func (m *Manager) initializeImageModel() (imagekit.ImageGenerator, error) {
	imgCache := cache.New(defaultCacheExpiration, cacheCleanupInterval)
	core, err := imagekit.NewGeminiImageCore(
		m.aiClient,
		m.reader,
		m.httpClient,
		imgCache,
		defaultTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("画像生成エンジンの初期化に失敗しました: %w", err)
	}

	return imagekit.NewGeminiGenerator(m.cfg.ImageModel, core)
}
