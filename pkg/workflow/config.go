package workflow

import (
	"time"
)

// デフォルト値の定義なのだ
const (
	DefaultTextModel    = "gemini-2.5-pro"
	FlashTextModel      = "gemini-2.5-flash"
	DefaultImageModel   = "gemini-3-pro-image-preview"
	DefaultImageCount   = 3
	DefaultRateInterval = 3 * time.Second
	DefaultOutputDir    = "output/campaign"
)

// Config は Go AdGen Kit の各 Runner を動作させるための基本設定なのだ。
type Config struct {
	// --- AI Model Settings ---
	GeminiAPIKey string
	TextModel    string
	ImageModel   string

	// --- Generation Settings ---
	ImageCount     int
	ReferencePaths []string
	RateInterval   time.Duration
	// MaxConsecutiveFailures が正の値のとき、画像生成の連続失敗でキャンペーンを打ち切ります。
	MaxConsecutiveFailures int

	// --- Storage & Output Settings ---
	OutputDir string

	// --- Timeout & Retries ---
	RequestTimeout time.Duration
}

// NewConfig はデフォルト値で初期化された Config を作成し、必要最小限の値をセットして返すのだ。
func NewConfig(apiKey string) Config {
	cfg := DefaultConfig()
	cfg.GeminiAPIKey = apiKey
	return cfg
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数なのだ。
func DefaultConfig() Config {
	return Config{
		TextModel:      DefaultTextModel,
		ImageModel:     DefaultImageModel,
		ImageCount:     DefaultImageCount,
		RateInterval:   DefaultRateInterval,
		OutputDir:      DefaultOutputDir,
		RequestTimeout: 5 * time.Minute,
	}
}
