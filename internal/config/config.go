// Package config はアプリケーションの環境変数とCLIオプションを扱うのだ。
package config

import (
	"strconv"
	"time"

	"github.com/shouni/go-utils/envutil"

	"github.com/shouni/go-adgen-kit/pkg/workflow"
)

// デフォルト値の定義なのだ
const (
	DefaultHTTPTimeout = 30 * time.Second
	DefaultBriefFile   = "examples/brief.json" // クリエイティブブリーフのJSONパス
	DefaultRefImage1   = "beach_mock.png"
	DefaultRefImage2   = "bench_mock.png"
)

// LoadConfig は環境変数から設定を読み込み、ワークフロー設定を返すのだ！
// USE_GEMINI_FLASH が設定されている場合はテキストモデルを flash 系に切り替える。
func LoadConfig() workflow.Config {
	cfg := workflow.NewConfig(envutil.GetEnv("GEMINI_API_KEY", ""))

	if envutil.GetEnv("USE_GEMINI_FLASH", "") != "" {
		cfg.TextModel = workflow.FlashTextModel
	}
	cfg.TextModel = envutil.GetEnv("GEMINI_MODEL", cfg.TextModel)
	cfg.ImageModel = envutil.GetEnv("IMAGE_GEMINI_MODEL", cfg.ImageModel)
	cfg.ImageCount = envInt("NUM_AD_IMAGES", cfg.ImageCount)
	cfg.ReferencePaths = []string{
		envutil.GetEnv("REF_IMAGE_1", DefaultRefImage1),
		envutil.GetEnv("REF_IMAGE_2", DefaultRefImage2),
	}

	return cfg
}

// envInt は整数の環境変数を読み、未設定または不正な値の場合はデフォルトを返します。
func envInt(key string, def int) int {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 入力関連
	BriefFile string   // --brief
	RefImages []string // --ref-image

	// 出力関連
	OutputDir string // --output-dir

	// AI挙動設定
	TextModel   string        // --model
	ImageModel  string        // --image-model
	ImageCount  int           // --count
	HTTPTimeout time.Duration // --http-timeout
	NoStyle     bool          // --no-style

	// 実行制御
	MaxConsecutiveFailures int // --max-failures
}
