// Package cmd は CLI のコマンド体系を定義するのだ。
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shouni/go-adgen-kit/internal/config"
	"github.com/shouni/go-adgen-kit/pkg/workflow"
)

var opts config.GenerateOptions

var rootCmd = &cobra.Command{
	Use:               "ap-adgen-go",
	Short:             "クリエイティブブリーフから広告画像キャンペーンを自動生成するのだ。",
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.BriefFile, "brief", "b", config.DefaultBriefFile, "クリエイティブブリーフのJSONパスなのだ。")
	rootCmd.PersistentFlags().StringArrayVar(&opts.RefImages, "ref-image", nil, "スタイル参照画像のパス（複数指定可、未指定なら REF_IMAGE_1/2）なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.NoStyle, "no-style", false, "参照画像を使わずテキストのみで生成するのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", workflow.DefaultOutputDir, "画像とログの保存先（ローカル or gs://...）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.TextModel, "model", "", "使用する Gemini テキストモデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", "", "使用する Gemini 画像モデル名なのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.ImageCount, "count", "n", 0, "生成する広告画像の枚数なのだ（未指定なら NUM_AD_IMAGES に従う）。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
	rootCmd.PersistentFlags().IntVar(&opts.MaxConsecutiveFailures, "max-failures", 0, "画像生成の連続失敗でキャンペーンを打ち切るしきい値（0で無制限）なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// .env があれば読み込む。無くてもエラーにはしないのだ
	_ = godotenv.Load()

	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}
	return nil
}

func init() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(campaignCmd, promptCmd, describeCmd)
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
