package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// campaignCmd は、広告キャンペーンの一括生成（プロンプト→画像→ログ）を実行するのだ。
var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "ブリーフから広告画像キャンペーンを一括生成するのだ。",
	Long: `クリエイティブブリーフを解析し、画像ごとのプロンプト生成と広告画像の生成を直列に実行するのだ。
出力はPNG画像ファイル群と、全プロンプトを記録したJSONログになるのだよ。`,
	Example: "  ap-adgen-go campaign -b examples/brief.json -n 3 -o output/campaign",
	RunE:    campaignCommand,
}

// campaignCommand は、campaign サブコマンドの実行ロジック本体なのだ。
func campaignCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deps, err := setupStorage(ctx)
	if err != nil {
		return err
	}
	brief, err := loadBrief(ctx, cmd, deps.reader)
	if err != nil {
		return err
	}
	cfg := resolveConfig()

	slog.Info("キャンペーン生成パイプラインを起動するのだ！",
		"campaign", brief.Campaign,
		"text_model", cfg.TextModel,
		"image_model", cfg.ImageModel,
		"image_count", cfg.ImageCount,
		"output_dir", cfg.OutputDir)

	manager, err := buildManager(ctx, deps, cfg, brief)
	if err != nil {
		return err
	}

	campaignRunner, err := manager.BuildCampaignRunner()
	if err != nil {
		return fmt.Errorf("CampaignRunnerの構築に失敗したのだ: %w", err)
	}

	items, err := campaignRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("キャンペーン実行中にエラーが発生したのだ: %w", err)
	}

	succeeded := 0
	for _, item := range items {
		if item.ImagePath != nil {
			succeeded++
		}
	}
	slog.Info("すべての生成工程が完了したのだ！",
		"total", len(items),
		"succeeded", succeeded)
	return nil
}
