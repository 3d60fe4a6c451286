package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// promptCmd は、画像生成をスキップしてプロンプトだけを生成するサブコマンドなのだ。
// 画像APIのコストを抑えつつ、ブリーフや参照画像の調整結果を確認したい場合に便利なのだ。
var promptCmd = &cobra.Command{
	Use:     "prompt",
	Short:   "画像を生成せずプロンプトだけを出力するのだ。",
	Example: "  ap-adgen-go prompt -b examples/brief.json -n 3",
	RunE:    promptCommand,
}

// promptCommand は、prompt サブコマンドの実行ロジック本体なのだ。
func promptCommand(cmd *cobra.Command, args []string) error {
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

	slog.Info("プロンプト生成モードを起動するのだ！",
		"campaign", brief.Campaign,
		"text_model", cfg.TextModel,
		"count", cfg.ImageCount)

	manager, err := buildManager(ctx, deps, cfg, brief)
	if err != nil {
		return err
	}

	promptRunner, err := manager.BuildPromptRunner()
	if err != nil {
		return fmt.Errorf("PromptRunnerの構築に失敗したのだ: %w", err)
	}

	prompts, err := promptRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("プロンプト生成中にエラーが発生したのだ: %w", err)
	}

	for i, p := range prompts {
		fmt.Fprintf(cmd.OutOrStdout(), "--- Image %d ---\n%s\n\n", i+1, p)
	}
	return nil
}
