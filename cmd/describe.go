package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/go-adgen-kit/internal/config"
)

// describeCmd は、参照画像1枚をテキストモデルに説明させる診断用サブコマンドなのだ。
// スタイル参照がモデルにどう見えているかを確認するために使うのだ。
var describeCmd = &cobra.Command{
	Use:     "describe [image-path]",
	Short:   "参照画像をAIに説明させるのだ。",
	Example: "  ap-adgen-go describe beach_mock.png",
	Args:    cobra.MaximumNArgs(1),
	RunE:    describeCommand,
}

// describeCommand は、describe サブコマンドの実行ロジック本体なのだ。
func describeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 引数が無い場合は REF_IMAGE_1 相当のデフォルトを使うのだ
	imagePath := config.DefaultRefImage1
	if len(args) > 0 {
		imagePath = args[0]
	}

	deps, err := setupStorage(ctx)
	if err != nil {
		return err
	}
	brief, err := loadBrief(ctx, cmd, deps.reader)
	if err != nil {
		return err
	}
	cfg := resolveConfig()
	// 説明に使う画像は引数で決まるため、キャンペーン用の参照設定は使わない
	cfg.ReferencePaths = nil

	slog.Info("画像説明モードを起動するのだ！",
		"image", imagePath,
		"text_model", cfg.TextModel)

	manager, err := buildManager(ctx, deps, cfg, brief)
	if err != nil {
		return err
	}

	ref, err := manager.LoadReference(ctx, imagePath)
	if err != nil {
		return err
	}

	describeRunner, err := manager.BuildDescribeRunner()
	if err != nil {
		return fmt.Errorf("DescribeRunnerの構築に失敗したのだ: %w", err)
	}

	description, err := describeRunner.Run(ctx, ref)
	if err != nil {
		return fmt.Errorf("画像の説明生成に失敗したのだ: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), description)
	return nil
}
