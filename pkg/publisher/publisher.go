// Package publisher は、生成結果を人間がレビューしやすい形式で出力する役割を担います。
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-adgen-kit/pkg/asset"
	"github.com/shouni/go-adgen-kit/pkg/domain"
)

// DefaultReportFileName はキャンペーンレポートのデフォルト Markdown ファイル名です。
const DefaultReportFileName = "campaign_report.md"

// CampaignPublisher は、キャンペーンログを Markdown レポートとして出力します。
// JSONログが機械向けの正本で、こちらはレビュー用のコンタクトシートという位置づけなのだ。
type CampaignPublisher struct {
	writer OutputWriter
}

// NewCampaignPublisher は CampaignPublisher を初期化します。
func NewCampaignPublisher(writer OutputWriter) *CampaignPublisher {
	return &CampaignPublisher{writer: writer}
}

// BuildReportMarkdown は、キャンペーン名・生成日時・画像ごとのプロンプトを統合して
// Markdown 文字列を生成します。
func (cp *CampaignPublisher) BuildReportMarkdown(log domain.CampaignLog) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", log.Campaign))
	sb.WriteString(fmt.Sprintf("- generated_at: %s\n", log.GeneratedAt))
	sb.WriteString(fmt.Sprintf("- total_images: %d\n\n", log.TotalImages))

	for _, item := range log.Images {
		sb.WriteString(fmt.Sprintf("## Image %02d\n\n", item.ImageNumber))

		if item.ImagePath != nil {
			sb.WriteString(fmt.Sprintf("![Image %02d](%s)\n\n", item.ImageNumber, *item.ImagePath))
		} else {
			sb.WriteString("*画像の生成に失敗したのだ*\n\n")
		}

		sb.WriteString("```\n")
		sb.WriteString(item.Prompt)
		sb.WriteString("\n```\n\n")
	}

	return sb.String()
}

// Publish はレポートを outputDir/campaign_report.md へ書き出し、保存先のパスを返します。
func (cp *CampaignPublisher) Publish(ctx context.Context, outputDir string, log domain.CampaignLog) (string, error) {
	path, err := asset.ResolveOutputPath(outputDir, DefaultReportFileName)
	if err != nil {
		return "", fmt.Errorf("レポートの出力パス解決に失敗しました: %w", err)
	}

	report := cp.BuildReportMarkdown(log)
	if err := cp.writer.Write(ctx, path, strings.NewReader(report), "text/markdown; charset=utf-8"); err != nil {
		return "", fmt.Errorf("レポートの書き込みに失敗しました: %w", err)
	}

	slog.Info("キャンペーンレポートを保存したのだ", "path", path)
	return path, nil
}
