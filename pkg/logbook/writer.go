// Package logbook はキャンペーン実行の記録を永続化します。
package logbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-adgen-kit/pkg/asset"
	"github.com/shouni/go-adgen-kit/pkg/domain"
)

// OutputWriter はログを外部ストレージに保存するためのインターフェースです。
// remoteio.OutputWriter がこれを満たします。
type OutputWriter interface {
	Write(ctx context.Context, path string, data io.Reader, contentType string) error
}

// Writer はキャンペーンログを1つのインデント付きJSONドキュメントとして書き出します。
// 書き込みは実行の最後に一度だけ行われ、同名の既存ファイルは上書きされます。
type Writer struct {
	writer OutputWriter
}

// NewWriter は Writer の新しいインスタンスを返します。
func NewWriter(writer OutputWriter) *Writer {
	return &Writer{writer: writer}
}

// Write はログ全体を outputDir/generation_log.json へ書き出し、保存先のパスを返すのだ。
// アイテムの順序は蓄積されたとおりに保持される。ここでの失敗は実行全体の致命傷になる。
func (w *Writer) Write(ctx context.Context, outputDir string, log domain.CampaignLog) (string, error) {
	path, err := asset.ResolveOutputPath(outputDir, asset.DefaultLogFileName)
	if err != nil {
		return "", fmt.Errorf("ログの出力パス解決に失敗しました: %w", err)
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ログのJSON変換に失敗しました: %w", err)
	}

	if err := w.writer.Write(ctx, path, bytes.NewReader(data), "application/json; charset=utf-8"); err != nil {
		return "", fmt.Errorf("ログファイルの書き込みに失敗しました: %w", err)
	}

	slog.Info("生成ログを保存したのだ", "path", path, "total_images", log.TotalImages)
	return path, nil
}
