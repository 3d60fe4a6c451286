package generator

import (
	"bytes"
	"context"
	"image"
	"io"
	"log/slog"

	_ "image/png"

	"github.com/shouni/go-adgen-kit/pkg/asset"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
)

// AdAspectRatio は広告画像のアスペクト比です。正方形1枚のみを要求します。
const AdAspectRatio = "1:1"

// PanelImageModel は画像生成モデルとの通信の契約です。
// gemini-image-kit の ImageGenerator がこれを満たします。
type PanelImageModel interface {
	GenerateMangaPanel(ctx context.Context, req imagedom.ImageGenerationRequest) (*imagedom.ImageResponse, error)
}

// OutputWriter はデータを外部ストレージに保存するためのインターフェースです。
// remoteio.OutputWriter がこれを満たします。
type OutputWriter interface {
	Write(ctx context.Context, path string, data io.Reader, contentType string) error
}

// AdImageGenerator は最終プロンプトから広告画像を1枚生成して保存するサービスです。
// 同じ出力ディレクトリと番号の組み合わせでは前回の画像を上書きします。
type AdImageGenerator struct {
	model     PanelImageModel
	writer    OutputWriter
	outputDir string
	prefix    string
}

// NewAdImageGenerator は AdImageGenerator の新しいインスタンスを生成して返すのだ。
func NewAdImageGenerator(model PanelImageModel, writer OutputWriter, outputDir, prefix string) *AdImageGenerator {
	return &AdImageGenerator{
		model:     model,
		writer:    writer,
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// Generate はプロンプトを画像モデルへ送り、得られた画像を保存して結果を返すのだ。
// ここでの失敗はすべて局所回復可能として扱い、キャンペーン全体を止めることはない。
func (ag *AdImageGenerator) Generate(ctx context.Context, prompt string, imageNumber int) ImageResult {
	logger := slog.With("image_number", imageNumber)

	resp, err := ag.model.GenerateMangaPanel(ctx, imagedom.ImageGenerationRequest{
		Prompt:      prompt,
		AspectRatio: AdAspectRatio,
	})
	if err != nil {
		logger.Warn("画像生成の呼び出しに失敗したのだ", "error", err)
		return ImageResult{Status: StatusFailed}
	}
	if resp == nil || len(resp.Data) == 0 {
		logger.Warn("画像モデルが空の結果を返したのだ")
		return ImageResult{Status: StatusFailed}
	}

	// 保存前にラスター画像としてデコードできることを確認する
	if _, _, err := image.DecodeConfig(bytes.NewReader(resp.Data)); err != nil {
		logger.Warn("返却データを画像としてデコードできなかったのだ", "error", err)
		return ImageResult{Status: StatusFailed}
	}

	path, err := asset.ResolveImagePath(ag.outputDir, ag.prefix, imageNumber)
	if err != nil {
		logger.Warn("保存先パスの解決に失敗したのだ", "error", err)
		return ImageResult{Status: StatusFailed}
	}

	mimeType := resp.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}
	if err := ag.writer.Write(ctx, path, bytes.NewReader(resp.Data), mimeType); err != nil {
		logger.Warn("画像の保存に失敗したのだ", "path", path, "error", err)
		return ImageResult{Status: StatusFailed}
	}

	logger.Info("広告画像を保存したのだ", "path", path)
	return ImageResult{Path: path, Status: StatusOK}
}
