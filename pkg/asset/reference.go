package asset

import (
	"bytes"
	"context"
	"image"
	"io"
	"log/slog"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/sync/errgroup"
)

// InputReader はローカルや GCS のファイルを開くためのインターフェースです。
// remoteio.InputReader がこれを満たします。
type InputReader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// ReferenceImage は読み込み・検証済みの参照画像です。構築後は読み取り専用で扱います。
type ReferenceImage struct {
	Path     string // 読み込み元のパス（ローカル or gs://...）
	MIMEType string // デコード結果から判定した MIME タイプ
	Data     []byte
	Width    int
	Height   int
}

// ReferenceLoader は参照画像群をまとめて読み込みます。
// 個々のパスの失敗は警告ログを出して除外するだけで、呼び出し元には伝播しません。
type ReferenceLoader struct {
	reader InputReader
}

// NewReferenceLoader は ReferenceLoader の新しいインスタンスを返します。
func NewReferenceLoader(reader InputReader) *ReferenceLoader {
	return &ReferenceLoader{reader: reader}
}

// Load は与えられたパス群をラスター画像としてデコードし、成功したものだけを元の順序で返すのだ。
// 1枚も読めなかった場合は空スライスを返し、テキストのみモードになることを明示的にログへ残す。
func (rl *ReferenceLoader) Load(ctx context.Context, paths []string) []ReferenceImage {
	loaded := make([]*ReferenceImage, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, path := range paths {
		eg.Go(func() error {
			ref, err := rl.loadOne(egCtx, path)
			if err != nil {
				// 参照画像はスタイルの手本にすぎないため、読めない分は黙って除外する
				slog.Warn("参照画像を読み込めなかったため除外するのだ", "path", path, "error", err)
				return nil
			}
			loaded[i] = ref
			return nil
		})
	}
	// 各ゴルーチンは nil しか返さないため、ここでエラーは発生しない
	_ = eg.Wait()

	refs := make([]ReferenceImage, 0, len(paths))
	for _, ref := range loaded {
		if ref != nil {
			refs = append(refs, *ref)
		}
	}

	if len(refs) == 0 {
		slog.Info("有効な参照画像がないため、テキストのみモードでプロンプトを生成するのだ")
	} else {
		slog.Info("参照画像を読み込んだのだ", "count", len(refs))
	}
	return refs
}

func (rl *ReferenceLoader) loadOne(ctx context.Context, path string) (*ReferenceImage, error) {
	rc, err := rl.reader.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &ReferenceImage{
		Path:     path,
		MIMEType: mimeFromFormat(format),
		Data:     data,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

// mimeFromFormat はデコーダーが報告したフォーマット名を MIME タイプへ変換します。
// 拡張子ではなく実データ基準で判定する。
func mimeFromFormat(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
