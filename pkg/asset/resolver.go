package asset

import (
	"fmt"
	"regexp"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultLogFileName は生成ログのデフォルト JSON ファイル名です。
	DefaultLogFileName = "generation_log.json"
	// imageFileExt は保存する広告画像の拡張子です。
	imageFileExt = ".png"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// ImageFileName は広告画像のファイル名を生成するのだ。
// 番号は2桁にゼロ埋めされる（例: "brooks_ad", 3 -> "brooks_ad_03.png"）。
// 同じ出力先で同じ番号を使うと前回の成果物を上書きする点は仕様とする。
func ImageFileName(prefix string, index int) string {
	return fmt.Sprintf("%s_%02d%s", prefix, index, imageFileExt)
}

// ResolveImagePath は出力ディレクトリとプレフィックスから画像の保存先パスを解決します。
// index は1以上の整数である必要があります。
func ResolveImagePath(baseDir, prefix string, index int) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("画像番号は1以上である必要があります: %d", index)
	}
	return urlpath.ResolvePath(baseDir, ImageFileName(prefix, index))
}

// CreateIndexedRegex は、プレフィックスに基づき連番付き画像ファイル用の正規表現を生成します。
// 例: "brooks_ad" -> ^brooks_ad_\d{2,}\.png$
func CreateIndexedRegex(prefix string) *regexp.Regexp {
	pattern := fmt.Sprintf(`^%s_\d{2,}%s$`, regexp.QuoteMeta(prefix), regexp.QuoteMeta(imageFileExt))
	return regexp.MustCompile(pattern)
}
