package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Brief は広告キャンペーンの制作指示（クリエイティブブリーフ）を保持します。
// 実行中は読み取り専用で、文面の編集はJSONドキュメント側で行います。
type Brief struct {
	Campaign       string   `json:"campaign"`        // キャンペーン名（生成ログに記録される）
	FilePrefix     string   `json:"file_prefix"`     // 生成画像ファイル名のプレフィックス
	BriefText      string   `json:"brief"`           // 製品・ターゲット・必須要素を記した本文
	Requirements   []string `json:"requirements"`    // プロンプトが満たすべき指示（位置が番号になる）
	FallbackPrompt string   `json:"fallback_prompt"` // テキスト生成失敗時に使う固定プロンプト
}

// LoadBrief は指定されたファイルパスからJSONを読み込み、ブリーフを返すのだ。
func LoadBrief(path string) (Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Brief{}, fmt.Errorf("ブリーフファイルの読み込みに失敗したのだ: %w", err)
	}
	return ParseBrief(data)
}

// ParseBrief はJSONバイト列からブリーフをパースして返すのだ。
func ParseBrief(data []byte) (Brief, error) {
	var brief Brief
	if err := json.Unmarshal(data, &brief); err != nil {
		return Brief{}, fmt.Errorf("ブリーフのデコードに失敗したのだ: %w", err)
	}
	if err := brief.Validate(); err != nil {
		return Brief{}, err
	}
	return brief, nil
}

// Validate は生成パイプラインが動作するための最低限の内容を検証します。
func (b Brief) Validate() error {
	if strings.TrimSpace(b.Campaign) == "" {
		return fmt.Errorf("ブリーフに campaign がありません")
	}
	if strings.TrimSpace(b.FilePrefix) == "" {
		return fmt.Errorf("ブリーフに file_prefix がありません")
	}
	if strings.TrimSpace(b.BriefText) == "" {
		return fmt.Errorf("ブリーフに brief 本文がありません")
	}
	if len(b.Requirements) == 0 {
		return fmt.Errorf("ブリーフに requirements が1件もありません")
	}
	if strings.TrimSpace(b.FallbackPrompt) == "" {
		return fmt.Errorf("ブリーフに fallback_prompt がありません")
	}
	return nil
}
