package parser

import "regexp"

var (
	// TitleRegex は "# タイトル" 形式のタイトル行をキャプチャします。
	TitleRegex = regexp.MustCompile(`^#\s+(.+)`)

	// SectionRegex は "## セクション名" 形式の見出し行をキャプチャします。
	SectionRegex = regexp.MustCompile(`^##\s+(.+)`)

	// FieldRegex は "- key: value" 形式のフィールド行をキャプチャします。
	FieldRegex = regexp.MustCompile(`^\s*-\s*([a-zA-Z_]+):\s*(.+)`)

	// ListItemRegex は "- 項目" 形式の箇条書き行をキャプチャします。
	ListItemRegex = regexp.MustCompile(`^\s*-\s*(.+)`)

	// slugRegex はファイル名プレフィックスに使えない文字の連続にマッチします。
	slugRegex = regexp.MustCompile(`[^a-z0-9]+`)
)
