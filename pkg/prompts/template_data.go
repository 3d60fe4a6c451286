package prompts

import (
	_ "embed"
)

const (
	ModeCampaign = "campaign"
	ModeDescribe = "describe"
)

// TemplateData はリクエストテンプレートに渡すデータ構造です。
type TemplateData struct {
	Brief        string // クリエイティブブリーフの本文
	ImageNumber  int    // 1始まりの画像番号
	Requirements string // 番号付き要件ブロック
	StyleGuide   string // 参照画像があるときだけ非空になるスタイル指示
}

var (
	//go:embed campaign.md
	CampaignPrompt string
	//go:embed describe.md
	DescribePrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップなのだ。
var allTemplates = map[string]string{
	ModeCampaign: CampaignPrompt,
	ModeDescribe: DescribePrompt,
}
