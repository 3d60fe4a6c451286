package domain

import "time"

// TimeLayout は生成ログに記録するタイムスタンプの書式です。
const TimeLayout = "2006-01-02 15:04:05"

// CampaignItem は1回の生成試行の記録です。作成後は変更されません。
// ImagePath は画像生成に失敗した試行では nil のままログに残ります。
type CampaignItem struct {
	ImageNumber int     `json:"image_number"`
	Prompt      string  `json:"prompt"`
	ImagePath   *string `json:"image_path"`
	GeneratedAt string  `json:"generated_at"`
}

// CampaignLog は1回のキャンペーン実行全体の記録です。
// 実行の最後に一度だけ書き出され、途中更新はされません。
type CampaignLog struct {
	Campaign    string         `json:"campaign"`
	GeneratedAt string         `json:"generated_at"`
	TotalImages int            `json:"total_images"`
	Images      []CampaignItem `json:"images"`
}

// NewCampaignLog は蓄積済みのアイテム一覧からログ構造体を組み立てるのだ。
func NewCampaignLog(campaign string, items []CampaignItem, now time.Time) CampaignLog {
	return CampaignLog{
		Campaign:    campaign,
		GeneratedAt: now.Format(TimeLayout),
		TotalImages: len(items),
		Images:      items,
	}
}
