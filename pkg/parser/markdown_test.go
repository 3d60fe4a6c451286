package parser

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

const sampleMarkdownBrief = `# Brooks Glycerin 22 Ad Campaign

- prefix: brooks_glycerin_22_ad

We are creating a social media ad campaign for the Brooks Glycerin 22 running shoe.
The target audience is serious runners who value comfort.

## Requirements

- Photorealistic, high-quality advertising photography
- The shoe must be the hero of the image
- Square composition suitable for social media

## Fallback

High-quality ad photo of Brooks Glycerin 22 shoe with modern brand overlay.
`

func TestMarkdownBriefParser_Parse(t *testing.T) {
	t.Run("完全なMarkdownブリーフが解析できること", func(t *testing.T) {
		brief, err := NewMarkdownBriefParser().Parse(sampleMarkdownBrief)
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if brief.Campaign != "Brooks Glycerin 22 Ad Campaign" {
			t.Errorf("キャンペーン名が不正です: %s", brief.Campaign)
		}
		if brief.FilePrefix != "brooks_glycerin_22_ad" {
			t.Errorf("プレフィックスが不正です: %s", brief.FilePrefix)
		}
		if !strings.Contains(brief.BriefText, "serious runners") {
			t.Errorf("本文が欠落しています: %s", brief.BriefText)
		}
		if len(brief.Requirements) != 3 {
			t.Fatalf("要件数が不正です: %d", len(brief.Requirements))
		}
		if brief.Requirements[0] != "Photorealistic, high-quality advertising photography" {
			t.Errorf("要件1が不正です: %s", brief.Requirements[0])
		}
		if !strings.HasPrefix(brief.FallbackPrompt, "High-quality ad photo") {
			t.Errorf("フォールバックが不正です: %s", brief.FallbackPrompt)
		}
	})

	t.Run("prefix省略時はキャンペーン名から導出されること", func(t *testing.T) {
		input := strings.Replace(sampleMarkdownBrief, "- prefix: brooks_glycerin_22_ad\n", "", 1)
		brief, err := NewMarkdownBriefParser().Parse(input)
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if brief.FilePrefix != "brooks_glycerin_22_ad_campaign" {
			t.Errorf("導出されたプレフィックスが不正です: %s", brief.FilePrefix)
		}
	})

	t.Run("要件セクションが無い場合はエラーになること", func(t *testing.T) {
		input := "# Campaign\n\nSome brief text.\n\n## Fallback\n\nfallback prompt\n"
		if _, err := NewMarkdownBriefParser().Parse(input); err == nil {
			t.Fatal("エラーが返るべきです")
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"空白と記号がアンダースコアになること", "Brooks Glycerin 22: Ad!", "brooks_glycerin_22_ad"},
		{"端の区切りが除去されること", " Summer Sale ", "summer_sale"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// fakeReader はパスごとに固定コンテンツを返すテスト用のリーダーです。
type fakeReader struct {
	files map[string]string
}

func (f *fakeReader) Open(_ context.Context, path string) (io.ReadCloser, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func TestBriefParser_ParseFromPath(t *testing.T) {
	reader := &fakeReader{files: map[string]string{
		"briefs/campaign.md": sampleMarkdownBrief,
		"briefs/campaign.json": `{
			"campaign": "JSON Campaign",
			"file_prefix": "json_ad",
			"brief": "body",
			"requirements": ["req one"],
			"fallback_prompt": "fallback"
		}`,
	}}
	p := NewBriefParser(reader)

	t.Run("拡張子.mdはMarkdownとして解析されること", func(t *testing.T) {
		brief, err := p.ParseFromPath(context.Background(), "briefs/campaign.md")
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if brief.Campaign != "Brooks Glycerin 22 Ad Campaign" {
			t.Errorf("キャンペーン名が不正です: %s", brief.Campaign)
		}
	})

	t.Run("それ以外はJSONとして解析されること", func(t *testing.T) {
		brief, err := p.ParseFromPath(context.Background(), "briefs/campaign.json")
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if brief.Campaign != "JSON Campaign" {
			t.Errorf("キャンペーン名が不正です: %s", brief.Campaign)
		}
	})

	t.Run("存在しないパスはエラーになること", func(t *testing.T) {
		if _, err := p.ParseFromPath(context.Background(), "missing.md"); err == nil {
			t.Fatal("エラーが返るべきです")
		}
	})
}
