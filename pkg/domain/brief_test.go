package domain

import (
	"strings"
	"testing"
)

func validBriefJSON() string {
	return `{
		"campaign": "Test Campaign",
		"file_prefix": "test_ad",
		"brief": "Product: test sneaker",
		"requirements": ["Show the product.", "Use bold typography."],
		"fallback_prompt": "High-quality product ad photo."
	}`
}

func TestParseBrief(t *testing.T) {
	t.Run("正しいJSONがブリーフに変換できるのだ", func(t *testing.T) {
		brief, err := ParseBrief([]byte(validBriefJSON()))
		if err != nil {
			t.Fatalf("パース失敗なのだ: %v", err)
		}

		if brief.Campaign != "Test Campaign" {
			t.Errorf("キャンペーン名が違うのだ: %s", brief.Campaign)
		}
		if len(brief.Requirements) != 2 {
			t.Errorf("要件の件数が違うのだ: %d", len(brief.Requirements))
		}
		if brief.FallbackPrompt != "High-quality product ad photo." {
			t.Errorf("フォールバックが違うのだ: %s", brief.FallbackPrompt)
		}
	})

	t.Run("壊れたJSONはエラーになるのだ", func(t *testing.T) {
		if _, err := ParseBrief([]byte(`{"campaign": `)); err == nil {
			t.Error("エラーが返っていないのだ")
		}
	})
}

func TestBrief_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Brief)
	}{
		{"campaign が空だと失敗するのだ", func(b *Brief) { b.Campaign = "" }},
		{"file_prefix が空だと失敗するのだ", func(b *Brief) { b.FilePrefix = "  " }},
		{"brief 本文が空だと失敗するのだ", func(b *Brief) { b.BriefText = "" }},
		{"requirements が空だと失敗するのだ", func(b *Brief) { b.Requirements = nil }},
		{"fallback_prompt が空だと失敗するのだ", func(b *Brief) { b.FallbackPrompt = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			brief, err := ParseBrief([]byte(validBriefJSON()))
			if err != nil {
				t.Fatalf("前提のパースに失敗したのだ: %v", err)
			}
			tc.mutate(&brief)
			if err := brief.Validate(); err == nil {
				t.Error("バリデーションエラーが返っていないのだ")
			}
		})
	}
}

func TestLoadBrief_NotFound(t *testing.T) {
	_, err := LoadBrief("no_such_brief.json")
	if err == nil || !strings.Contains(err.Error(), "読み込みに失敗") {
		t.Errorf("想定外のエラーなのだ: %v", err)
	}
}
