// Package parser はクリエイティブブリーフの解析を担うのだ。
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-adgen-kit/pkg/domain"
)

const (
	fieldKeyPrefix = "prefix"

	sectionRequirements = "requirements"
	sectionFallback     = "fallback"
)

// MarkdownBriefParser は Markdown 形式のブリーフを解析し、構造化データに変換する構造体です。
//
// 想定する形式:
//
//	# キャンペーン名
//	- prefix: file_prefix（省略時はキャンペーン名から導出）
//	ブリーフ本文の段落...
//	## Requirements
//	- 要件1
//	## Fallback
//	フォールバックプロンプト
type MarkdownBriefParser struct {
}

// NewMarkdownBriefParser は MarkdownBriefParser を初期化するのだ。
func NewMarkdownBriefParser() *MarkdownBriefParser {
	return &MarkdownBriefParser{}
}

// Parse は Markdown テキストを解析して domain.Brief 構造体に変換します。
func (p *MarkdownBriefParser) Parse(input string) (domain.Brief, error) {
	brief := domain.Brief{}
	lines := strings.Split(input, "\n")

	var bodyLines []string
	var fallbackLines []string
	currentSection := ""

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" {
			continue
		}

		if m := TitleRegex.FindStringSubmatch(trimmedLine); m != nil && !SectionRegex.MatchString(trimmedLine) {
			brief.Campaign = strings.TrimSpace(m[1])
			continue
		}

		if m := SectionRegex.FindStringSubmatch(trimmedLine); m != nil {
			currentSection = strings.ToLower(strings.TrimSpace(m[1]))
			continue
		}

		switch currentSection {
		case sectionRequirements:
			if m := ListItemRegex.FindStringSubmatch(trimmedLine); m != nil {
				brief.Requirements = append(brief.Requirements, strings.TrimSpace(m[1]))
			}
		case sectionFallback:
			fallbackLines = append(fallbackLines, trimmedLine)
		default:
			// セクション前の本文。"- key: value" はメタデータとして扱う
			if m := FieldRegex.FindStringSubmatch(trimmedLine); m != nil {
				key, val := strings.ToLower(m[1]), strings.TrimSpace(m[2])
				switch key {
				case fieldKeyPrefix:
					brief.FilePrefix = val
				default:
					slog.Debug("Markdown内に未知のフィールドキーが見つかりました", "key", key)
				}
				continue
			}
			bodyLines = append(bodyLines, trimmedLine)
		}
	}

	brief.BriefText = strings.Join(bodyLines, "\n")
	brief.FallbackPrompt = strings.Join(fallbackLines, "\n")

	if brief.FilePrefix == "" {
		brief.FilePrefix = Slugify(brief.Campaign)
	}

	if err := brief.Validate(); err != nil {
		return domain.Brief{}, fmt.Errorf("Markdownブリーフの検証に失敗しました: %w", err)
	}

	return brief, nil
}

// Slugify はキャンペーン名などの自由テキストからファイル名に安全なプレフィックスを導出するのだ。
func Slugify(name string) string {
	slug := slugRegex.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(slug, "_")
}
