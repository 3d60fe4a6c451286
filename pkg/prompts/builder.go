package prompts

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/shouni/go-adgen-kit/pkg/domain"
)

// StyleGuidance は、参照画像を添えたときにテキストモデルへ渡す固定のスタイル指示です。
// 参照はタイポグラフィとレイアウトの手本としてのみ使わせ、被写体の複写は明示的に禁止します。
const StyleGuidance = `The reference images shown above are **only** for layout style.
Use them to understand:
- The exact font style of the brand name
- The exact way the tagline overlay is styled and positioned
- The use of bold fonts, gradients, shadows, or boxed color backgrounds
Do NOT copy or describe the exact product shown in these images.
Do NOT refer to the background, clothing, or any specific scene they depict.
Only apply the same **typographic overlay approach** when composing the visual prompt.
Make sure you position the brand name and tagline in a way that fits the new scene you create.`

// AdPromptBuilder はブリーフと要件リストからテキストモデル向けリクエストを組み立てます。
// 同じ入力に対しては常に同じリクエスト文字列を返します（画像番号を除く）。
type AdPromptBuilder struct {
	templates map[string]*template.Template
	brief     domain.Brief
}

// NewAdPromptBuilder は AdPromptBuilder を初期化します。
func NewAdPromptBuilder(brief domain.Brief) (*AdPromptBuilder, error) {
	parsedTemplates := make(map[string]*template.Template)
	for mode, content := range allTemplates {
		if content == "" {
			return nil, fmt.Errorf("リクエストテンプレート '%s' (go:embed) の読み込みに失敗しました: 内容が空です", mode)
		}

		tmpl, err := template.New(mode).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("テンプレート '%s' の解析に失敗: %w", mode, err)
		}
		parsedTemplates[mode] = tmpl
	}

	return &AdPromptBuilder{
		templates: parsedTemplates,
		brief:     brief,
	}, nil
}

// BuildCampaignRequest は、指定された画像番号のリクエスト全文を生成します。
// withStyleGuide が真のときだけスタイル指示ブロックが差し込まれます。
func (b *AdPromptBuilder) BuildCampaignRequest(imageNumber int, withStyleGuide bool) (string, error) {
	data := TemplateData{
		Brief:        b.brief.BriefText,
		ImageNumber:  imageNumber,
		Requirements: AssembleRequirements(b.brief.Requirements),
	}
	if withStyleGuide {
		data.StyleGuide = StyleGuidance
	}
	return b.build(ModeCampaign, data)
}

// BuildDescribeRequest は参照画像の解析に使うリクエスト文を返します。
func (b *AdPromptBuilder) BuildDescribeRequest() (string, error) {
	return b.build(ModeDescribe, TemplateData{})
}

func (b *AdPromptBuilder) build(mode string, data TemplateData) (string, error) {
	tmpl, ok := b.templates[mode]
	if !ok {
		return "", fmt.Errorf("不明なモードです: '%s'", mode)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("リクエストテンプレートの実行に失敗しました: %w", err)
	}

	return sb.String(), nil
}

// AssembleRequirements は要件リストを番号付きブロックに整形するのだ。
// 番号はリスト内の位置から導出されるため、並び順がそのまま優先度になる。
func AssembleRequirements(requirements []string) string {
	lines := make([]string, 0, len(requirements))
	for i, req := range requirements {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, req))
	}
	return strings.Join(lines, "\n")
}
