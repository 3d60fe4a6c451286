package generator

// StepStatus は生成ステップ1回分の結末を表します。
// 例外の握りつぶしではなく型付きの結果を返すことで、
// オーケストレーター側が失敗ポリシーを明示的に判断できるようにします。
type StepStatus int

const (
	// StatusOK はステップが本来の成果物を生成できたことを示す。
	StatusOK StepStatus = iota
	// StatusFallback はテキスト生成が失敗し、固定プロンプトで代替したことを示す。
	StatusFallback
	// StatusFailed はステップが成果物を残せなかったことを示す。実行自体は続行される。
	StatusFailed
)

// PromptResult はプロンプト生成ステップの結果です。
// Status が StatusFallback でも Text には必ず使用可能なプロンプトが入ります。
type PromptResult struct {
	Text   string
	Status StepStatus
}

// ImageResult は画像生成ステップの結果です。
// Status が StatusOK のときだけ Path に保存先が入ります。
type ImageResult struct {
	Path   string
	Status StepStatus
}
