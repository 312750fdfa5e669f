package exhibit

import (
	"strings"
	"text/template"
)

var promptTemplate = template.Must(template.New("prompt").Parse(`あなたは動物園のユニークな解説看板を書くプロの飼育員です。
以下のユーザー情報から、ユーモア溢れる「動物解説看板」のデータを生成してください。

入力情報:
展示名（名前）: {{.Name}}
生態的特徴（趣味・特技）: {{.Hobby}}
最近の行動（悩み・近況）: {{.Worry}}

要件:
- scientificName: ラテン語風の面白い学名（例: Homo sapiens tanaka）
- dangerLevel: 星5満点の危険度（★の絵文字を使用）
- classification: 面白い分類（例：夜型目 〆切科）
- description: 飼育員視点での客観的かつユーモラスな解説。200文字程度。
- funFact: 意外な豆知識。
- stats: 0-100の数値（stamina, intelligence, laziness, charm）。
`))

// BuildPrompt renders the zookeeper instruction with the three inputs
// embedded verbatim.
func BuildPrompt(in UserInput) string {
	var b strings.Builder
	// text/template leaves field values unescaped; Execute only fails on a
	// broken writer, which strings.Builder never is.
	_ = promptTemplate.Execute(&b, in)
	return b.String()
}
