package exhibit

// LoadingMessages rotate while a placard is being generated.
var LoadingMessages = []string{
	"飼育員があなたの観察データを解析中...",
	"展示ブースを清掃しています...",
	"学名をラテン語辞書で引いています...",
	"豆知識をひねり出しています...",
	"危険度を測定中です、少々お待ちください...",
}

// StatLabels are the bilingual captions for each stat bar.
var StatLabels = struct {
	Stamina      string
	Intelligence string
	Laziness     string
	Charm        string
}{
	Stamina:      "体力 / Stamina",
	Intelligence: "知能 / Intellect",
	Laziness:     "怠惰さ / Laziness",
	Charm:        "愛嬌 / Charm",
}

// Placeholders are the example hints shown in empty form fields.
var Placeholders = struct {
	Name  string
	Hobby string
	Worry string
}{
	Name:  "例：タナカ",
	Hobby: "例：深夜のラーメン、長時間の昼寝",
	Worry: "例：階段で息が切れる、スマホの通知が怖い",
}

// Form and card captions.
const (
	Headline       = "もしもあなたが動物園で飼育されていたら！？"
	Tagline        = "AI Official Exhibit Creator"
	NameLabel      = "展示名（あなたのお名前）"
	HobbyLabel     = "生態的特徴（特技・趣味・好きなもの）"
	WorryLabel     = "最近観測された行動（悩み・近況）"
	SubmitLabel    = "看板をデザインする"
	DangerCaption  = "危険度："
	KeeperCaption  = "飼育員による解説"
	FunFactCaption = "豆知識"
	ErrorHeading   = "エラーが発生しました"
	ExportLabel    = "解説看板を画像として保存"
	ExportingLabel = "書き出し中..."
	ResetLabel     = "別の看板を作る"
	Footer         = "Zoo Exhibit Creator - Powered by Gemini AI"
)
