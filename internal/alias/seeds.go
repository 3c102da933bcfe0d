package alias

import "github.com/cosmezukan/cosme-server/internal/domain"

// Built-in seed tables. These are compiled in, never persisted, and never
// deletable; user tables extend them, with user entries taking precedence.

// SeedColors is the built-in color table with personal-color classes.
//
//nolint:gochecknoglobals // Static lookup table
var SeedColors = []domain.ColorAlias{
	{CanonicalName: "Red", Aliases: []string{"Red", "red", "レッド", "赤"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Pink", Aliases: []string{"Pink", "pink", "ピンク"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Coral Pink", Aliases: []string{"Coral Pink", "coral-pink", "コーラルピンク"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Orange", Aliases: []string{"Orange", "orange", "オレンジ"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Yellow", Aliases: []string{"Yellow", "yellow", "イエロー", "黄色"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Beige", Aliases: []string{"Beige", "beige", "ベージュ"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Brown", Aliases: []string{"Brown", "brown", "ブラウン", "茶色"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Khaki", Aliases: []string{"Khaki", "khaki", "カーキ"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Green", Aliases: []string{"Green", "green", "グリーン", "緑"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "Blue", Aliases: []string{"Blue", "blue", "ブルー", "青"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Navy", Aliases: []string{"Navy", "navy", "ネイビー", "紺"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Purple", Aliases: []string{"Purple", "purple", "パープル", "紫"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Lavender", Aliases: []string{"Lavender", "lavender", "ラベンダー"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Bordeaux", Aliases: []string{"Bordeaux", "bordeaux", "ボルドー"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Gray", Aliases: []string{"Gray", "gray", "グレー", "灰色"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Silver", Aliases: []string{"Silver", "silver", "シルバー", "銀"}, PersonalColor: domain.PersonalColorBlue},
	{CanonicalName: "Gold", Aliases: []string{"Gold", "gold", "ゴールド", "金"}, PersonalColor: domain.PersonalColorYellow},
	{CanonicalName: "White", Aliases: []string{"White", "white", "ホワイト", "白"}, PersonalColor: domain.PersonalColorNeutral},
	{CanonicalName: "Black", Aliases: []string{"Black", "black", "ブラック", "黒"}, PersonalColor: domain.PersonalColorNeutral},
}

// SeedCategories is the built-in category table with English and Japanese spellings.
//
//nolint:gochecknoglobals // Static lookup table
var SeedCategories = []domain.CategoryAlias{
	{CanonicalName: "Face", Aliases: []string{"Face", "フェイス"}},
	{CanonicalName: "Eyes", Aliases: []string{"Eyes", "アイ", "目元"}},
	{CanonicalName: "Lips", Aliases: []string{"Lips", "リップ", "口元"}},
	{CanonicalName: "Cheeks", Aliases: []string{"Cheeks", "チーク", "頬"}},
	{CanonicalName: "Nails", Aliases: []string{"Nails", "ネイル", "爪"}},
	{CanonicalName: "Skincare", Aliases: []string{"Skincare", "スキンケア"}},
	{CanonicalName: "Bodycare", Aliases: []string{"Bodycare", "ボディケア"}},
	{CanonicalName: "Haircare", Aliases: []string{"Haircare", "ヘアケア"}},
	{CanonicalName: "Fragrance", Aliases: []string{"Fragrance", "フレグランス", "香水"}},
	{CanonicalName: "Tools", Aliases: []string{"Tools", "ツール", "メイク道具"}},
	{CanonicalName: "Other", Aliases: []string{"Other", "その他"}},
}

// SeedBrands is the built-in brand table. Grows over time as common spellings
// surface; users add their own via the user brand table.
//
//nolint:gochecknoglobals // Static lookup table
var SeedBrands = []domain.BrandAlias{
	{CanonicalName: "Dior", Aliases: []string{"Dior", "ディオール"}},
	{CanonicalName: "Chanel", Aliases: []string{"Chanel", "シャネル"}},
	{CanonicalName: "NARS", Aliases: []string{"NARS", "ナーズ"}},
	{CanonicalName: "shu uemura", Aliases: []string{"shu uemura", "シュウウエムラ", "シュウ ウエムラ"}},
	{CanonicalName: "SUQQU", Aliases: []string{"SUQQU", "スック"}},
	{CanonicalName: "ADDICTION", Aliases: []string{"ADDICTION", "アディクション"}},
	{CanonicalName: "SHISEIDO", Aliases: []string{"SHISEIDO", "資生堂"}},
	{CanonicalName: "KATE", Aliases: []string{"KATE", "ケイト"}},
	{CanonicalName: "CANMAKE", Aliases: []string{"CANMAKE", "キャンメイク"}},
	{CanonicalName: "CEZANNE", Aliases: []string{"CEZANNE", "セザンヌ"}},
	{CanonicalName: "OPERA", Aliases: []string{"OPERA", "オペラ"}},
	{CanonicalName: "excel", Aliases: []string{"excel", "エクセル"}},
	{CanonicalName: "Visee", Aliases: []string{"Visee", "ヴィセ"}},
	{CanonicalName: "MAJOLICA MAJORCA", Aliases: []string{"MAJOLICA MAJORCA", "マジョリカ マジョルカ", "マジョマジョ"}},
	{CanonicalName: "Maybelline", Aliases: []string{"Maybelline", "メイベリン"}},
	{CanonicalName: "ETUDE", Aliases: []string{"ETUDE", "エチュード"}},
	{CanonicalName: "innisfree", Aliases: []string{"innisfree", "イニスフリー"}},
	{CanonicalName: "LANEIGE", Aliases: []string{"LANEIGE", "ラネージュ"}},
	{CanonicalName: "rom&nd", Aliases: []string{"rom&nd", "ロムアンド"}},
	{CanonicalName: "CLIO", Aliases: []string{"CLIO", "クリオ"}},
}
