package romaji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromKana(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"こんにちは", "konnichiha"},
		{"ありがとう", "arigatou"},
		{"おはよう", "ohayou"},
		{"すみません", "sumimasen"},
		{"きょうはいいてんきですね", "kyouhaiitenkidesune"},
		{"がっこう", "gakkou"},
		{"まっちゃ", "matcha"},
		{"コーヒー", "koohii"},
		{"シャツ", "shatsu"},
		{"ジュース", "juusu"},
		{"えきはどこですか？", "ekihadokodesuka"},
		{"ファイル", "fairu"},
		{"Tシャツ", "tshatsu"},
		{"キンエン", "kinnen"},
		{"きねん", "kinen"},
		{"ほんや", "honnya"},
		{"こんよう", "konnyou"},
		{"せんせい", "sensei"},
	}
	for _, tc := range cases {
		got, ok := FromKana(tc.in)
		assert.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFromKana_RejectsKanji(t *testing.T) {
	_, ok := FromKana("日本")
	assert.False(t, ok)
}

func TestFromKana_Empty(t *testing.T) {
	got, ok := FromKana("")
	assert.True(t, ok)
	assert.Equal(t, "", got)
}
