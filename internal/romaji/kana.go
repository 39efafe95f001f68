package romaji

import (
	"strings"
	"unicode"
)

// Kana-literal (wapuro) spellings, matching how learners type on a keyboard:
// ウ after O is kept ("ou"), particle ハ stays "ha", ン before a vowel or Y
// is "nn".
var monographs = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヰ': "wi", 'ヱ': "we", 'ヲ': "wo", 'ン': "n",
	'ヴ': "vu",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
	'ャ': "ya", 'ュ': "yu", 'ョ': "yo", 'ヮ': "wa",
}

var digraphs = map[string]string{
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho", "シェ": "she",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo", "ジェ": "je",
	"チャ": "cha", "チュ": "chu", "チョ": "cho", "チェ": "che",
	"ヂャ": "ja", "ヂュ": "ju", "ヂョ": "jo",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ファ": "fa", "フィ": "fi", "フェ": "fe", "フォ": "fo",
	"ティ": "ti", "ディ": "di", "トゥ": "tu", "ドゥ": "du",
	"ウィ": "wi", "ウェ": "we", "ウォ": "wo",
	"ヴァ": "va", "ヴィ": "vi", "ヴェ": "ve", "ヴォ": "vo",
}

// skipped punctuation that carries no sound
const silent = "、。・「」『』！？!?,.　 〜～"

// toKatakana folds hiragana into katakana; other runes are unchanged.
func toKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ぁ' && r <= 'ゖ' {
			return r + ('ァ' - 'ぁ')
		}
		return r
	}, s)
}

// FromKana converts kana text to kana-literal romaji. ok is false when s
// contains a rune that cannot be spelled (kanji, for example).
func FromKana(s string) (string, bool) {
	runes := []rune(toKatakana(s))
	var b strings.Builder
	geminate := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == 'ッ':
			geminate = true
			continue
		case r == 'ー':
			if v := lastVowel(b.String()); v != 0 {
				b.WriteRune(v)
			}
			continue
		case strings.ContainsRune(silent, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(unicode.ToLower(r))
			geminate = false
			continue
		}

		syllable := ""
		if i+1 < len(runes) {
			if d, ok := digraphs[string(runes[i:i+2])]; ok {
				syllable = d
				i++
			}
		}
		if syllable == "" {
			m, ok := monographs[r]
			if !ok {
				return "", false
			}
			syllable = m
		}

		if geminate {
			if syllable[0] == 'c' {
				b.WriteByte('t')
			} else if !isVowel(syllable[0]) && syllable != "n" {
				b.WriteByte(syllable[0])
			}
			geminate = false
		}
		b.WriteString(syllable)

		if r == 'ン' && i+1 < len(runes) && opensWithVowelOrY(runes[i+1]) {
			b.WriteByte('n')
		}
	}

	return b.String(), true
}

func opensWithVowelOrY(r rune) bool {
	m, ok := monographs[r]
	return ok && (isVowel(m[0]) || m[0] == 'y')
}

func isVowel(c byte) bool {
	return strings.IndexByte("aiueo", c) >= 0
}

func lastVowel(s string) rune {
	for i := len(s) - 1; i >= 0; i-- {
		if isVowel(s[i]) {
			return rune(s[i])
		}
	}
	return 0
}
