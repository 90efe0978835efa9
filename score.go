package chronoclip

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Base scores keyed by candidate origin. The order is load-bearing: a
// heading-sourced candidate never starts below an otherwise-identical
// candidate from a weaker origin.
var originBaseScores = map[CandidateOrigin]float64{
	OriginHeading:  0.70,
	OriginEmphasis: 0.55,
	OriginNearby:   0.40,
	OriginPage:     0.25,
}

// eventKeywords are nouns that suggest the text names an event. Only the
// first match counts toward the score.
var eventKeywords = []string{
	"開催", "公演", "ライブ", "イベント", "発売", "締切", "申込", "受付",
	"セミナー", "勉強会", "展示", "フェス", "祭",
	"live", "concert", "event", "festival", "conference", "meetup",
	"workshop", "release", "deadline", "tour", "show",
}

// boilerplateKeywords mark navigation chrome and site furniture. A
// candidate containing any of these is heavily penalized.
var boilerplateKeywords = []string{
	"ログイン", "会員登録", "メニュー", "ナビゲーション", "検索", "カート",
	"お問い合わせ", "プライバシー", "利用規約", "広告",
	"login", "sign in", "sign up", "menu", "search", "cookie",
	"privacy", "terms", "subscribe", "copyright", "©",
}

// stopwords disqualify a candidate outright before scoring.
var stopwords = []string{
	"undefined", "null", "javascript:", "404 not found",
	"ページが見つかりません", "読み込み中",
}

var (
	titleDateRe = regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{4}年\d{1,2}月\d{1,2}日|(令和|平成|昭和|大正|明治)(元|\d{1,2})年`)
	urlRe       = regexp.MustCompile(`https?://\S+`)
	emailRe     = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	phoneRe     = regexp.MustCompile(`\d{2,4}-\d{2,4}-\d{3,4}`)
)

// IsNoisy reports whether candidate text fails the noise filter: a
// stopword substring, or more than two URLs, emails, or phone numbers
// combined.
func IsNoisy(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range stopwords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	n := len(urlRe.FindAllString(text, -1)) +
		len(emailRe.FindAllString(text, -1)) +
		len(phoneRe.FindAllString(text, -1))
	return n > 2
}

// ScoreTitle assigns a confidence score in [0,1] to a title candidate.
// The score starts from the origin base and is adjusted by length,
// keyword, date-presence, boilerplate, punctuation, and case features.
// Callers filter with IsNoisy before scoring.
func ScoreTitle(text string, origin CandidateOrigin) float64 {
	score := originBaseScores[origin]
	n := utf8.RuneCountInString(text)
	lower := strings.ToLower(text)

	// Ideal title length is 10-50 runes; 5-100 is acceptable; anything
	// outside 3-200 is almost certainly not a title.
	switch {
	case n >= 10 && n <= 50:
		score += 0.15
	case n >= 5 && n <= 100:
		score += 0.05
	case n < 3 || n > 200:
		score -= 0.30
	}

	for _, w := range eventKeywords {
		if strings.Contains(lower, w) {
			score += 0.10
			break
		}
	}

	// A full date inside a title is a sign the candidate is the date
	// line itself, not the event name.
	if titleDateRe.MatchString(text) {
		score -= 0.20
	}

	for _, w := range boilerplateKeywords {
		if strings.Contains(lower, w) {
			score -= 0.40
			break
		}
	}

	if strings.ContainsAny(text, "。.!?！？") {
		score += 0.05
	}

	if upperRatio(text) > 0.7 {
		score -= 0.05
	}

	return clamp01(score)
}

// BestTitle filters, scores, and picks the highest-scoring title
// candidate. Ties keep the earlier candidate. Returns nil when nothing
// survives the noise filter.
func BestTitle(candidates []Candidate) *Candidate {
	var best *Candidate
	for i := range candidates {
		c := candidates[i]
		if c.Text == "" || IsNoisy(c.Text) {
			continue
		}
		c.Score = ScoreTitle(c.Text, c.Origin)
		if best == nil || c.Score > best.Score {
			scored := c
			best = &scored
		}
	}
	return best
}

// Description assembly limits.
const (
	MaxDescriptionParts  = 3
	MaxDescriptionLength = 400
	descriptionEllipsis  = "…"
)

// BuildDescription joins qualifying description fragments (up to
// MaxDescriptionParts, noise-filtered, in order) and caps the result at
// MaxDescriptionLength runes with an ellipsis marker.
func BuildDescription(candidates []Candidate) string {
	var parts []string
	for _, c := range candidates {
		if c.Text == "" || IsNoisy(c.Text) {
			continue
		}
		parts = append(parts, c.Text)
		if len(parts) >= MaxDescriptionParts {
			break
		}
	}
	joined := strings.Join(parts, "\n")
	if utf8.RuneCountInString(joined) <= MaxDescriptionLength {
		return joined
	}
	runes := []rune(joined)
	return string(runes[:MaxDescriptionLength-1]) + descriptionEllipsis
}

// DescriptionQuality estimates how trustworthy assembled description
// text is, in [0,1]. Empty text scores zero.
func DescriptionQuality(text string) float64 {
	if text == "" {
		return 0
	}
	score := 0.30
	n := utf8.RuneCountInString(text)
	if n >= 40 && n <= MaxDescriptionLength {
		score += 0.25
	}
	if !IsNoisy(text) {
		score += 0.25
	}
	if strings.ContainsAny(text, "。.!?！？") {
		score += 0.20
	}
	return clamp01(score)
}

// upperRatio returns the share of uppercase letters among Latin letters.
// Non-Latin text (e.g., Japanese) yields zero.
func upperRatio(text string) float64 {
	var letters, uppers int
	for _, r := range text {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			uppers++
		}
	}
	if letters < 6 {
		return 0
	}
	return float64(uppers) / float64(letters)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
