package chronoclip_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreTitle(t *testing.T) {
	t.Parallel()

	t.Run("score is within unit interval", func(t *testing.T) {
		t.Parallel()

		texts := []string{
			"",
			"x",
			"夏祭り開催のお知らせ",
			strings.Repeat("a", 300),
			"ログイン / 会員登録 メニュー 検索",
		}
		for _, text := range texts {
			for _, origin := range []chronoclip.CandidateOrigin{
				chronoclip.OriginHeading,
				chronoclip.OriginEmphasis,
				chronoclip.OriginNearby,
				chronoclip.OriginPage,
			} {
				score := chronoclip.ScoreTitle(text, origin)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			}
		}
	})

	t.Run("heading origin never scores below fallback origin", func(t *testing.T) {
		t.Parallel()

		texts := []string{
			"夏祭り開催のお知らせ",
			"Concert",
			"2025/08/10 開催",
			strings.Repeat("秋", 120),
		}
		for _, text := range texts {
			heading := chronoclip.ScoreTitle(text, chronoclip.OriginHeading)
			page := chronoclip.ScoreTitle(text, chronoclip.OriginPage)
			assert.GreaterOrEqual(t, heading, page, "text: %s", text)
		}
	})

	t.Run("event keyword boosts the score", func(t *testing.T) {
		t.Parallel()

		plain := chronoclip.ScoreTitle("夏のお知らせについて", chronoclip.OriginHeading)
		keyword := chronoclip.ScoreTitle("夏のライブのお知らせ", chronoclip.OriginHeading)
		assert.Greater(t, keyword, plain)
	})

	t.Run("date inside title is penalized", func(t *testing.T) {
		t.Parallel()

		plain := chronoclip.ScoreTitle("夏祭りのお知らせです", chronoclip.OriginHeading)
		dated := chronoclip.ScoreTitle("2025年8月10日のお知らせ", chronoclip.OriginHeading)
		assert.Greater(t, plain, dated)
	})

	t.Run("boilerplate keyword is heavily penalized", func(t *testing.T) {
		t.Parallel()

		plain := chronoclip.ScoreTitle("夏祭りのご案内ページ", chronoclip.OriginHeading)
		nav := chronoclip.ScoreTitle("ログインしてご確認ください", chronoclip.OriginHeading)
		assert.Greater(t, plain, nav)
	})

	t.Run("shouting text is penalized", func(t *testing.T) {
		t.Parallel()

		normal := chronoclip.ScoreTitle("Summer Festival Night", chronoclip.OriginHeading)
		upper := chronoclip.ScoreTitle("SUMMER FESTIVAL NIGHT", chronoclip.OriginHeading)
		assert.Greater(t, normal, upper)
	})
}

func TestIsNoisy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clean text", "夏祭りは8月10日に開催されます。", false},
		{"stopword substring", "エラー: undefined", true},
		{"two urls pass", "https://a.example https://b.example", false},
		{"three urls fail", "https://a.example https://b.example https://c.example", true},
		{"mixed contacts fail", "mail: a@example.com tel: 03-1234-5678 https://x.example 03-9999-0000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, chronoclip.IsNoisy(tt.text))
		})
	}
}

func TestBestTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers heading over page fallback", func(t *testing.T) {
		t.Parallel()

		best := chronoclip.BestTitle([]chronoclip.Candidate{
			{Text: "夏祭り2025のご案内", Origin: chronoclip.OriginPage, Role: chronoclip.RoleTitle},
			{Text: "夏祭り2025のご案内", Origin: chronoclip.OriginHeading, Role: chronoclip.RoleTitle},
		})

		require.NotNil(t, best)
		assert.Equal(t, chronoclip.OriginHeading, best.Origin)
	})

	t.Run("skips noisy candidates", func(t *testing.T) {
		t.Parallel()

		best := chronoclip.BestTitle([]chronoclip.Candidate{
			{Text: "エラー: undefined", Origin: chronoclip.OriginHeading, Role: chronoclip.RoleTitle},
			{Text: "秋の勉強会のお知らせ", Origin: chronoclip.OriginNearby, Role: chronoclip.RoleTitle},
		})

		require.NotNil(t, best)
		assert.Equal(t, "秋の勉強会のお知らせ", best.Text)
	})

	t.Run("returns nil when nothing survives", func(t *testing.T) {
		t.Parallel()

		best := chronoclip.BestTitle([]chronoclip.Candidate{
			{Text: "", Origin: chronoclip.OriginHeading},
			{Text: "読み込み中", Origin: chronoclip.OriginHeading},
		})

		assert.Nil(t, best)
	})
}

func TestBuildDescription(t *testing.T) {
	t.Parallel()

	t.Run("joins qualifying parts in order", func(t *testing.T) {
		t.Parallel()

		got := chronoclip.BuildDescription([]chronoclip.Candidate{
			{Text: "会場は中央公園です。", Origin: chronoclip.OriginNearby},
			{Text: "雨天決行です。", Origin: chronoclip.OriginNearby},
		})

		assert.Equal(t, "会場は中央公園です。\n雨天決行です。", got)
	})

	t.Run("caps the number of parts", func(t *testing.T) {
		t.Parallel()

		got := chronoclip.BuildDescription([]chronoclip.Candidate{
			{Text: "一"}, {Text: "二"}, {Text: "三"}, {Text: "四"},
		})

		assert.Equal(t, "一\n二\n三", got)
	})

	t.Run("long text is truncated with ellipsis", func(t *testing.T) {
		t.Parallel()

		got := chronoclip.BuildDescription([]chronoclip.Candidate{
			{Text: strings.Repeat("あ", 1000)},
		})

		assert.LessOrEqual(t, utf8.RuneCountInString(got), chronoclip.MaxDescriptionLength)
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("noisy parts are excluded", func(t *testing.T) {
		t.Parallel()

		got := chronoclip.BuildDescription([]chronoclip.Candidate{
			{Text: "エラー: undefined"},
			{Text: "開場は17時です。"},
		})

		assert.Equal(t, "開場は17時です。", got)
	})
}

func TestDescriptionQuality(t *testing.T) {
	t.Parallel()

	t.Run("empty text scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, chronoclip.DescriptionQuality(""))
	})

	t.Run("well formed text scores higher than a fragment", func(t *testing.T) {
		t.Parallel()

		good := chronoclip.DescriptionQuality("今年も中央公園で夏祭りを開催します。屋台や花火など、楽しい催しが盛りだくさんです。")
		bad := chronoclip.DescriptionQuality("屋台")
		assert.Greater(t, good, bad)
	})

	t.Run("score is within unit interval", func(t *testing.T) {
		t.Parallel()

		score := chronoclip.DescriptionQuality(strings.Repeat("祭。", 300))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})
}
