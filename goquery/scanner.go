package goquery

import (
	"regexp"
	"unicode/utf8"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// Selectors for the structural sources the scanner recognizes.
const (
	headingSelector  = "h1, h2, h3, h4, h5, h6, [role=heading]"
	emphasisSelector = "strong, b, em"
	blockSelector    = "p, div, section, article, li, td, dd, main, body"
)

// Default traversal bounds.
const (
	DefaultMaxDepth      = 5
	DefaultMaxPrevBlocks = 2
	DefaultMaxNextBlocks = 2
	DefaultMinBlockLen   = 20
	DefaultMaxBlockLen   = 500
)

// locationLabelRe captures labeled location lines like 場所: 中央公園.
var locationLabelRe = regexp.MustCompile(`(?:場所|会場|住所|開催地|Venue|Location)\s*[:：]\s*([^\n]+)`)

// locationSelector matches markup commonly used for venue blocks.
const locationSelector = ".location, .venue, .place, .address, [itemprop=location], [class*=venue], [class*=place]"

// Scanner walks the content tree around an anchor node collecting title
// and description candidates. It holds only configuration, so one
// scanner is safe for concurrent extraction calls.
type Scanner struct {
	// MaxDepth bounds the ancestor walk from the anchor.
	MaxDepth int

	// MaxPrevBlocks and MaxNextBlocks bound the sibling blocks examined
	// for description text.
	MaxPrevBlocks int
	MaxNextBlocks int

	// MinBlockLen and MaxBlockLen are the accepted length band for
	// sibling description blocks; text outside it is rejected.
	MinBlockLen int
	MaxBlockLen int
}

// NewScanner creates a Scanner with the default traversal bounds.
func NewScanner() *Scanner {
	return &Scanner{
		MaxDepth:      DefaultMaxDepth,
		MaxPrevBlocks: DefaultMaxPrevBlocks,
		MaxNextBlocks: DefaultMaxNextBlocks,
		MinBlockLen:   DefaultMinBlockLen,
		MaxBlockLen:   DefaultMaxBlockLen,
	}
}

// TitleCandidates collects unscored title candidates around the anchor:
// the nearest heading within the bounded ancestor/sibling walk,
// emphasized text in the nearest block container, and the leading clause
// of adjacent text blocks. The page-level fallback is collected
// separately via PageTitleCandidate.
func (s *Scanner) TitleCandidates(anchor chronoclip.Node) []chronoclip.Candidate {
	if anchor == nil {
		return nil
	}
	var candidates []chronoclip.Candidate

	if heading := s.nearestHeading(anchor); heading != "" {
		candidates = append(candidates, chronoclip.Candidate{
			Text:   heading,
			Origin: chronoclip.OriginHeading,
			Role:   chronoclip.RoleTitle,
		})
	}

	for _, text := range s.emphasizedText(anchor) {
		candidates = append(candidates, chronoclip.Candidate{
			Text:   text,
			Origin: chronoclip.OriginEmphasis,
			Role:   chronoclip.RoleTitle,
		})
	}

	for _, text := range s.adjacentClauses(anchor) {
		candidates = append(candidates, chronoclip.Candidate{
			Text:   text,
			Origin: chronoclip.OriginNearby,
			Role:   chronoclip.RoleTitle,
		})
	}

	return candidates
}

// PageTitleCandidate returns the page-level title fallback with
// site-boilerplate suffixes stripped, or nil when the page has none.
func (s *Scanner) PageTitleCandidate(root chronoclip.Node) *chronoclip.Candidate {
	if root == nil {
		return nil
	}
	var text string
	if titles := root.Find("title"); len(titles) > 0 {
		text = chronoclip.StripTitleBoilerplate(titles[0].Text())
	}
	if text == "" {
		if headings := root.Find("h1"); len(headings) > 0 {
			text = chronoclip.StripTitleBoilerplate(headings[0].Text())
		}
	}
	if text == "" {
		return nil
	}
	return &chronoclip.Candidate{
		Text:   text,
		Origin: chronoclip.OriginPage,
		Role:   chronoclip.RoleTitle,
	}
}

// DescriptionCandidates collects description fragments: the nearest
// container's full text, then preceding and following sibling blocks
// whose length falls within the configured band. All text is normalized
// before it is considered.
func (s *Scanner) DescriptionCandidates(anchor chronoclip.Node) []chronoclip.Candidate {
	if anchor == nil {
		return nil
	}
	var candidates []chronoclip.Candidate
	seen := map[string]bool{}

	add := func(text string) {
		text = chronoclip.NormalizeText(text)
		n := utf8.RuneCountInString(text)
		if n < s.MinBlockLen || n > s.MaxBlockLen || seen[text] {
			return
		}
		seen[text] = true
		candidates = append(candidates, chronoclip.Candidate{
			Text:   text,
			Origin: chronoclip.OriginNearby,
			Role:   chronoclip.RoleDescription,
		})
	}

	container := s.nearestContainer(anchor)
	add(container.Text())

	prev := container.PrevSiblings()
	for i := 0; i < len(prev) && i < s.MaxPrevBlocks; i++ {
		add(prev[i].Text())
	}
	next := container.NextSiblings()
	for i := 0; i < len(next) && i < s.MaxNextBlocks; i++ {
		add(next[i].Text())
	}

	return candidates
}

// Location finds venue text near the anchor: marked-up venue blocks
// first, then labeled lines in the surrounding container text.
func (s *Scanner) Location(anchor chronoclip.Node) string {
	if anchor == nil {
		return ""
	}
	node := s.nearestContainer(anchor)
	for depth := 0; depth < s.MaxDepth; depth++ {
		for _, v := range node.Find(locationSelector) {
			if text := chronoclip.NormalizeText(v.Text()); text != "" {
				return truncateRunes(text, 80)
			}
		}
		if m := locationLabelRe.FindStringSubmatch(node.Text()); m != nil {
			return truncateRunes(chronoclip.NormalizeText(m[1]), 80)
		}
		parent, ok := node.Parent()
		if !ok {
			break
		}
		node = parent
	}
	return ""
}

// nearestHeading walks ancestors within MaxDepth looking for a
// heading-like node: the ancestor itself, a heading among its preceding
// siblings, or a heading inside a preceding sibling.
func (s *Scanner) nearestHeading(anchor chronoclip.Node) string {
	node := anchor
	for depth := 0; depth < s.MaxDepth; depth++ {
		if node.Is(headingSelector) {
			return chronoclip.NormalizeText(node.Text())
		}
		for _, sib := range node.PrevSiblings() {
			if sib.Is(headingSelector) {
				return chronoclip.NormalizeText(sib.Text())
			}
			if headings := sib.Find(headingSelector); len(headings) > 0 {
				// The last heading inside a preceding sibling is the
				// one closest to the anchor in document order.
				return chronoclip.NormalizeText(headings[len(headings)-1].Text())
			}
		}
		parent, ok := node.Parent()
		if !ok {
			break
		}
		node = parent
	}
	return ""
}

// emphasizedText returns emphasized fragments within the nearest block
// container.
func (s *Scanner) emphasizedText(anchor chronoclip.Node) []string {
	container := s.nearestContainer(anchor)
	var out []string
	for _, e := range container.Find(emphasisSelector) {
		if text := chronoclip.NormalizeText(e.Text()); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// adjacentClauses returns the leading clause of the nearest preceding
// and following sibling text blocks.
func (s *Scanner) adjacentClauses(anchor chronoclip.Node) []string {
	container := s.nearestContainer(anchor)
	var out []string
	for _, sibs := range [][]chronoclip.Node{container.PrevSiblings(), container.NextSiblings()} {
		for _, sib := range sibs {
			if clause := leadingClause(sib.Text()); clause != "" {
				out = append(out, clause)
				break
			}
		}
	}
	return out
}

// nearestContainer walks up from the anchor to the closest block-level
// element, stopping at the anchor itself when it already is one.
func (s *Scanner) nearestContainer(anchor chronoclip.Node) chronoclip.Node {
	node := anchor
	for depth := 0; depth < s.MaxDepth; depth++ {
		if node.Is(blockSelector) {
			return node
		}
		parent, ok := node.Parent()
		if !ok {
			return node
		}
		node = parent
	}
	return node
}

// leadingClause returns the first sentence of text, capped at 60 runes.
func leadingClause(text string) string {
	text = chronoclip.NormalizeText(text)
	if text == "" {
		return ""
	}
	for i, r := range text {
		if r == '。' || r == '.' || r == '!' || r == '?' || r == '！' || r == '？' {
			text = text[:i]
			break
		}
	}
	return truncateRunes(text, 60)
}

// truncateRunes caps text at n runes.
func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
