package scan

import (
	"unicode/utf8"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

// blockSelector matches the leaf-level elements whose text is scanned.
// Container elements (div, section) are left out so nested text is not
// visited twice.
const blockSelector = "p, li, td, th, dt, dd, h1, h2, h3, h4, h5, h6, figcaption, blockquote, time"

// block is one candidate text unit of a document scan.
type block struct {
	node chronoclip.Node
	text string
}

// enumerateBlocks collects the document's text blocks in document
// order, normalized and filtered by minimum length.
func enumerateBlocks(root chronoclip.Node, minLen int) []block {
	var out []block
	for _, node := range root.Find(blockSelector) {
		text := chronoclip.NormalizeText(node.Text())
		if utf8.RuneCountInString(text) < minLen {
			continue
		}
		out = append(out, block{node: node, text: text})
	}
	return out
}
