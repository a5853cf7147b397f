// Package markdown turns post content into typed blocks, one block per input line.
//
// Only a small line-oriented subset is recognized: three heading levels, list items,
// blank lines, fence markers (collapsed to spacing) and two inline styles, **bold**
// and `code`. Everything else is a paragraph. Inline formatting is returned as spans
// rather than markup so each output target escapes text for its own medium.
package markdown

import (
	"regexp"
	"slices"
	"strings"
)

// Kind identifies the type of a Block.
type Kind int

const (
	Blank Kind = iota
	Heading
	Paragraph
	ListItem
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Paragraph:
		return "paragraph"
	case ListItem:
		return "list_item"
	default:
		return "blank"
	}
}

// MarshalText lets blocks serialize with readable kinds in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SpanKind identifies the style of an inline Span.
type SpanKind int

const (
	Text SpanKind = iota
	Bold
	Code
	// BoldCode is code inside a bold run.
	BoldCode
)

func (k SpanKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Code:
		return "code"
	case BoldCode:
		return "bold_code"
	default:
		return "text"
	}
}

// MarshalText lets spans serialize with readable kinds in JSON.
func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Span is a run of raw, unescaped text with one inline style.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
}

// Block is the rendered form of exactly one input line.
//
// Heading blocks carry Level and Text. Paragraph and ListItem blocks carry Spans.
// Blank blocks carry nothing.
type Block struct {
	Kind  Kind   `json:"kind"`
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`
	Spans []Span `json:"spans,omitempty"`
}

const fence = "```"

var (
	reBold       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reInlineCode = regexp.MustCompile("`(.*?)`")
)

// Render splits content on "\n" and returns one Block per line, in order.
func Render(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, renderLine(line))
	}
	return blocks
}

func renderLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Block{Kind: Heading, Level: 3, Text: line[4:]}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: Heading, Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "# "):
		return Block{Kind: Heading, Level: 1, Text: line[2:]}
	case strings.HasPrefix(line, fence):
		// Fence lines only add spacing; the lines between them are not treated as code.
		return Block{Kind: Blank}
	case strings.TrimSpace(line) == "":
		return Block{Kind: Blank}
	case strings.HasPrefix(line, "- "):
		return Block{Kind: ListItem, Spans: ParseInline(line[2:])}
	default:
		return Block{Kind: Paragraph, Spans: ParseInline(line)}
	}
}

// ParseInline splits s into styled spans.
//
// Bold pairs are matched first, non-greedy and left to right. Code pairs are then
// matched over the whole line with the bold delimiters removed, so a code pair may
// sit inside a bold run or enclose one. Text covered by both gets BoldCode.
// Unpaired delimiters stay literal. Empty pairs consume their delimiters and yield
// no span.
func ParseInline(s string) []Span {
	var (
		b    strings.Builder
		bold [][2]int
	)
	last := 0
	for _, m := range reBold.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(s[last:m[0]])
		start := b.Len()
		b.WriteString(s[m[2]:m[3]])
		bold = append(bold, [2]int{start, b.Len()})
		last = m[1]
	}
	b.WriteString(s[last:])
	text := b.String()
	code := reInlineCode.FindAllStringSubmatchIndex(text, -1)

	cuts := []int{0, len(text)}
	for _, r := range bold {
		cuts = append(cuts, r[0], r[1])
	}
	for _, m := range code {
		cuts = append(cuts, m[0], m[2], m[3], m[1])
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var spans []Span
	for i := 0; i+1 < len(cuts); i++ {
		from, to := cuts[i], cuts[i+1]
		inBold, inCode, delim := false, false, false
		for _, r := range bold {
			if r[0] <= from && to <= r[1] {
				inBold = true
			}
		}
		for _, m := range code {
			switch {
			case from == m[0] && to == m[2], from == m[3] && to == m[1]:
				delim = true
			case m[2] <= from && to <= m[3]:
				inCode = true
			}
		}
		if delim {
			continue
		}
		kind := Text
		switch {
		case inBold && inCode:
			kind = BoldCode
		case inBold:
			kind = Bold
		case inCode:
			kind = Code
		}
		// Adjacent pairs of the same style stay separate spans.
		spans = append(spans, Span{Kind: kind, Text: text[from:to]})
	}
	return spans
}

// PlainText concatenates the text of spans, dropping styling.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
