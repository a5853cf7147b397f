package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected Block
	}{
		{"# Title", Block{Kind: Heading, Level: 1, Text: "Title"}},
		{"## Section", Block{Kind: Heading, Level: 2, Text: "Section"}},
		{"### 1. Encapsulation", Block{Kind: Heading, Level: 3, Text: "1. Encapsulation"}},
		// heading text is never inline formatted
		{"## **not bold**", Block{Kind: Heading, Level: 2, Text: "**not bold**"}},
		{"#  two spaces", Block{Kind: Heading, Level: 1, Text: " two spaces"}},
	}
	for _, tt := range tests {
		got := Render(tt.input)
		if diff := cmp.Diff([]Block{tt.expected}, got); diff != "" {
			t.Errorf("Render(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestRenderLinePrecedence(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"####  four hashes", Paragraph},
		{"#no space", Paragraph},
		{"```python", Blank},
		{"```", Blank},
		{"   ", Blank},
		{"\t", Blank},
		{"", Blank},
		{"- item", ListItem},
		{"-item", Paragraph},
		{"  - indented", Paragraph},
		{"1. ordered lists are paragraphs", Paragraph},
		{"> quotes are paragraphs", Paragraph},
	}
	for _, tt := range tests {
		got := Render(tt.input)
		if len(got) != 1 {
			t.Fatalf("Render(%q) returned %d blocks, want 1", tt.input, len(got))
		}
		if got[0].Kind != tt.kind {
			t.Errorf("Render(%q) kind = %v, want %v", tt.input, got[0].Kind, tt.kind)
		}
	}
}

func TestRenderOneBlockPerLine(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"# A\n\nparagraph\n- item\n```go\nx := 1\n```\n",
		"no newline at all",
		"line\r\nwith carriage returns\r\n",
	}
	for _, in := range inputs {
		got := Render(in)
		want := strings.Count(in, "\n") + 1
		if len(got) != want {
			t.Errorf("Render(%q) returned %d blocks, want %d", in, len(got), want)
		}
	}
}

func TestRenderFencedCodeFallsThrough(t *testing.T) {
	input := "```python\n- not a list in python\nclass Student:\n    \n```"
	want := []Block{
		{Kind: Blank},
		{Kind: ListItem, Spans: []Span{{Kind: Text, Text: "not a list in python"}}},
		{Kind: Paragraph, Spans: []Span{{Kind: Text, Text: "class Student:"}}},
		{Kind: Blank},
		{Kind: Blank},
	}
	if diff := cmp.Diff(want, Render(input)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderListItemInline(t *testing.T) {
	got := Render("- **SELECT**: Retrieve data with `SELECT *`")
	want := []Block{{
		Kind: ListItem,
		Spans: []Span{
			{Kind: Bold, Text: "SELECT"},
			{Kind: Text, Text: ": Retrieve data with "},
			{Kind: Code, Text: "SELECT *"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected []Span
	}{
		{"**bold**", []Span{{Kind: Bold, Text: "bold"}}},
		{"text **bold** more", []Span{
			{Kind: Text, Text: "text "},
			{Kind: Bold, Text: "bold"},
			{Kind: Text, Text: " more"},
		}},
		{"**a** and **b**", []Span{
			{Kind: Bold, Text: "a"},
			{Kind: Text, Text: " and "},
			{Kind: Bold, Text: "b"},
		}},
		{"****", nil},
		{"**a****b**", []Span{
			{Kind: Bold, Text: "a"},
			{Kind: Bold, Text: "b"},
		}},
		{"**un", []Span{{Kind: Text, Text: "**un"}}},
		{"**a** **b", []Span{
			{Kind: Bold, Text: "a"},
			{Kind: Text, Text: " **b"},
		}},
		{"*single*", []Span{{Kind: Text, Text: "*single*"}}},
	}
	for _, tt := range tests {
		got := ParseInline(tt.input)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("ParseInline(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseInlineCode(t *testing.T) {
	tests := []struct {
		input    string
		expected []Span
	}{
		{"`code`", []Span{{Kind: Code, Text: "code"}}},
		{"use `fmt.Println` here", []Span{
			{Kind: Text, Text: "use "},
			{Kind: Code, Text: "fmt.Println"},
			{Kind: Text, Text: " here"},
		}},
		{"`a` and `b`", []Span{
			{Kind: Code, Text: "a"},
			{Kind: Text, Text: " and "},
			{Kind: Code, Text: "b"},
		}},
		{"odd ` tick", []Span{{Kind: Text, Text: "odd ` tick"}}},
		{"``", nil},
	}
	for _, tt := range tests {
		got := ParseInline(tt.input)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("ParseInline(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseInlineBoldAndCode(t *testing.T) {
	tests := []struct {
		input    string
		expected []Span
	}{
		{"**use `x` here**", []Span{
			{Kind: Bold, Text: "use "},
			{Kind: BoldCode, Text: "x"},
			{Kind: Bold, Text: " here"},
		}},
		{"`a **b** c`", []Span{
			{Kind: Code, Text: "a "},
			{Kind: BoldCode, Text: "b"},
			{Kind: Code, Text: " c"},
		}},
		{"`**x**`", []Span{{Kind: BoldCode, Text: "x"}}},
		{"**a `b** c`", []Span{
			{Kind: Bold, Text: "a "},
			{Kind: BoldCode, Text: "b"},
			{Kind: Code, Text: " c"},
		}},
		{"**`x`** and ` odd", []Span{
			{Kind: BoldCode, Text: "x"},
			{Kind: Text, Text: " and ` odd"},
		}},
	}
	for _, tt := range tests {
		got := ParseInline(tt.input)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("ParseInline(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
		for _, sp := range got {
			if strings.Contains(sp.Text, "`") && sp.Kind != Text {
				t.Errorf("ParseInline(%q): styled span %q kept a backtick", tt.input, sp.Text)
			}
		}
	}
}

func TestParseInlineEmpty(t *testing.T) {
	if got := ParseInline(""); len(got) != 0 {
		t.Errorf("ParseInline(\"\") = %v, want no spans", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	input := "# T\n**b** `c`\n- x\n\n```\nraw\n```"
	first := Render(input)
	second := Render(input)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Render not deterministic (-first +second):\n%s", diff)
	}
}

func TestPlainText(t *testing.T) {
	spans := ParseInline("Use **bold** and `code` here")
	if got := PlainText(spans); got != "Use bold and code here" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestKindStrings(t *testing.T) {
	if Heading.String() != "heading" || ListItem.String() != "list_item" || Blank.String() != "blank" {
		t.Errorf("unexpected Kind strings")
	}
	if Bold.String() != "bold" || Code.String() != "code" || Text.String() != "text" || BoldCode.String() != "bold_code" {
		t.Errorf("unexpected SpanKind strings")
	}
}
