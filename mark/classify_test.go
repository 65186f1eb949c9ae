package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		name    string
		rest    string
		inFence bool
		want    lineInfo
		toggled bool // fence state after, when it differs from inFence
	}{
		{name: "empty", rest: "", want: lineInfo{kind: Empty}},
		{name: "header 1", rest: "# Title",
			want: lineInfo{kind: Header, level: 1, content: "Title"}},
		{name: "header 6", rest: "###### deep",
			want: lineInfo{kind: Header, level: 6, content: "deep"}},
		{name: "seven hashes is prose", rest: "####### x",
			want: lineInfo{kind: Paragraph, content: "####### x"}},
		{name: "hash without space is prose", rest: "#x",
			want: lineInfo{kind: Paragraph, content: "#x"}},
		{name: "dash item", rest: "- a",
			want: lineInfo{kind: ListItem, content: "a"}},
		{name: "star item", rest: "* a",
			want: lineInfo{kind: ListItem, content: "a"}},
		{name: "plus item", rest: "+ a",
			want: lineInfo{kind: ListItem, content: "a"}},
		{name: "ordered item", rest: "12. a",
			want: lineInfo{kind: ListItem, ordered: true, content: "a"}},
		{name: "ordinal without space is prose", rest: "12.a",
			want: lineInfo{kind: Paragraph, content: "12.a"}},
		{name: "list precedence beats ruler", rest: "* * *",
			want: lineInfo{kind: ListItem, content: "* *"}},
		{name: "fence opens", rest: "```js",
			want: lineInfo{kind: CodeBlock}, toggled: true},
		{name: "fence closes", rest: "```", inFence: true,
			want: lineInfo{kind: CodeBlock}, toggled: true},
		{name: "fence interior", rest: "# not a header", inFence: true,
			want: lineInfo{kind: Paragraph, fenced: true, content: "# not a header"}},
		{name: "fence interior blank stays empty", rest: "", inFence: true,
			want: lineInfo{kind: Empty}},
		{name: "quote", rest: "> words",
			want: lineInfo{kind: Quote, content: "words"}},
		{name: "bare marker is prose", rest: ">",
			want: lineInfo{kind: Paragraph, content: ">"}},
		{name: "dash rule", rest: "---", want: lineInfo{kind: HorizontalRule}},
		{name: "long rule", rest: "*****", want: lineInfo{kind: HorizontalRule}},
		{name: "underscore rule", rest: "___", want: lineInfo{kind: HorizontalRule}},
		{name: "two dashes is prose", rest: "--",
			want: lineInfo{kind: Paragraph, content: "--"}},
		{name: "mixed rule bytes is prose", rest: "-*-",
			want: lineInfo{kind: Paragraph, content: "-*-"}},
		{name: "table row", rest: "| a | b |",
			want: lineInfo{kind: Table, content: "| a | b |"}},
		{name: "tiny table row", rest: "|x|",
			want: lineInfo{kind: Table, content: "|x|"}},
		{name: "lone pipe is prose", rest: "|",
			want: lineInfo{kind: Paragraph, content: "|"}},
		{name: "prose", rest: "words",
			want: lineInfo{kind: Paragraph, content: "words"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fence := tc.inFence
			got := classify(tc.rest, &fence)
			assert.Equal(t, tc.want, got)
			if tc.toggled {
				assert.NotEqual(t, tc.inFence, fence, "fence state should toggle")
			} else {
				assert.Equal(t, tc.inFence, fence, "fence state should hold")
			}
		})
	}
}
