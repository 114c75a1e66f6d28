package scan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Scanner:
// - Tag open/close events in source order
// - Self-closing detection, including braces with arrow functions
// - className value shapes: quoted, braced-quoted, template, cn()/clsx()
// - Standalone cn()/clsx()/cva() calls outside tags
// - Comments (line and block) reach listeners with line numbers
// - String literals never produce false matches
// - Line numbers are 1-based and byte accurate
// - Malformed input terminates without events for the broken construct

// recordingListener captures every event as a formatted string.
type recordingListener struct {
	NoOpListener
	events []string
}

func (r *recordingListener) TagOpen(name string, selfClosing bool, rawTag string) {
	suffix := ""
	if selfClosing {
		suffix = "/"
	}
	r.events = append(r.events, "OPEN:"+name+suffix)
}

func (r *recordingListener) TagClose(name string) {
	r.events = append(r.events, "CLOSE:"+name)
}

func (r *recordingListener) Comment(content string, line int) {
	r.events = append(r.events, fmt.Sprintf("COMMENT:L%d:%s", line, content))
}

func (r *recordingListener) ClassAttribute(value string, line int, rawTag string) {
	r.events = append(r.events, fmt.Sprintf("CLASS:L%d:%s", line, value))
}

func (r *recordingListener) classEvents() []string {
	var out []string
	for _, e := range r.events {
		if len(e) >= 6 && e[:6] == "CLASS:" {
			out = append(out, e)
		}
	}
	return out
}

func scanRecorded(t *testing.T, source string) *recordingListener {
	t.Helper()
	r := &recordingListener{}
	Scan(source, r)
	return r
}

func TestScan_SimpleTagPair(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "<div>hello</div>")
	assert.Equal(t, []string{"OPEN:div", "CLOSE:div"}, r.events)
}

func TestScan_SelfClosingTag(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "<br />")
	assert.Equal(t, []string{"OPEN:br/"}, r.events)
}

func TestScan_NestedTags(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "<Card><div>x</div></Card>")
	assert.Equal(t, []string{"OPEN:Card", "OPEN:div", "CLOSE:div", "CLOSE:Card"}, r.events)
}

func TestScan_ClassNameStatic(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `<div className="bg-red-500 text-white">x</div>`)
	assert.Contains(t, r.events, "CLASS:L1:bg-red-500 text-white")
}

func TestScan_ClassNameBracedSingleQuoted(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `<div className={'bg-red-500 text-white'}>x</div>`)
	assert.Contains(t, r.events, "CLASS:L1:bg-red-500 text-white")
}

func TestScan_ClassNameTemplateLiteral(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "<div className={`bg-red-500 ${expr} text-white`}>x</div>")
	classes := r.classEvents()
	require.Len(t, classes, 1)
	assert.Contains(t, classes[0], "bg-red-500")
	assert.Contains(t, classes[0], "text-white")
	assert.NotContains(t, classes[0], "expr")
}

func TestScan_ClassNameCnCall(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `<div className={cn("bg-red-500", "text-white")}>x</div>`)
	classes := r.classEvents()
	require.Len(t, classes, 1)
	assert.Contains(t, classes[0], "bg-red-500")
}

func TestScan_ClassNameClsxCall(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `<div className={clsx("bg-red-500", "text-white")}>x</div>`)
	require.Len(t, r.classEvents(), 1)
	assert.Contains(t, r.classEvents()[0], "bg-red-500")
}

func TestScan_StandaloneCnCall(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `const cls = cn("bg-red-500", "text-white");`)
	require.Len(t, r.classEvents(), 1)
}

func TestScan_StandaloneCvaCall(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `const v = cva("bg-primary text-primary-foreground");`)
	require.Len(t, r.classEvents(), 1)
}

func TestScan_StandaloneCallIdentifierBoundary(t *testing.T) {
	t.Parallel()

	// fancn( is not a cn( call: the character before is an identifier char.
	r := scanRecorded(t, `const cls = fancn("bg-red-500");`)
	assert.Empty(t, r.classEvents())
}

func TestScan_LineComment(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "// @a11y-context bg:#09090b\n<div />")
	require.NotEmpty(t, r.events)
	assert.Contains(t, r.events[0], "COMMENT:L1:")
	assert.Contains(t, r.events[0], "@a11y-context")
}

func TestScan_BlockComment(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "{/* @a11y-context-block bg:bg-slate-900 */}\n<div />")
	found := false
	for _, e := range r.events {
		if len(e) > 8 && e[:8] == "COMMENT:" {
			assert.Contains(t, e, "@a11y-context-block")
			found = true
		}
	}
	assert.True(t, found)
}

func TestScan_MultipleClassesInFile(t *testing.T) {
	t.Parallel()

	source := "<div className=\"bg-red\">\n  <span className=\"text-white\">hi</span>\n</div>"
	r := scanRecorded(t, source)
	assert.Len(t, r.classEvents(), 2)
}

func TestScan_LineNumbersTracked(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "line1\n<div className=\"bg-red\">\nx\n</div>")
	classes := r.classEvents()
	require.Len(t, classes, 1)
	assert.Contains(t, classes[0], "CLASS:L2:")
}

func TestScan_NoFalseMatchInString(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `const s = "className=\"bg-red\""; <div>x</div>`)
	assert.Empty(t, r.classEvents())
}

func TestScan_ComponentWithClass(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `<Card className="bg-card text-card-foreground">content</Card>`)
	assert.Contains(t, r.events, "OPEN:Card")
	assert.Contains(t, r.events, "CLASS:L1:bg-card text-card-foreground")
	assert.Contains(t, r.events, "CLOSE:Card")
}

func TestScan_EmptySource(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "")
	assert.Empty(t, r.events)
}

func TestScan_UnterminatedTagNoPanic(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, `<div className="bg-red-500`)
	// The unterminated string swallows the rest; scan must simply terminate.
	assert.NotNil(t, r)
}

func TestScan_UnterminatedBlockCommentNoPanic(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "/* never closed")
	require.Len(t, r.events, 1)
	assert.Contains(t, r.events[0], "never closed")
}

func TestScan_TagNameWithDotAndDash(t *testing.T) {
	t.Parallel()

	r := scanRecorded(t, "<motion.div>x</motion.div><my-element />")
	assert.Contains(t, r.events, "OPEN:motion.div")
	assert.Contains(t, r.events, "CLOSE:motion.div")
	assert.Contains(t, r.events, "OPEN:my-element/")
}

func TestBuildLineOffsets(t *testing.T) {
	t.Parallel()

	offsets := buildLineOffsets("abc\ndef\nghi")
	assert.Equal(t, []int{0, 4, 8}, offsets)
	assert.Equal(t, 1, lineAt(offsets, 0))
	assert.Equal(t, 1, lineAt(offsets, 2))
	assert.Equal(t, 2, lineAt(offsets, 4))
	assert.Equal(t, 2, lineAt(offsets, 5))
	assert.Equal(t, 3, lineAt(offsets, 8))
}

func TestIsSelfClosing(t *testing.T) {
	t.Parallel()

	assert.True(t, isSelfClosing("<br />", 3))
	assert.False(t, isSelfClosing("<div>", 4))
	assert.True(t, isSelfClosing(`<input type="text" />`, 6))
	assert.False(t, isSelfClosing(`<div className="test">`, 4))
	// Braced arrow function body must not terminate the tag early.
	assert.True(t, isSelfClosing(`<Comp onClick={() => {}} />`, 5))
}

func TestFindTagClose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, findTagClose("<div>", 4))
	assert.Equal(t, 6, findTagClose("<br />", 3))
	// Unterminated tag extends to end of input.
	assert.Equal(t, len("<div className="), findTagClose("<div className=", 4))
}

func TestExtractBalancedParens(t *testing.T) {
	t.Parallel()

	content, end, ok := extractBalancedParens(`("bg-red", "text-white")`, 0)
	require.True(t, ok)
	assert.Equal(t, `"bg-red", "text-white"`, content)
	assert.Equal(t, 23, end)

	content, _, ok = extractBalancedParens("(a, fn(b, c))", 0)
	require.True(t, ok)
	assert.Equal(t, "a, fn(b, c)", content)

	_, _, ok = extractBalancedParens("(never closed", 0)
	assert.False(t, ok)
}

func TestStripTemplateExpressions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bg-red-500   text-white", stripTemplateExpressions("bg-red-500 ${expr} text-white"))
	assert.Equal(t, "prefix   suffix", stripTemplateExpressions("prefix ${a ? `${b}` : c} suffix"))
	assert.Equal(t, "plain", stripTemplateExpressions("plain"))
}

func TestScan_MultipleListenersFanOut(t *testing.T) {
	t.Parallel()

	a := &recordingListener{}
	b := &recordingListener{}
	Scan(`<div className="bg-red">x</div>`, a, b)
	assert.Equal(t, a.events, b.events)
	assert.NotEmpty(t, a.events)
}
