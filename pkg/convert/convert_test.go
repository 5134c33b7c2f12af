package convert

import (
	"strings"
	"testing"

	"github.com/arashsheyda/vue-prop-konverter/pkg/locate"
	"github.com/arashsheyda/vue-prop-konverter/pkg/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocator(t *testing.T) *locate.Locator {
	t.Helper()
	l, err := locate.NewBuiltin()
	require.NoError(t, err)
	return l
}

func TestFirst_NoMatchReturnsInputUnchanged(t *testing.T) {
	l := testLocator(t)

	inputs := []string{
		``,
		`const x = 1`,
		`defineProps<{ msg: string }>()`,
		`defineProps({ broken`,
	}
	for _, in := range inputs {
		assert.Equal(t, in, First(l, in, Options{}), "input %q", in)
	}
}

func TestFirst_RequiredAndDefaultedEntries(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ test: { type: String, required: true }, count: { type: Number, default: 0 } })`
	out := First(l, in, Options{})

	assert.Contains(t, out, "test: string")
	assert.NotContains(t, out, "test?:")
	assert.Contains(t, out, "count?: number")
	assert.Contains(t, out, "count = 0")
	// Non-defaulted entries still appear in the destructure set.
	assert.Contains(t, out, "test,")
	assert.Contains(t, out, "defineProps<{")
	assert.NotContains(t, out, "defineProps({")
}

func TestFirst_WeirdKeyNormalized(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ 'weird-key': { type: String, default: 'test' } })`
	out := First(l, in, Options{})

	assert.Contains(t, out, "weirdKey?: string")
	assert.Contains(t, out, "weirdKey = 'test'")
	assert.NotContains(t, out, "weird-key")
}

func TestFirst_GenericAnnotationAndClosureDefault(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ values: { type: Array as PropType<number[]>, default: () => [1,2,3] } })`
	out := First(l, in, Options{})

	assert.Contains(t, out, "values?: number[]")
	assert.Contains(t, out, "values = [1, 2, 3]")
}

func TestFirst_ObjectDefaultClosureUnwrapped(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ conf: { type: Object as PropType<{ a: number, b: string }>, default: () => ({ a: 1, b: 'x' }) } })`
	out := First(l, in, Options{})

	assert.Contains(t, out, "conf?: { a: number, b: string }")
	assert.Contains(t, out, "conf = { a: 1, b: 'x' }")
	assert.NotContains(t, out, "=> (")
}

func TestFirst_MalformedEntryDropped(t *testing.T) {
	l := testLocator(t)

	in := "const props = defineProps({\n  first: String,\n  broken entry without colon\n  second: Number,\n})"
	out := First(l, in, Options{})

	assert.Contains(t, out, "first?: string")
	assert.Contains(t, out, "second?: number")
	assert.NotContains(t, out, "broken")
}

func TestFirst_SurroundingTextPreserved(t *testing.T) {
	l := testLocator(t)

	in := "<script setup>\nimport { ref } from 'vue'\n\nconst props = defineProps({ msg: String })\n\nconst x = ref(0)\n</script>\n"
	out := First(l, in, Options{})

	assert.True(t, strings.HasPrefix(out, "<script setup>\nimport { ref } from 'vue'\n\n"))
	assert.True(t, strings.HasSuffix(out, "\n\nconst x = ref(0)\n</script>\n"))
	assert.Contains(t, out, "const props = defineProps<{ msg?: string }>()")
}

func TestFirst_CommentRoundTrip(t *testing.T) {
	l := testLocator(t)

	in := "const props = defineProps({\n  // number of rows\n  count: { type: Number, default: 0 },\n})"
	out := First(l, in, Options{})

	assert.Contains(t, out, "// number of rows")
	assert.Contains(t, out, "count?: number")
}

func TestFirst_EntryCountPreserved(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ a: String, b: Number, c: Boolean, d: Date })`
	out := First(l, in, Options{})

	for _, want := range []string{"a?: string", "b?: number", "c?: boolean", "d?: Date"} {
		assert.Contains(t, out, want)
	}
}

func TestFirst_OutputBracketsBalanced(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ values: { type: Array, default: () => [1, 2] }, label: { type: String, default: 'x' } })`
	out := First(l, in, Options{})

	open := strings.Index(out, "<{")
	require.GreaterOrEqual(t, open, 0)
	assert.NotEqual(t, scan.NotFound, scan.MatchBracket(out, open+1, '{', '}'))
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
	assert.Equal(t, strings.Count(out, "("), strings.Count(out, ")"))
	assert.Equal(t, strings.Count(out, "["), strings.Count(out, "]"))
}

func TestAll_MultipleSites(t *testing.T) {
	l := testLocator(t)

	in := "defineProps({ a: String })\n// middle\nconst p = defineProps({ b: { type: Number, default: 1 } })\n"
	out := All(l, in, Options{})

	assert.Contains(t, out, "a?: string")
	assert.Contains(t, out, "b?: number")
	assert.Contains(t, out, "// middle")
	assert.NotContains(t, out, "defineProps({")
}

func TestFirst_AppliesBindingRenames(t *testing.T) {
	l := testLocator(t)

	// Once the binding is destructured, surviving accesses must follow.
	in := "const props = defineProps({ count: { type: Number, default: 0 } })\nconsole.log(props.count)\n"
	out := First(l, in, Options{})

	assert.Contains(t, out, "const { count = 0 } = defineProps<{ count?: number }>()")
	assert.Contains(t, out, "console.log(count)")
	assert.NotContains(t, out, "props.count")
}

func TestAll_AppliesBindingRenames(t *testing.T) {
	l := testLocator(t)

	in := "const props = defineProps({ count: { type: Number, default: 0 } })\nconsole.log(props.count)\n"
	out := All(l, in, Options{})

	assert.Contains(t, out, "console.log(count)")
	assert.NotContains(t, out, "props.count")
}

func TestAll_RenamesPerSiteBinding(t *testing.T) {
	l := testLocator(t)

	in := "const a = defineProps({ x: { type: Number, default: 1 } })\nuse(a.x)\nconst b = defineProps({ y: { type: String, default: 's' } })\nuse(b.y)\n"
	out := All(l, in, Options{})

	assert.Contains(t, out, "use(x)")
	assert.Contains(t, out, "use(y)")
	assert.NotContains(t, out, "a.x")
	assert.NotContains(t, out, "b.y")
}

func TestResults_EmptyOnNoMatch(t *testing.T) {
	l := testLocator(t)
	assert.Empty(t, Results(l, `const x = 1`, Options{}))
}

func TestResults_CarriesSiteAndReplacement(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ msg: String })`
	results := Results(l, in, Options{})
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 0, r.Site.Outer.Start)
	assert.Equal(t, len(in), r.Site.Outer.End)
	assert.Equal(t, "const props = defineProps<{ msg?: string }>()", r.Replacement)
	assert.Empty(t, r.Renames)
}

func TestResults_RenamesForDestructuredBinding(t *testing.T) {
	l := testLocator(t)

	in := "const props = defineProps({ count: { type: Number, default: 0 } })\nconsole.log(props.count)\nprops.countdown()\n"
	results := Results(l, in, Options{})
	require.Len(t, results, 1)

	r := results[0]
	require.Len(t, r.Renames, 1)

	rn := r.Renames[0]
	assert.Equal(t, "props.count", in[rn.Span.Start:rn.Span.End])
	assert.Equal(t, "count", rn.Replacement)
}

func TestApply_WithRenames(t *testing.T) {
	l := testLocator(t)

	in := "const props = defineProps({ count: { type: Number, default: 0 } })\nconsole.log(props.count)\n"
	results := Results(l, in, Options{})
	require.Len(t, results, 1)

	out := Apply(in, results[0], true)
	assert.Contains(t, out, "console.log(count)")
	assert.NotContains(t, out, "props.count")
}

func TestApply_WithoutRenames(t *testing.T) {
	l := testLocator(t)

	in := "const props = defineProps({ count: { type: Number, default: 0 } })\nconsole.log(props.count)\n"
	results := Results(l, in, Options{})
	require.Len(t, results, 1)

	out := Apply(in, results[0], false)
	assert.Contains(t, out, "console.log(props.count)")
}

func TestOptions_BindingNameForUnboundCall(t *testing.T) {
	l := testLocator(t)

	in := `defineProps({ msg: String })`
	out := First(l, in, Options{BindingName: "attrs"})
	assert.True(t, strings.HasPrefix(out, "const attrs = "), out)
}

func TestConvert_IdempotentOnOwnOutput(t *testing.T) {
	l := testLocator(t)

	in := `const props = defineProps({ msg: String })`
	once := First(l, in, Options{})
	twice := First(l, once, Options{})
	assert.Equal(t, once, twice)
}
