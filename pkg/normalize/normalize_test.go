package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_ScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "0", Default("0"))
	assert.Equal(t, "'hello'", Default("'hello'"))
	assert.Equal(t, "true", Default("true"))
	assert.Equal(t, "someIdent", Default("someIdent"))
	assert.Equal(t, "", Default("   "))
}

func TestDefault_ArrowExpressionBody(t *testing.T) {
	assert.Equal(t, "[]", Default("() => []"))
	assert.Equal(t, "[1, 2]", Default("() => [1, 2]"))
	assert.Equal(t, "0", Default("() => 0"))
}

func TestDefault_ArrowBlockBody(t *testing.T) {
	assert.Equal(t, "[]", Default("() => { return [] }"))
	assert.Equal(t, "'x'", Default("() => { return 'x'; }"))
}

func TestDefault_ArrowParenthesizedObject(t *testing.T) {
	assert.Equal(t, "{}", Default("() => ({})"))
	assert.Equal(t, "{ a: 1 }", Default("() => ({ a: 1 })"))
}

func TestDefault_FunctionExpression(t *testing.T) {
	assert.Equal(t, "[]", Default("function () { return [] }"))
	assert.Equal(t, "{ a: 1 }", Default("function() { return { a: 1 }; }"))
}

func TestDefault_ClosureWithArgsUntouched(t *testing.T) {
	// Only no-argument closures unwrap.
	assert.Equal(t, "(x) => x", Default("(x) => x"))
}

func TestDefault_ClosureWithStatementsUntouched(t *testing.T) {
	in := "() => { const a = 1; return a }"
	assert.Equal(t, in, Default(in))
}

func TestDefault_CanonicalArrayRendering(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", Default("[1,2,3]"))
	assert.Equal(t, "['a', 'b']", Default(`["a","b"]`))
	assert.Equal(t, "[[1], [2]]", Default("[ [1] , [2] ]"))
}

func TestDefault_DenseIntegerKeyedObjectBecomesArray(t *testing.T) {
	assert.Equal(t, "['a', 'b']", Default(`{ 0: 'a', 1: 'b' }`))
	assert.Equal(t, "['b', 'a']", Default(`{ 1: 'a', 0: 'b' }`))
	assert.Equal(t, "[1, 2, 3]", Default(`{ '0': 1, '1': 2, '2': 3 }`))
}

func TestDefault_SparseObjectStaysObject(t *testing.T) {
	assert.Equal(t, "{ 0: 'a', 2: 'b' }", Default("{ 0: 'a', 2: 'b' }"))
}

func TestDefault_PlainObjectStaysTextual(t *testing.T) {
	in := "{ name: 'x', nested: { deep: true } }"
	assert.Equal(t, in, Default(in))
}

func TestDefault_NonLiteralUntouched(t *testing.T) {
	assert.Equal(t, "[a, b]", Default("[a, b]"))
	assert.Equal(t, "fn()", Default("fn()"))
	assert.Equal(t, "1 + 2", Default("1 + 2"))
}

func TestDefault_ClosureThenCanonicalize(t *testing.T) {
	assert.Equal(t, "[1, 2]", Default("() => { return [1,2]; }"))
	assert.Equal(t, "['a']", Default(`function () { return { 0: 'a' } }`))
}

func TestParseLiteral_RejectsExecutables(t *testing.T) {
	cases := []string{"fn()", "a", "1 + 2", "[fn()]", "{ a: call() }", "new Date()"}
	for _, c := range cases {
		_, ok := parseLiteral(c)
		assert.False(t, ok, "input %q", c)
	}
}

func TestParseLiteral_AcceptsPureLiterals(t *testing.T) {
	cases := []string{"1", "-2.5", "'s'", "true", "null", "[]", "[1, 'a', [true]]", "{ a: 1, 'b c': 2 }"}
	for _, c := range cases {
		_, ok := parseLiteral(c)
		assert.True(t, ok, "input %q", c)
	}
}

func TestRender_EscapesSingleQuotes(t *testing.T) {
	v, ok := parseLiteral(`"it's"`)
	assert.True(t, ok)
	assert.Equal(t, `'it\'s'`, render(v))
}

func TestDenseArray_RejectsPaddedKeys(t *testing.T) {
	v, ok := parseLiteral(`{ 0: 'a', 01: 'b' }`)
	if !ok {
		// "01" may not even parse as a key form; either way no array.
		return
	}
	_, dense := denseArray(v)
	assert.False(t, dense)
}
