package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFields_Block(t *testing.T) {
	f := ParseFields(`{ type: Number, default: 0, required: true }`)
	assert.True(t, f.Block)
	assert.Equal(t, "Number", f.Type)
	assert.Equal(t, "0", f.Default)
	assert.True(t, f.Required)
}

func TestParseFields_Shorthand(t *testing.T) {
	f := ParseFields(`Number`)
	assert.False(t, f.Block)
	assert.Empty(t, f.Type)
	assert.Empty(t, f.Default)
	assert.False(t, f.Required)
}

func TestParseFields_RequiredFalse(t *testing.T) {
	f := ParseFields(`{ type: String, required: false }`)
	assert.True(t, f.Block)
	assert.False(t, f.Required)
}

func TestType_ConstructorMap(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{`String`, "string"},
		{`Number`, "number"},
		{`Boolean`, "boolean"},
		{`Array`, "any[]"},
		{`Object`, "Record<string, any>"},
		{`Function`, "(...args: any[]) => any"},
		{`Symbol`, "symbol"},
		{`Date`, "Date"},
	}
	for _, tt := range tests {
		got := Type("", tt.value, nil)
		assert.Equal(t, tt.want, got.Expr, "value %q", tt.value)
		assert.True(t, got.Optional)
	}
}

func TestType_BlockConstructor(t *testing.T) {
	got := Type("", `{ type: Boolean }`, nil)
	assert.Equal(t, "boolean", got.Expr)
	assert.True(t, got.Optional)
}

func TestType_ConstructorListBecomesUnion(t *testing.T) {
	got := Type("", `{ type: [String, Number] }`, nil)
	assert.Equal(t, "string | number", got.Expr)

	got = Type("", `[Boolean, Date]`, nil)
	assert.Equal(t, "boolean | Date", got.Expr)
}

func TestType_GenericAnnotationWins(t *testing.T) {
	got := Type("", `{ type: Object as PropType<{ id: number }>, default: () => ({}) }`, nil)
	assert.Equal(t, "{ id: number }", got.Expr)
}

func TestType_GenericAnnotationNestedGenerics(t *testing.T) {
	got := Type("", `{ type: Array as PropType<Array<Record<string, number>>> }`, nil)
	assert.Equal(t, "Array<Record<string, number>>", got.Expr)
}

func TestType_GenericInsideStringIgnored(t *testing.T) {
	// An annotation-shaped substring in a string default is inert text.
	got := Type("'see PropType<T> docs'", `{ type: String, default: 'see PropType<T> docs' }`, nil)
	assert.Equal(t, "string", got.Expr)
}

func TestType_GenericRequiresWordBoundary(t *testing.T) {
	// "MyPropType<...>" must not be treated as the annotation wrapper.
	got := Type("", `{ type: Object as MyPropType<Foo> }`, nil)
	assert.Equal(t, "any", got.Expr)
}

func TestType_LiteralShapeFallback(t *testing.T) {
	tests := []struct {
		def  string
		want string
	}{
		{`'hello'`, "string"},
		{`"hi"`, "string"},
		{`42`, "number"},
		{`-1.5`, "number"},
		{`true`, "boolean"},
		{`false`, "boolean"},
		{`[]`, "any[]"},
		{`[1, 2]`, "any[]"},
		{`{}`, "Record<string, any>"},
		{`{ a: 1 }`, "Record<string, any>"},
		{`someIdent`, "any"},
		{``, "any"},
	}
	for _, tt := range tests {
		got := Type(tt.def, `{ default: `+tt.def+` }`, nil)
		assert.Equal(t, tt.want, got.Expr, "default %q", tt.def)
	}
}

func TestType_RequiredWithoutDefault(t *testing.T) {
	got := Type("", `{ type: String, required: true }`, nil)
	assert.False(t, got.Optional)
}

func TestType_DefaultWinsOverRequired(t *testing.T) {
	// A default makes the member optional even with required: true.
	got := Type("0", `{ type: Number, required: true, default: 0 }`, nil)
	assert.True(t, got.Optional)
}

func TestType_ShorthandAlwaysOptional(t *testing.T) {
	got := Type("", `Number`, nil)
	assert.True(t, got.Optional)
}

func TestType_Overrides(t *testing.T) {
	overrides := map[string]string{"bigint": "bigint"}
	got := Type("", `BigInt`, overrides)
	assert.Equal(t, "bigint", got.Expr)

	// Overrides may shadow builtins.
	got = Type("", `Object`, map[string]string{"object": "object"})
	assert.Equal(t, "object", got.Expr)
}

func TestType_UnknownConstructorFallsThrough(t *testing.T) {
	got := Type("", `CustomClass`, nil)
	assert.Equal(t, "any", got.Expr)
}

func TestType_UnionWithUnknownMemberFallsThrough(t *testing.T) {
	got := Type(`'x'`, `{ type: [String, CustomClass], default: 'x' }`, nil)
	assert.Equal(t, "string", got.Expr)
}
