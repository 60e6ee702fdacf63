package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestParseResultEnvelope(t *testing.T) {
	convey.Convey("ParseResult is a strict sum of (root) or (error), never both", t, func() {
		ok := Parse("a = 1\n")
		convey.So(ok.Ok(), convey.ShouldBeTrue)
		convey.So(ok.Err(), convey.ShouldBeFalse)
		convey.So(ok.Error(), convey.ShouldBeNil)
		convey.So(ok.Table(), convey.ShouldNotBeNil)
		convey.So(ok.View().IsNull(), convey.ShouldBeFalse)

		bad := Parse("a = \n")
		convey.So(bad.Ok(), convey.ShouldBeFalse)
		convey.So(bad.Err(), convey.ShouldBeTrue)
		convey.So(bad.Table(), convey.ShouldBeNil)
		convey.So(bad.Error(), convey.ShouldNotBeNil)
		convey.So(bad.View().IsNull(), convey.ShouldBeTrue)
	})
}

func TestParseFileReportsIOError(t *testing.T) {
	convey.Convey("ParseFile surfaces a missing file as an IOError-kind ParseError", t, func() {
		result := ParseFile("/nonexistent/path/does-not-exist.toml")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, IOError)
	})
}

func TestTrailingGarbageAfterValueIsError(t *testing.T) {
	convey.Convey("anything but whitespace/comment after a value is a structural error", t, func() {
		result := Parse("a = 1 garbage\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, StructuralError)
	})
}

func TestCommentAfterValueIsFine(t *testing.T) {
	convey.Convey("a trailing comment after a value is permitted", t, func() {
		result := Parse("a = 1 # comment\n")
		convey.So(result.Ok(), convey.ShouldBeTrue)
		v, _ := Value[int64](result.View().At("a"))
		convey.So(v, convey.ShouldEqual, 1)
	})
}

func TestBlankAndCommentLinesAreSkipped(t *testing.T) {
	convey.Convey("blank lines and whole-line comments between entries are ignored", t, func() {
		src := "\n# leading comment\na = 1\n\n# trailing\nb = 2\n"
		result := Parse(src)
		convey.So(result.Ok(), convey.ShouldBeTrue)
		a, _ := Value[int64](result.View().At("a"))
		b, _ := Value[int64](result.View().At("b"))
		convey.So(a, convey.ShouldEqual, 1)
		convey.So(b, convey.ShouldEqual, 2)
	})
}

func TestDottedKeyThroughInlineTableIsError(t *testing.T) {
	convey.Convey("a dotted key/value path cannot traverse into an inline table", t, func() {
		result := Parse("a = {x = 1}\na.y = 2\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, StructuralError)
	})
}

func TestDottedKeyThroughScalarIsError(t *testing.T) {
	convey.Convey("a dotted key/value path cannot traverse through a scalar", t, func() {
		result := Parse("a = 1\na.b = 2\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, StructuralError)
	})
}

func TestTableArrayCannotAppendAfterInlineElement(t *testing.T) {
	convey.Convey("appending to a table-array whose elements include an inline table is an error", t, func() {
		result := Parse("arr = [{x = 1}]\n[[arr]]\ny = 2\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, StructuralError)
	})
}

func TestUnterminatedArrayIsLexicalError(t *testing.T) {
	convey.Convey("an array missing its closing bracket is a lexical error", t, func() {
		result := Parse("a = [1, 2\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, LexicalError)
	})
}

func TestNewlineInsideInlineTableIsRejected(t *testing.T) {
	convey.Convey("TOML 1.0 forbids a newline inside an inline table literal", t, func() {
		result := Parse("a = {x = 1,\ny = 2}\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
	})
}

func TestLeadingZeroIntegerIsLexicalError(t *testing.T) {
	convey.Convey("a leading zero on an integer (other than a bare 0) is rejected", t, func() {
		result := Parse("a = 007\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, LexicalError)
	})
}

func TestUnicodeEscapeRejectsSurrogate(t *testing.T) {
	convey.Convey("a \\u escape naming a surrogate code point is rejected", t, func() {
		result := Parse(`a = "\uD800"` + "\n")
		convey.So(result.Ok(), convey.ShouldBeFalse)
		convey.So(result.Error().Kind, convey.ShouldEqual, LexicalError)
	})
}

func TestLiteralStringHasNoEscapes(t *testing.T) {
	convey.Convey("single-quoted strings carry backslashes through literally", t, func() {
		result := Parse(`a = 'C:\Users\nobody'` + "\n")
		convey.So(result.Ok(), convey.ShouldBeTrue)
		s, _ := Value[string](result.View().At("a"))
		convey.So(s, convey.ShouldEqual, `C:\Users\nobody`)
	})
}

func TestOffsetDateTimeAndLocalVariants(t *testing.T) {
	convey.Convey("all four date-time forms are recognized by their lexical shape", t, func() {
		src := `
odt = 1979-05-27T07:32:00Z
odt2 = 1979-05-27T07:32:00-07:00
ldt = 1979-05-27T07:32:00
ld = 1979-05-27
lt = 07:32:00
`
		result := Parse(src)
		convey.So(result.Ok(), convey.ShouldBeTrue)
		v := result.View()
		convey.So(v.At("odt").IsOffsetDateTime(), convey.ShouldBeTrue)
		convey.So(v.At("odt2").IsOffsetDateTime(), convey.ShouldBeTrue)
		convey.So(v.At("ldt").IsLocalDateTime(), convey.ShouldBeTrue)
		convey.So(v.At("ld").IsLocalDate(), convey.ShouldBeTrue)
		convey.So(v.At("lt").IsLocalTime(), convey.ShouldBeTrue)
	})
}

func TestInlineTableBasic(t *testing.T) {
	convey.Convey("an inline table parses its key/value pairs and freezes itself", t, func() {
		result := Parse(`owner = { name = "Tom", dob = 1979-05-27T07:32:00Z }` + "\n")
		convey.So(result.Ok(), convey.ShouldBeTrue)

		v := result.View().At("owner")
		convey.So(v.IsTable(), convey.ShouldBeTrue)
		name, _ := Value[string](v.At("name"))
		convey.So(name, convey.ShouldEqual, "Tom")

		tbl := v.Node().(*Table)
		convey.So(tbl.Inline(), convey.ShouldBeTrue)
	})
}
