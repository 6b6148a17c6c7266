package input

import "golang.org/x/text/encoding/charmap"

// Encoding names one of the recognized source encodings. The zero value
// Plain means "raw octets, no transcoding".
type Encoding string

// Recognized encoding tags, matching spec section 6 exactly.
const (
	Plain    Encoding = "plain"
	UTF8     Encoding = "utf8"
	UTF16BE  Encoding = "utf16be"
	UTF16LE  Encoding = "utf16le"
	UTF32BE  Encoding = "utf32be"
	UTF32LE  Encoding = "utf32le"
	Latin    Encoding = "latin"
	CP437    Encoding = "cp437"
	CP850    Encoding = "cp850"
	CP858    Encoding = "cp858"
	EBCDIC   Encoding = "ebcdic"
	CP1250   Encoding = "cp1250"
	CP1251   Encoding = "cp1251"
	CP1252   Encoding = "cp1252"
	CP1253   Encoding = "cp1253"
	CP1254   Encoding = "cp1254"
	CP1255   Encoding = "cp1255"
	CP1256   Encoding = "cp1256"
	CP1257   Encoding = "cp1257"
	CP1258   Encoding = "cp1258"
	ISO8859_2  Encoding = "iso8859_2"
	ISO8859_3  Encoding = "iso8859_3"
	ISO8859_4  Encoding = "iso8859_4"
	ISO8859_5  Encoding = "iso8859_5"
	ISO8859_6  Encoding = "iso8859_6"
	ISO8859_7  Encoding = "iso8859_7"
	ISO8859_8  Encoding = "iso8859_8"
	ISO8859_9  Encoding = "iso8859_9"
	ISO8859_10 Encoding = "iso8859_10"
	ISO8859_13 Encoding = "iso8859_13"
	ISO8859_14 Encoding = "iso8859_14"
	ISO8859_15 Encoding = "iso8859_15"
	ISO8859_16 Encoding = "iso8859_16"
	MacRoman Encoding = "macroman"
	KOI8R    Encoding = "koi8_r"
	KOI8U    Encoding = "koi8_u"
	KOI8RU   Encoding = "koi8_ru"
	Custom   Encoding = "custom"
)

// CodePointTable is a caller-supplied 256-entry mapping from raw byte value
// to Unicode code point, used for the Custom encoding.
type CodePointTable [256]rune

// charmaps backs every 8-bit code-page encoding with golang.org/x/text's
// pre-built decode tables rather than hand-rolled ones — the same package
// db47h-lex (a repo in the retrieval pack) depends on for codec work.
//
// koi8_ru has no x/text table of its own; it is approximated by KOI8U (its
// superset for Cyrillic) since the two differ only in the hryvnia sign — see
// DESIGN.md.
var charmaps = map[Encoding]*charmap.Charmap{
	Latin:      charmap.ISO8859_1,
	CP437:      charmap.CodePage437,
	CP850:      charmap.CodePage850,
	CP858:      charmap.CodePage858,
	EBCDIC:     charmap.CodePage037,
	CP1250:     charmap.Windows1250,
	CP1251:     charmap.Windows1251,
	CP1252:     charmap.Windows1252,
	CP1253:     charmap.Windows1253,
	CP1254:     charmap.Windows1254,
	CP1255:     charmap.Windows1255,
	CP1256:     charmap.Windows1256,
	CP1257:     charmap.Windows1257,
	CP1258:     charmap.Windows1258,
	ISO8859_2:  charmap.ISO8859_2,
	ISO8859_3:  charmap.ISO8859_3,
	ISO8859_4:  charmap.ISO8859_4,
	ISO8859_5:  charmap.ISO8859_5,
	ISO8859_6:  charmap.ISO8859_6,
	ISO8859_7:  charmap.ISO8859_7,
	ISO8859_8:  charmap.ISO8859_8,
	ISO8859_9:  charmap.ISO8859_9,
	ISO8859_10: charmap.ISO8859_10,
	ISO8859_13: charmap.ISO8859_13,
	ISO8859_14: charmap.ISO8859_14,
	ISO8859_15: charmap.ISO8859_15,
	ISO8859_16: charmap.ISO8859_16,
	MacRoman:   charmap.Macintosh,
	KOI8R:      charmap.KOI8R,
	KOI8U:      charmap.KOI8U,
	KOI8RU:     charmap.KOI8U,
}

// tableFor returns the 256-entry decode table for enc, building it from the
// matching x/text charmap on each call. ok is false for Plain/UTF8/UTF16*/
// UTF32*/Custom, which are not table-driven.
func tableFor(enc Encoding) (CodePointTable, bool) {
	cm, ok := charmaps[enc]
	if !ok {
		return CodePointTable{}, false
	}
	var t CodePointTable
	for b := 0; b < 256; b++ {
		t[b] = cm.DecodeByte(byte(b))
	}
	return t, true
}
