package input

// BOM byte sequences recognized at the start of a file-like source, longest
// match first where prefixes overlap (UTF-32LE's FF FE 00 00 vs UTF-16LE's
// FF FE).
var bomTable = []struct {
	bytes []byte
	enc   Encoding
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
	{[]byte{0xFF, 0xFE}, UTF16LE},
}

// sniffBOM inspects up to 4 bytes already read into peek and reports the
// encoding they imply and how many of those bytes are the BOM itself (to be
// consumed, not fed to the decoder). If no entry matches, consumed is 0 and
// the caller should push every peeked byte back.
func sniffBOM(peek []byte) (enc Encoding, consumed int, matched bool) {
	for _, b := range bomTable {
		if len(peek) >= len(b.bytes) && bytesEqual(peek[:len(b.bytes)], b.bytes) {
			return b.enc, len(b.bytes), true
		}
	}
	return Plain, 0, false
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
