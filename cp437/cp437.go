// Package cp437 maps IBM code page 437, the classic 256-symbol PC font,
// to Unicode and back. Control slots 0x01-0x1F use the graphic glyphs
// (smileys, card suits, arrows) rather than C0 controls, which is the
// variant tile and roguelike fonts are drawn against.
package cp437

// Table maps every CP437 byte value to its Unicode equivalent.
// 0x00 renders as a blank cell and 0xFF is the non-breaking blank.
var Table = [256]rune{
	// 0x00-0x0F
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	// 0x10-0x1F
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
	// 0x20-0x2F
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	// 0x30-0x3F
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	// 0x40-0x4F
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	// 0x50-0x5F
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	// 0x60-0x6F
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	// 0x70-0x7F
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '⌂',
	// 0x80-0x8F
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', 'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	// 0x90-0x9F
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', 'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	// 0xA0-0xAF
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º', '¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	// 0xB0-0xBF
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖', '╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	// 0xC0-0xCF
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', '╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	// 0xD0-0xDF
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', '╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	// 0xE0-0xEF
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ', 'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	// 0xF0-0xFF
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈', '°', '∙', '·', '√', 'ⁿ', '²', '■', ' ',
}

var reverse map[rune]byte

func init() {
	reverse = make(map[rune]byte, 256)
	for i, r := range Table {
		if _, ok := reverse[r]; !ok {
			reverse[r] = byte(i)
		}
	}
	// Both 0x00 and 0x20 render as a blank; the encoder picks ASCII space.
	reverse[' '] = 0x20
}

// Rune returns the Unicode glyph for a CP437 byte.
func Rune(b byte) rune {
	return Table[b]
}

// Byte returns the CP437 byte for a Unicode glyph, reporting false when the
// rune has no slot in the code page.
func Byte(r rune) (byte, bool) {
	b, ok := reverse[r]
	return b, ok
}

// Decode converts raw CP437 bytes to a Unicode string.
func Decode(data []byte) string {
	out := make([]rune, len(data))
	for i, b := range data {
		out[i] = Table[b]
	}
	return string(out)
}

// Encode converts a Unicode string to CP437 bytes. Runes outside the code
// page map to fallback.
func Encode(s string, fallback byte) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := reverse[r]
		if !ok {
			b = fallback
		}
		out = append(out, b)
	}
	return out
}
