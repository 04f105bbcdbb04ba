// Package layout provides the text primitives used to render help output: wrapping a string to a
// maximum visible width and joining two multi-line strings as side-by-side columns.
//
// Widths are counted in runes. Neither function drops characters from its input: they only insert
// line breaks, decoration and padding.
package layout

import (
	"strings"

	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/internal/util"
)

// openChars never end a line: a wrap must not separate an opening bracket or quote from what follows it
const openChars = "<'\"[{("

// Wrap splits text into lines so that every line, including prefix and suffix, is at most width runes long
// (excluding the line terminator). Each line is broken after the last delimiter in range - any character
// which is neither a letter, a digit nor an opening bracket or quote - and hard-wrapped at the boundary
// when the line holds no delimiter. Spaces following a break are skipped. Every emitted line is
// prefix + content + suffix + "\n". Line breaks already present in text are ordinary delimiters: they are
// kept verbatim and count toward the width.
//
// An error is returned when width leaves no room for content once prefix and suffix are accounted for.
func Wrap(text string, width int, prefix, suffix string) (string, error) {
	extra := util.RuneLen(prefix) + util.RuneLen(suffix)
	usable := width - extra
	if usable <= 0 {
		return "", errs.ErrWidthTooSmall.WithArgs(width, extra)
	}

	if text == "" {
		return "", nil
	}

	var (
		sb    strings.Builder
		src   = []rune(text)
		begin = 0
	)
	for len(src)-begin > usable {
		end := begin + usable - 1
		cut := lastDelimiter(src, begin, end)
		if cut < 0 {
			cut = end
		}
		writeLine(&sb, prefix, src[begin:cut+1], suffix)

		begin = skipSpaces(src, cut+1)
		if begin == len(src) {
			return sb.String(), nil
		}
	}
	writeLine(&sb, prefix, src[begin:], suffix)

	return sb.String(), nil
}

func writeLine(sb *strings.Builder, prefix string, content []rune, suffix string) {
	sb.WriteString(prefix)
	sb.WriteString(string(content))
	sb.WriteString(suffix)
	sb.WriteByte('\n')
}

// lastDelimiter returns the index of the last delimiter in src(begin, end], or -1
func lastDelimiter(src []rune, begin, end int) int {
	for i := end; i > begin; i-- {
		if isDelimiter(src[i]) {
			return i
		}
	}

	return -1
}

func isDelimiter(r rune) bool {
	return !util.IsAlphanumeric(r) && !strings.ContainsRune(openChars, r)
}

// skipSpaces returns the index of the first non-space rune at or after pos, or len(src)
func skipSpaces(src []rune, pos int) int {
	for pos < len(src) && src[pos] == ' ' {
		pos++
	}

	return pos
}

// Join merges two multi-line strings column-wise. For each line of right, the corresponding line of left
// (without its terminator) is emitted padded with spaces to indent columns - or indent spaces once left is
// exhausted - followed by the line of right including its terminator. Lines of left remaining after right
// is exhausted are appended unchanged.
func Join(left, right string, indent int) string {
	if indent < 0 {
		indent = 0
	}

	var (
		sb   strings.Builder
		lpos int
		rpos int
	)
	blank := strings.Repeat(" ", indent)

	for rpos < len(right) {
		if lpos < len(left) {
			line, next := nextLine(left, lpos)
			sb.WriteString(util.PadRight(strings.TrimSuffix(line, "\n"), indent))
			lpos = next
		} else {
			sb.WriteString(blank)
		}

		line, next := nextLine(right, rpos)
		sb.WriteString(line)
		rpos = next
	}

	if lpos < len(left) {
		sb.WriteString(left[lpos:])
	}

	return sb.String()
}

// nextLine returns the line starting at pos including its terminator, if any, and the position following it
func nextLine(s string, pos int) (string, int) {
	if i := strings.IndexByte(s[pos:], '\n'); i >= 0 {
		return s[pos : pos+i+1], pos + i + 1
	}

	return s[pos:], len(s)
}
