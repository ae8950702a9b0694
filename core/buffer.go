package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabStop is the fixed tab width used for display-column arithmetic.
const TabStop = 4

// Buffer is the single source of truth for document text. All public
// position arithmetic is in display columns: the horizontal cell offset a
// terminal would render, not a byte or rune index. Every operation is total;
// out-of-range positions clamp instead of failing.
type Buffer interface {
	// Content access
	LineCount() int          // always >= 1
	LineText(row int) string // line content without trailing newline; "" when out of range
	Lines() []string         // copy of all lines
	Text() string            // entire content joined with \n
	SetText(text string)     // replace content; strips \r

	// Display-column geometry
	DisplayWidth(row int) int           // total display width of a line
	ColumnToOffset(row, col int) int    // display column -> byte offset within the line
	OffsetToColumn(row, offset int) int // byte offset within the line -> display column
	PreviousColumn(row, col int) int    // one grapheme left, clamped to 0
	NextColumn(row, col int) int        // one grapheme right, clamped to the line width

	// Modification
	InsertChar(row, col int, ch rune)
	InsertText(row, col int, text string) // text may contain newlines
	InsertTextAtLineStart(row int, text string)
	InsertLineBreak(row, col int)
	DeleteLine(row int) // never drops below one line
	ClearLine(row int)
	DeleteGraphemeBefore(row, col int) int // returns the removed grapheme's column
	DeleteGraphemeAt(row, col int)
	MergeWithPreviousLine(row int) int // returns the previous line's original width

	// Word boundaries
	NextWordStart(row, col int) int
	PreviousWordStart(row, col int) int
	EndOfWord(row, col int) int
	FirstWordStart(row int) (int, bool)
	LastWordStart(row int) (int, bool)
	FirstWordEnd(row int) (int, bool)

	// Whole-document character ranges, for edits spanning lines
	CharIndexAt(row, col int) int
	ExtractRange(start, end int) string
	RemoveRange(start, end int)
}

// textBuffer stores the document as lines without separators.
// Invariant: len(lines) >= 1.
type textBuffer struct {
	lines []string
}

// NewBuffer creates an empty buffer holding a single empty line.
func NewBuffer() Buffer {
	return &textBuffer{lines: []string{""}}
}

// NewBufferFromString creates a buffer from existing content.
func NewBufferFromString(text string) Buffer {
	b := &textBuffer{}
	b.SetText(text)
	return b
}

func (b *textBuffer) SetText(text string) {
	text = strings.ReplaceAll(text, "\r", "")
	b.lines = strings.Split(text, "\n")
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

func (b *textBuffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

func (b *textBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *textBuffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// graphemeWidthAt returns the display width of a grapheme starting at the
// given column. Tabs advance to the next TabStop multiple; everything else
// uses its terminal cell width, minimum 1.
func graphemeWidthAt(col int, cluster string) int {
	if cluster == "\t" {
		return TabStop - col%TabStop
	}
	if w := runewidth.StringWidth(cluster); w > 1 {
		return w
	}
	return 1
}

func (b *textBuffer) DisplayWidth(row int) int {
	line := b.LineText(row)
	acc := 0
	state := -1
	for len(line) > 0 {
		cluster, rest, _, newState := uniseg.StepString(line, state)
		acc += graphemeWidthAt(acc, cluster)
		line = rest
		state = newState
	}
	return acc
}

func (b *textBuffer) ColumnToOffset(row, col int) int {
	line := b.LineText(row)
	acc := 0
	offset := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.StepString(rest, state)
		w := graphemeWidthAt(acc, cluster)
		if acc+w > col {
			return offset
		}
		acc += w
		offset += len(cluster)
		rest = next
		state = newState
	}
	return len(line)
}

func (b *textBuffer) OffsetToColumn(row, offset int) int {
	line := b.LineText(row)
	acc := 0
	pos := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.StepString(rest, state)
		if pos+len(cluster) > offset {
			break
		}
		acc += graphemeWidthAt(acc, cluster)
		pos += len(cluster)
		rest = next
		state = newState
	}
	return acc
}

func (b *textBuffer) PreviousColumn(row, col int) int {
	if col <= 0 {
		return 0
	}
	line := b.LineText(row)
	acc := 0
	prev := 0
	state := -1
	for len(line) > 0 {
		cluster, rest, _, newState := uniseg.StepString(line, state)
		if acc >= col {
			break
		}
		prev = acc
		acc += graphemeWidthAt(acc, cluster)
		line = rest
		state = newState
	}
	return prev
}

func (b *textBuffer) NextColumn(row, col int) int {
	width := b.DisplayWidth(row)
	if col >= width {
		return width
	}
	line := b.LineText(row)
	acc := 0
	state := -1
	for len(line) > 0 {
		cluster, rest, _, newState := uniseg.StepString(line, state)
		w := graphemeWidthAt(acc, cluster)
		if acc >= col {
			return min(acc+w, width)
		}
		acc += w
		line = rest
		state = newState
	}
	return width
}

// clampRow keeps a row index addressable for modification.
func (b *textBuffer) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= len(b.lines) {
		return len(b.lines) - 1
	}
	return row
}

func (b *textBuffer) InsertChar(row, col int, ch rune) {
	b.InsertText(row, col, string(ch))
}

func (b *textBuffer) InsertLineBreak(row, col int) {
	b.InsertText(row, col, "\n")
}

func (b *textBuffer) InsertText(row, col int, text string) {
	if text == "" {
		return
	}
	row = b.clampRow(row)
	line := b.lines[row]
	offset := b.ColumnToOffset(row, col)
	b.spliceLine(row, line[:offset]+text+line[offset:])
}

func (b *textBuffer) InsertTextAtLineStart(row int, text string) {
	if text == "" {
		return
	}
	row = b.clampRow(row)
	b.spliceLine(row, text+b.lines[row])
}

// spliceLine replaces line row with content, which may contain newlines.
func (b *textBuffer) spliceLine(row int, content string) {
	parts := strings.Split(content, "\n")
	if len(parts) == 1 {
		b.lines[row] = parts[0]
		return
	}
	out := make([]string, 0, len(b.lines)+len(parts)-1)
	out = append(out, b.lines[:row]...)
	out = append(out, parts...)
	out = append(out, b.lines[row+1:]...)
	b.lines = out
}

func (b *textBuffer) DeleteLine(row int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	if len(b.lines) == 1 {
		b.lines[0] = ""
		return
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
}

func (b *textBuffer) ClearLine(row int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.lines[row] = ""
}

func (b *textBuffer) DeleteGraphemeBefore(row, col int) int {
	line := b.LineText(row)
	if line == "" || col <= 0 {
		return 0
	}
	acc := 0
	prevAcc := 0
	prevOff := 0
	curOff := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.StepString(rest, state)
		if acc >= col {
			break
		}
		prevAcc = acc
		prevOff = curOff
		curOff += len(cluster)
		acc += graphemeWidthAt(prevAcc, cluster)
		rest = next
		state = newState
	}
	if prevOff < curOff && curOff <= len(line) {
		b.lines[b.clampRow(row)] = line[:prevOff] + line[curOff:]
		return prevAcc
	}
	return max(col-1, 0)
}

func (b *textBuffer) DeleteGraphemeAt(row, col int) {
	line := b.LineText(row)
	if line == "" {
		return
	}
	acc := 0
	offset := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.StepString(rest, state)
		w := graphemeWidthAt(acc, cluster)
		if acc <= col && col < acc+w {
			b.lines[b.clampRow(row)] = line[:offset] + line[offset+len(cluster):]
			return
		}
		acc += w
		offset += len(cluster)
		rest = next
		state = newState
	}
}

func (b *textBuffer) MergeWithPreviousLine(row int) int {
	if row <= 0 || row >= len(b.lines) {
		return 0
	}
	width := b.DisplayWidth(row - 1)
	b.lines[row-1] += b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return width
}

// --- Word segmentation ---

// wordSegment is one UAX#29 word-boundary segment of a line.
type wordSegment struct {
	start int // byte offset within the line
	text  string
}

func (s wordSegment) end() int { return s.start + len(s.text) }

// isWord reports whether the segment qualifies as a word for motions: it
// must contain at least one letter, digit, or underscore.
func (s wordSegment) isWord() bool {
	for _, r := range s.text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return true
		}
	}
	return false
}

func wordSegments(line string) []wordSegment {
	if line == "" {
		return nil
	}
	var segs []wordSegment
	state := -1
	pos := 0
	for len(line) > 0 {
		seg, rest, newState := uniseg.FirstWordInString(line, state)
		segs = append(segs, wordSegment{start: pos, text: seg})
		pos += len(seg)
		line = rest
		state = newState
	}
	return segs
}

func (b *textBuffer) NextWordStart(row, col int) int {
	line := b.LineText(row)
	bi := b.ColumnToOffset(row, col)
	curEnd := -1
	found := -1
	for _, seg := range wordSegments(line) {
		if curEnd < 0 && seg.start <= bi && bi < seg.end() {
			curEnd = seg.end()
			continue
		}
		if seg.start >= bi {
			if curEnd >= 0 {
				if seg.start >= curEnd && seg.isWord() {
					found = seg.start
					break
				}
			} else if seg.isWord() {
				found = seg.start
				break
			}
		}
	}
	if found < 0 {
		found = len(line)
	}
	return b.OffsetToColumn(row, found)
}

func (b *textBuffer) PreviousWordStart(row, col int) int {
	line := b.LineText(row)
	bi := b.ColumnToOffset(row, col)
	prev := 0
	for _, seg := range wordSegments(line) {
		if seg.start >= bi {
			break
		}
		if seg.isWord() {
			prev = seg.start
		}
	}
	return b.OffsetToColumn(row, prev)
}

func (b *textBuffer) EndOfWord(row, col int) int {
	line := b.LineText(row)
	bi := b.ColumnToOffset(row, col)
	target := len(line)
	for _, seg := range wordSegments(line) {
		if seg.isWord() && seg.start <= bi && bi < seg.end() {
			target = seg.end()
			break
		}
		if seg.start >= bi && seg.isWord() {
			target = seg.end()
			break
		}
	}
	return b.OffsetToColumn(row, target)
}

func (b *textBuffer) FirstWordStart(row int) (int, bool) {
	for _, seg := range wordSegments(b.LineText(row)) {
		if seg.isWord() {
			return b.OffsetToColumn(row, seg.start), true
		}
	}
	return 0, false
}

func (b *textBuffer) LastWordStart(row int) (int, bool) {
	found := -1
	for _, seg := range wordSegments(b.LineText(row)) {
		if seg.isWord() {
			found = seg.start
		}
	}
	if found < 0 {
		return 0, false
	}
	return b.OffsetToColumn(row, found), true
}

func (b *textBuffer) FirstWordEnd(row int) (int, bool) {
	for _, seg := range wordSegments(b.LineText(row)) {
		if seg.isWord() {
			return b.OffsetToColumn(row, seg.end()), true
		}
	}
	return 0, false
}

// --- Whole-document character ranges ---

func (b *textBuffer) CharIndexAt(row, col int) int {
	if row < 0 {
		return 0
	}
	idx := 0
	if row >= len(b.lines) {
		for i, line := range b.lines {
			idx += utf8.RuneCountInString(line)
			if i < len(b.lines)-1 {
				idx++
			}
		}
		return idx
	}
	for r := 0; r < row; r++ {
		idx += utf8.RuneCountInString(b.lines[r]) + 1
	}
	offset := b.ColumnToOffset(row, col)
	return idx + utf8.RuneCountInString(b.lines[row][:offset])
}

func (b *textBuffer) ExtractRange(start, end int) string {
	runes := []rune(b.Text())
	start = clampInt(start, 0, len(runes))
	end = clampInt(end, 0, len(runes))
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

func (b *textBuffer) RemoveRange(start, end int) {
	runes := []rune(b.Text())
	start = clampInt(start, 0, len(runes))
	end = clampInt(end, 0, len(runes))
	if start >= end {
		return
	}
	b.SetText(string(runes[:start]) + string(runes[end:]))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
