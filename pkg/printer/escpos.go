package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control sequences.
var (
	cmdInit        = []byte{0x1B, 0x40}       // ESC @ - initialize printer
	cmdAlignLeft   = []byte{0x1B, 0x61, 0x00} // ESC a 0
	cmdAlignCenter = []byte{0x1B, 0x61, 0x01} // ESC a 1
	cmdAlignRight  = []byte{0x1B, 0x61, 0x02} // ESC a 2
	cmdBoldOn      = []byte{0x1B, 0x45, 0x01} // ESC E 1
	cmdBoldOff     = []byte{0x1B, 0x45, 0x00} // ESC E 0
	cmdDoubleSize  = []byte{0x1D, 0x21, 0x11} // GS ! - double width and height
	cmdNormalSize  = []byte{0x1D, 0x21, 0x00} // GS ! - normal
	cmdCut         = []byte{0x1D, 0x56, 0x00} // GS V 0 - full cut
	cmdFeed        = []byte{0x0A}
)

// Width58mm is the character width of a 58mm thermal printer in normal font.
const Width58mm = 32

// Document builds an ESC/POS byte stream for a thermal receipt.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates a document for the given paper width in characters.
// The printer is initialized as the first command.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = Width58mm
	}
	d := &Document{width: width}
	d.buf.Write(cmdInit)
	return d
}

// Width returns the character width of the document.
func (d *Document) Width() int {
	return d.width
}

// AlignLeft sets left text alignment.
func (d *Document) AlignLeft() *Document {
	d.buf.Write(cmdAlignLeft)
	return d
}

// AlignCenter sets centered text alignment.
func (d *Document) AlignCenter() *Document {
	d.buf.Write(cmdAlignCenter)
	return d
}

// AlignRight sets right text alignment.
func (d *Document) AlignRight() *Document {
	d.buf.Write(cmdAlignRight)
	return d
}

// Bold toggles bold printing.
func (d *Document) Bold(on bool) *Document {
	if on {
		d.buf.Write(cmdBoldOn)
	} else {
		d.buf.Write(cmdBoldOff)
	}
	return d
}

// DoubleSize toggles double width and height printing.
func (d *Document) DoubleSize(on bool) *Document {
	if on {
		d.buf.Write(cmdDoubleSize)
	} else {
		d.buf.Write(cmdNormalSize)
	}
	return d
}

// Line prints text followed by a line feed.
func (d *Document) Line(text string) *Document {
	d.buf.WriteString(text)
	d.buf.Write(cmdFeed)
	return d
}

// Linef prints formatted text followed by a line feed.
func (d *Document) Linef(format string, args ...any) *Document {
	return d.Line(fmt.Sprintf(format, args...))
}

// Feed advances the paper by n blank lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.Write(cmdFeed)
	}
	return d
}

// Rule prints a full-width separator line of dashes.
func (d *Document) Rule() *Document {
	return d.Line(strings.Repeat("-", d.width))
}

// KeyValue prints a label on the left and a value flush right on the same
// line. If the pair does not fit, the value wraps to its own line.
func (d *Document) KeyValue(key, value string) *Document {
	pad := d.width - len(key) - len(value)
	if pad < 1 {
		d.Line(key)
		pad = d.width - len(value)
		if pad < 0 {
			pad = 0
		}
		return d.Line(strings.Repeat(" ", pad) + value)
	}
	return d.Line(key + strings.Repeat(" ", pad) + value)
}

// ItemLine prints a receipt item: the name on its own line, then an
// indented quantity-by-price detail with the amount flush right.
func (d *Document) ItemLine(name string, qty int, price, amount string) *Document {
	d.Line(truncate(name, d.width))
	detail := fmt.Sprintf("  %d x %s", qty, price)
	return d.KeyValue(detail, amount)
}

// Cut feeds paper and performs a full cut.
func (d *Document) Cut() *Document {
	d.Feed(4)
	d.buf.Write(cmdCut)
	return d
}

// Bytes returns the assembled ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
