package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyValue_PadsToWidth(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("TOTAL:", "250.00")

	out := string(d.Bytes())
	idx := strings.Index(out, "TOTAL:")
	assert.NotEqual(t, -1, idx)

	line := out[idx:]
	end := strings.IndexByte(line, '\n')
	assert.Equal(t, 32, end, "key/value line should fill the paper width")
	assert.True(t, strings.HasSuffix(line[:end], "250.00"))
}

func TestKeyValue_WrapsWhenTooLong(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("A very long label that overflows", "9,999.00")

	out := string(d.Bytes())
	lines := strings.Split(out, "\n")
	// label line followed by a right-aligned value line
	var found bool
	for i, l := range lines {
		if strings.Contains(l, "overflows") && i+1 < len(lines) {
			next := lines[i+1]
			assert.Equal(t, 32, len(next))
			assert.True(t, strings.HasSuffix(next, "9,999.00"))
			found = true
		}
	}
	assert.True(t, found)
}

func TestItemLine_TruncatesLongNames(t *testing.T) {
	d := NewDocument(32)
	d.ItemLine("Fender American Professional II Stratocaster Electric Guitar", 1, "1,499.00", "1,499.00")

	out := strings.TrimPrefix(string(d.Bytes()), "\x1b@")
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(l), 32, "no line may exceed the paper width: %q", l)
	}
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "1 x 1,499.00")
}

func TestRule_MatchesWidth(t *testing.T) {
	d := NewDocument(32)
	d.Rule()
	assert.Contains(t, string(d.Bytes()), strings.Repeat("-", 32)+"\n")
}

func TestNewDocument_DefaultsWidth(t *testing.T) {
	d := NewDocument(0)
	assert.Equal(t, Width58mm, d.Width())
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	assert.NoError(t, p.Print([]byte{0x1B, 0x40}))
	assert.False(t, p.IsConnected())
}
