package lines

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) []string {
	t.Helper()
	seq := NewSequence(strings.NewReader(input))
	var got []string
	for seq.Next() {
		got = append(got, seq.Text())
	}
	require.NoError(t, seq.Err())
	return got
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two names", "Jane Doe\nBob Smith\n", []string{"Jane Doe", "Bob Smith"}},
		{"no trailing newline", "Jane Doe\nBob Smith", []string{"Jane Doe", "Bob Smith"}},
		{"empty input", "", nil},
		{"single newline is one empty line", "\n", []string{""}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"only one terminator stripped", "a\n\n", []string{"a", ""}},
		{"crlf", "Jane Doe\r\nBob Smith\r\n", []string{"Jane Doe", "Bob Smith"}},
		{"trailing spaces preserved", "  Jane Doe  \n", []string{"  Jane Doe  "}},
		{"tabs preserved", "\tJane\t\n", []string{"\tJane\t"}},
		{"lone cr at end of file", "Jane\r", []string{"Jane"}},
		{"cr inside line kept", "Ja\rne\n", []string{"Ja\rne"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(t, tt.input))
		})
	}
}

func TestSequence_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	got := collect(t, long+"\nshort\n")
	require.Len(t, got, 2)
	assert.Equal(t, long, got[0])
	assert.Equal(t, "short", got[1])
}

func TestSequence_Numbers(t *testing.T) {
	seq := NewSequence(strings.NewReader("a\nb\nc"))
	var nums []int
	for seq.Next() {
		nums = append(nums, seq.Number())
	}
	assert.Equal(t, []int{1, 2, 3}, nums)
}

func TestSequence_NotRestartable(t *testing.T) {
	seq := NewSequence(strings.NewReader("a\n"))
	require.True(t, seq.Next())
	require.False(t, seq.Next())
	require.False(t, seq.Next())
	assert.Equal(t, 1, seq.Number())
}

func TestSequence_Lazy(t *testing.T) {
	r := &countingReader{r: iotest.OneByteReader(strings.NewReader("a\nb\nc\n"))}
	seq := NewSequence(r)

	require.True(t, seq.Next())
	assert.Equal(t, "a", seq.Text())
	assert.Less(t, r.n, 6, "first line should not consume the whole input")
}

func TestSequence_ReadError(t *testing.T) {
	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("Jane Doe\nBob"), iotest.ErrReader(boom))
	seq := NewSequence(r)

	require.True(t, seq.Next())
	assert.Equal(t, "Jane Doe", seq.Text())
	require.False(t, seq.Next())
	assert.ErrorIs(t, seq.Err(), boom)
	require.False(t, seq.Next())
}

func TestChomp(t *testing.T) {
	assert.Equal(t, "a", Chomp("a\r\n"))
	assert.Equal(t, "a\r", Chomp("a\r\r\n"))
	assert.Equal(t, "a\n", Chomp("a\n\n"))
	assert.Equal(t, "a", Chomp("a\r"))
	assert.Equal(t, "a ", Chomp("a "))
	assert.Equal(t, "", Chomp(""))
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
