package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadTable is wrapped by ParseFrequencyTable on malformed input.
var ErrBadTable = errors.New("malformed frequency table")

// FrequencyEntry pairs one alphabet symbol with its frequency.
type FrequencyEntry struct {
	Symbol Symbol
	Weight uint32
}

// FrequencyTable is an ordered alphabet with per-symbol frequencies.
// The order is significant: it seeds the tree builder's tie-break and
// is the order Codebook lists codes in.
type FrequencyTable []FrequencyEntry

// TotalWeight returns the sum of all weights in the table.
func (t FrequencyTable) TotalWeight() uint64 {
	var sum uint64
	for _, entry := range t {
		sum += uint64(entry.Weight)
	}
	return sum
}

// ParseFrequencyTable reads a table from r.  The format is line
// oriented: one "<symbol> <weight>" pair per line, where symbol is a
// single character and weight is a non-negative integer.  Blank lines
// and lines starting with '#' are ignored.
func ParseFrequencyTable(r io.Reader) (FrequencyTable, error) {
	var table FrequencyTable
	seen := make(map[Symbol]bool)
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: want \"<symbol> <weight>\", got %q", lineno, ErrBadTable, line)
		}
		c, size := utf8.DecodeRuneInString(fields[0])
		if c == utf8.RuneError || size != len(fields[0]) {
			return nil, fmt.Errorf("line %d: %w: symbol must be a single character, got %q", lineno, ErrBadTable, fields[0])
		}
		weight, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad weight %q", lineno, ErrBadTable, fields[1])
		}
		symbol := Symbol(c)
		if seen[symbol] {
			return nil, fmt.Errorf("line %d: %w: duplicate symbol %q", lineno, ErrBadTable, c)
		}
		seen[symbol] = true
		table = append(table, FrequencyEntry{symbol, uint32(weight)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadFrequencyTable reads a table from the named file.  Open and read
// failures are returned verbatim, filename included.
func LoadFrequencyTable(path string) (FrequencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := ParseFrequencyTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
