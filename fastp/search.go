// Package fastp reads the "reads passed filters" count out of fastp html
// reports and collects the per-sample counts of the host, zooxs and
// unmapped read sets into a Table.
package fastp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	simple_util "github.com/liserjrqlxue/simple-util"
)

// Marker starts the line holding the filtered read count
const Marker = "reads passed filters:"

var (
	ErrUnit    = errors.New("unrecognized unit")
	ErrNoValue = errors.New("no value after marker")
	ErrRange   = errors.New("read count out of range")
)

// <digits>.<digits> <unit>
var valueReg = regexp.MustCompile(`(\d+)\.(\d+) (\S)`)

var units = map[string]int64{
	"M": 1000000,
	"K": 1000,
}

// SearchValue reads the count of the first Marker line in the report at path
func SearchValue(path string) (Count, error) {
	file, err := os.Open(path)
	if err != nil {
		return Count{}, err
	}
	defer simple_util.DeferClose(file)

	count, err := Search(file)
	if err != nil {
		return count, fmt.Errorf("%s: %w", path, err)
	}
	return count, nil
}

// Search scans r line by line. Only the first Marker line is parsed;
// without one the returned Count is absent.
func Search(r io.Reader) (Count, error) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if strings.Contains(line, Marker) {
			n, err := ParseValue(line)
			if err != nil {
				return Count{}, err
			}
			return Count{N: n, Present: true}, nil
		}
		if err == io.EOF {
			return Count{}, nil
		}
		if err != nil {
			return Count{}, err
		}
	}
}

// ParseValue converts the first "<digits>.<digits> <unit>" token after Marker
// to a read count. Fractional reads are truncated.
func ParseValue(line string) (int64, error) {
	if i := strings.Index(line, Marker); i >= 0 {
		line = line[i+len(Marker):]
	}
	m := valueReg.FindStringSubmatch(line)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrNoValue, strings.TrimSpace(line))
	}
	unit, ok := units[m[3]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnit, m[3])
	}
	return scale(m[1], m[2], unit)
}

// scale computes whole.frac * unit without going through float64
func scale(whole, frac string, unit int64) (int64, error) {
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s.%s", ErrRange, whole, frac)
	}
	digits := len(strconv.FormatInt(unit, 10)) - 1
	if len(frac) > digits {
		frac = frac[:digits]
	} else {
		frac += strings.Repeat("0", digits-len(frac))
	}
	var f int64
	if frac != "" {
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, err
		}
	}
	if n > (math.MaxInt64-f)/unit {
		return 0, fmt.Errorf("%w: %s.%s", ErrRange, whole, frac)
	}
	return n*unit + f, nil
}
