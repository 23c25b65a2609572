package spatial

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

const formatHint = `each non-blank line must hold three comma-separated numbers, e.g. "162,817,812"`

// Parse reads one "x,y,z" record per line from r. Blank lines are skipped and
// surrounding whitespace is ignored. The first malformed record aborts the
// parse with an error wrapping ErrMalformedPoint; an input without records
// yields ErrEmptyInput.
//
// Complexity: O(L) time over the input length, O(n) memory for n points.
func Parse(r io.Reader) ([]Point, error) {
	var (
		points []Point
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parseRecord(line)
		if err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "line %d %q", lineNo, line),
				formatHint,
			)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "spatial: read input")
	}
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	return points, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Point, error) {
	return Parse(strings.NewReader(s))
}

// Load opens path on fs and parses it. A nil fs means the OS filesystem.
func Load(fs afero.Fs, path string) ([]Point, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "spatial: open %s", path)
	}
	defer f.Close()

	points, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "spatial: load %s", path)
	}

	return points, nil
}

// parseRecord converts one trimmed, non-empty line into a Point.
func parseRecord(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, errors.Wrapf(ErrMalformedPoint,
			"expected 3 coordinates, got %d", len(fields))
	}
	var coords [3]float64
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return Point{}, errors.Wrapf(ErrMalformedPoint, "coordinate %d is empty", i+1)
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Point{}, errors.Wrapf(ErrMalformedPoint, "coordinate %d %q is not a number", i+1, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, errors.Wrapf(ErrMalformedPoint, "coordinate %d %q is not finite", i+1, f)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
