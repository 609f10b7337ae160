package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// CompactLayout is tried before general parsing: "YYYY-MM-DD HH:mm" in local time.
const CompactLayout = "2006-01-02 15:04"

var errEpoch = errors.New("timestamp is the Unix epoch")

// Coerce converts a raw date-like value into a timestamp.
//
// time.Time passes through; numbers are Unix milliseconds; strings try
// CompactLayout and then general date parsing, both in loc. The zero time and
// the Unix epoch are rejected.
func Coerce(raw any, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	var t time.Time
	switch v := raw.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return time.Time{}, errors.New("nil timestamp")
		}
		t = *v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		ms, err := cast.ToInt64E(v)
		if err != nil {
			return time.Time{}, err
		}
		t = time.UnixMilli(ms)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, errors.New("empty date string")
		}
		parsed, err := time.ParseInLocation(CompactLayout, s, loc)
		if err != nil {
			parsed, err = dateparse.ParseIn(s, loc)
			if err != nil {
				return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
			}
		}
		t = parsed
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", raw)
	}

	if t.IsZero() {
		return time.Time{}, errors.New("zero timestamp")
	}
	if t.UnixMilli() == 0 {
		return time.Time{}, errEpoch
	}
	return t, nil
}
