package rawdoc

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeKind discriminates the stored shape of a timestamp field.
type TimeKind int

const (
	TimeMissing TimeKind = iota
	TimeISO               // stored as a string
	TimeNative            // stored as a database-native date value
	TimeEpoch             // stored as epoch milliseconds
)

// TimeValue is the decoded form of a timestamp field. Instead of branching
// on the raw shape at every call site, callers decode once and read ISO().
type TimeValue struct {
	Kind TimeKind
	Time time.Time
	Raw  string
}

// DecodeTime attempts the known timestamp representations in order:
// string, native date (time.Time, BSON datetime, BSON timestamp), epoch
// milliseconds. Anything else decodes as missing.
func DecodeTime(v interface{}) TimeValue {
	switch t := v.(type) {
	case nil:
		return TimeValue{Kind: TimeMissing}
	case string:
		if t == "" {
			return TimeValue{Kind: TimeMissing}
		}
		return TimeValue{Kind: TimeISO, Time: parseISO(t), Raw: t}
	case time.Time:
		return TimeValue{Kind: TimeNative, Time: t.UTC()}
	case primitive.DateTime:
		return TimeValue{Kind: TimeNative, Time: t.Time().UTC()}
	case primitive.Timestamp:
		return TimeValue{Kind: TimeNative, Time: time.Unix(int64(t.T), 0).UTC()}
	case int64:
		return TimeValue{Kind: TimeEpoch, Time: time.UnixMilli(t).UTC()}
	case float64:
		return TimeValue{Kind: TimeEpoch, Time: time.UnixMilli(int64(t)).UTC()}
	}
	return TimeValue{Kind: TimeMissing}
}

// ISO renders the value as an ISO-8601 string. Strings pass through as
// stored; native and epoch values are formatted in UTC; missing values
// render empty.
func (t TimeValue) ISO() string {
	switch t.Kind {
	case TimeISO:
		return t.Raw
	case TimeNative, TimeEpoch:
		return t.Time.Format(time.RFC3339Nano)
	}
	return ""
}

// DateOnly renders just the calendar date ("2006-01-02"), the prefix used
// for same-day comparisons.
func (t TimeValue) DateOnly() string {
	iso := t.ISO()
	if len(iso) > 10 {
		return iso[:10]
	}
	return iso
}

func parseISO(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
