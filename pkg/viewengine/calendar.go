package viewengine

import (
	"sort"
	"time"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// DayBucket groups the records of one calendar day.
type DayBucket struct {
	Day     string          `json:"day"` // YYYY-MM-DD, UTC.
	Records []*types.Record `json:"records"`
}

// CalendarBuckets buckets records by the calendar day of the view's
// date field, at day granularity. The pipeline is the same as any other
// view minus grouping: records are filtered and sorted first by the
// caller (or via Build), then placed on days. Records whose date field
// is empty or unparseable are omitted. The from/to window is a caller
// request, not persisted view state; zero bounds mean unbounded. Ties
// within a day keep natural record order. Days are returned ascending.
func CalendarBuckets(records []*types.Record, fields []types.FieldDefinition, view *types.ViewDefinition, from, to time.Time) []DayBucket {
	f := fieldByID(fields, view.Config.DateField)
	if f == nil {
		return nil
	}

	buckets := make(map[string][]*types.Record)
	for _, rec := range records {
		t, ok := toTime(rec.Value(f.FieldID))
		if !ok {
			continue
		}
		t = t.UTC()
		if !from.IsZero() && t.Before(from) {
			continue
		}
		if !to.IsZero() && !t.Before(to) {
			continue
		}
		day := t.Format("2006-01-02")
		buckets[day] = append(buckets[day], rec)
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]DayBucket, 0, len(days))
	for _, day := range days {
		out = append(out, DayBucket{Day: day, Records: buckets[day]})
	}
	return out
}
