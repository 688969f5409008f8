package viewengine

import (
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// UngroupedKey is the bucket for records with no group value, or a
// value matching no declared option.
const UngroupedKey = "ungrouped"

// Group is one partition bucket of a grouped view.
type Group struct {
	Key     string          `json:"key"`
	Records []*types.Record `json:"records"`
}

// GroupRecords partitions records into buckets keyed by the raw stored
// value of the group field. Each record lands in exactly one bucket, so
// the union of all buckets equals the input set.
//
// With seedOptions (kanban), buckets are created up front from the
// field's declared option list so empty columns still render, and
// values matching no option fall into the ungrouped bucket, which is
// always present. Without seeding (grid), buckets are discovered from
// the data in encounter order and the ungrouped bucket appears only
// when it has records.
func GroupRecords(records []*types.Record, f *types.FieldDefinition, seedOptions bool) []Group {
	var keys []string
	index := make(map[string]int)

	addBucket := func(key string) int {
		if i, ok := index[key]; ok {
			return i
		}
		keys = append(keys, key)
		index[key] = len(keys) - 1
		return len(keys) - 1
	}

	buckets := make(map[string][]*types.Record)

	if seedOptions {
		for _, name := range f.OptionNames() {
			addBucket(name)
		}
	}

	for _, rec := range records {
		v := rec.Value(f.FieldID)
		key := UngroupedKey
		if !types.IsEmptyValue(v) {
			s := types.Stringify(v)
			if seedOptions {
				if _, ok := index[s]; ok {
					key = s
				}
			} else {
				key = s
			}
		}
		if key != UngroupedKey {
			addBucket(key)
		}
		buckets[key] = append(buckets[key], rec)
	}

	out := make([]Group, 0, len(keys)+1)
	for _, key := range keys {
		out = append(out, Group{Key: key, Records: buckets[key]})
	}
	if seedOptions || len(buckets[UngroupedKey]) > 0 {
		out = append(out, Group{Key: UngroupedKey, Records: buckets[UngroupedKey]})
	}
	return out
}
