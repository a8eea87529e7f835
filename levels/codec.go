package levels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// ErrNotArray is returned by Deserialize when the text is not a JSON array.
var ErrNotArray = errors.New("levels: layout is not a JSON array")

var errNoTag = errors.New("levels: record has no string \"t\" field")

// Serialize encodes items as an indented JSON array of {t, x, y, ...} records,
// preserving order.
func Serialize(items ItemList) ([]byte, error) {
	records := make([]json.RawMessage, 0, len(items))
	for i, it := range items {
		if it == nil {
			continue
		}
		data, err := marshalItem(it)
		if err != nil {
			return nil, fmt.Errorf("levels: encode item %d (%s): %w", i, it.Kind(), err)
		}
		records = append(records, data)
	}
	return json.MarshalIndent(records, "", "  ")
}

// Deserialize parses a layout. Records that are not objects, carry no string
// tag or hold fields of the wrong type are dropped and reported to log; the
// rest are returned in order. Only text that is not an array is an error.
func Deserialize(data []byte, log *zap.Logger) (ItemList, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}
	items := make(ItemList, 0, len(raws))
	for i, raw := range raws {
		it, err := decodeRecord(raw)
		if err != nil {
			log.Warn("dropping layout record", zap.Int("index", i), zap.Error(err))
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// FromFields builds a record from loosely typed parameters, the shape YAML
// and script sources produce.
func FromFields(kind Kind, pos Vec, params map[string]any) (Item, error) {
	fields := make(map[string]any, len(params)+3)
	for k, v := range params {
		fields[k] = v
	}
	fields["t"] = string(kind)
	fields["x"] = pos.X
	fields["y"] = pos.Y
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("levels: encode %s params: %w", kind, err)
	}
	return decodeRecord(data)
}

func decodeRecord(raw []byte) (Item, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("levels: record is not an object: %w", err)
	}
	if fields == nil {
		return nil, errNoTag
	}
	rawTag, ok := fields["t"]
	if !ok {
		return nil, errNoTag
	}
	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil || tag == "" {
		return nil, errNoTag
	}

	kind := Kind(tag)
	if !kind.Known() {
		delete(fields, "t")
		for k, v := range fields {
			var buf bytes.Buffer
			if err := json.Compact(&buf, v); err == nil {
				fields[k] = buf.Bytes()
			}
		}
		return &Unknown{Tag: tag, Fields: fields}, nil
	}

	it := New(kind, Vec{})
	if err := json.Unmarshal(raw, it); err != nil {
		return nil, fmt.Errorf("levels: decode %s: %w", kind, err)
	}
	return it, nil
}

func marshalItem(it Item) ([]byte, error) {
	var body []byte
	if u, ok := it.(*Unknown); ok {
		fields := make(map[string]json.RawMessage, len(u.Fields))
		for k, v := range u.Fields {
			if k != "t" {
				fields[k] = v
			}
		}
		b, err := marshalSorted(fields)
		if err != nil {
			return nil, err
		}
		body = b
	} else {
		b, err := json.Marshal(it)
		if err != nil {
			return nil, err
		}
		body = b
	}

	tag, err := json.Marshal(string(it.Kind()))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+len(tag)+6)
	out = append(out, `{"t":`...)
	out = append(out, tag...)
	if len(body) > 2 {
		out = append(out, ',')
	}
	out = append(out, body[1:]...)
	return out, nil
}

// marshalSorted keeps x and y first so unknown records read like known ones.
func marshalSorted(fields map[string]json.RawMessage) ([]byte, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := keyRank(keys[i]), keyRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(fields[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func keyRank(k string) int {
	switch k {
	case "x":
		return 0
	case "y":
		return 1
	}
	return 2
}
