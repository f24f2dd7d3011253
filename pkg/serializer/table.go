package serializer

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"text/tabwriter"
)

type tableRow struct {
	field string
	value string
}

// encodeTable flattens data into FIELD/VALUE rows. Nested fields are joined
// with dots and slice elements are indexed, e.g. Outcomes[0].Path.
func encodeTable(data any) ([]byte, error) {
	var rows []tableRow
	flatten("", reflect.ValueOf(data), &rows)

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.field, r.value)
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}
	return buf.Bytes(), nil
}

func joinField(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func flatten(prefix string, v reflect.Value, rows *[]tableRow) {
	if !v.IsValid() {
		*rows = append(*rows, tableRow{prefix, "<nil>"})
		return
	}

	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok && v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			*rows = append(*rows, tableRow{prefix, s.String()})
			return
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			*rows = append(*rows, tableRow{prefix, "<nil>"})
			return
		}
		flatten(prefix, v.Elem(), rows)

	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			flatten(joinField(prefix, f.Name), v.Field(i), rows)
		}

	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			*rows = append(*rows, tableRow{prefix, "<empty>"})
			return
		}
		for i := range v.Len() {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), v.Index(i), rows)
		}

	case reflect.Map:
		if v.Len() == 0 {
			*rows = append(*rows, tableRow{prefix, "<empty>"})
			return
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			flatten(joinField(prefix, fmt.Sprint(k.Interface())), v.MapIndex(k), rows)
		}

	default:
		if v.CanInterface() {
			*rows = append(*rows, tableRow{prefix, fmt.Sprint(v.Interface())})
			return
		}
		*rows = append(*rows, tableRow{prefix, v.String()})
	}
}
