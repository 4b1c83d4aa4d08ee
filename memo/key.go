package memo

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var ErrUnserializableKey = errors.New("unserializable cache key")

// maxKeyDepth bounds the walk over self-referencing values.
const maxKeyDepth = 64

// DeriveKey turns an arbitrary key into the string the cache indexes by.
//
// Strings are used as they are and fmt.Stringer values by their String method.
// Structured values (structs, maps, slices, arrays and pointers to them) are
// written as canonical JSON: struct fields keep declaration order, unexported
// fields included, and map keys are sorted, so two deeply-equal values always
// derive the same key. Non-finite floats are written as "NaN", "+Inf" and
// "-Inf". Anything else goes through fmt.Sprint, which means the string "1"
// and the int 1 share a key.
func DeriveKey(key any) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case fmt.Stringer:
		return k.String(), nil
	}

	if !isStructured(key) {
		return fmt.Sprint(key), nil
	}

	var buf bytes.Buffer
	if err := encodeKey(&buf, reflect.ValueOf(key), 0); err != nil {
		return "", fmt.Errorf("%w: %T: %w", ErrUnserializableKey, key, err)
	}
	return buf.String(), nil
}

// MustDeriveKey is the panic-on-failure variant of DeriveKey.
func MustDeriveKey(key any) string {
	k, err := DeriveKey(key)
	if err != nil {
		panic(err)
	}
	return k
}

func isStructured(key any) bool {
	if key == nil {
		return false
	}
	v := reflect.ValueOf(key)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

var marshalerType = reflect.TypeFor[json.Marshaler]()

func encodeKey(buf *bytes.Buffer, v reflect.Value, depth int) error {
	if depth > maxKeyDepth {
		return fmt.Errorf("nested deeper than %d levels", maxKeyDepth)
	}
	if !v.IsValid() {
		buf.WriteString("null")
		return nil
	}
	if v.CanInterface() && v.Type().Implements(marshalerType) {
		if v.Kind() == reflect.Pointer && v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		writeFloat(buf, v.Float(), v.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		writeString(buf, strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()))
	case reflect.String:
		writeString(buf, v.String())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return encodeKey(buf, v.Elem(), depth+1)
	case reflect.Slice:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return encodeList(buf, v, depth)
	case reflect.Array:
		return encodeList(buf, v, depth)
	case reflect.Map:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return encodeMap(buf, v, depth)
	case reflect.Struct:
		return encodeStruct(buf, v, depth)
	default:
		return fmt.Errorf("unsupported type: %s", v.Type())
	}
	return nil
}

func writeFloat(buf *bytes.Buffer, f float64, bits int) {
	switch {
	case math.IsNaN(f):
		writeString(buf, "NaN")
	case math.IsInf(f, 1):
		writeString(buf, "+Inf")
	case math.IsInf(f, -1):
		writeString(buf, "-Inf")
	default:
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	}
}

func writeString(buf *bytes.Buffer, s string) {
	// Marshaling a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}

func encodeList(buf *bytes.Buffer, v reflect.Value, depth int) error {
	buf.WriteByte('[')
	for i := range v.Len() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeKey(buf, v.Index(i), depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func encodeMap(buf *bytes.Buffer, v reflect.Value, depth int) error {
	type pair struct {
		key string
		val reflect.Value
	}
	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := mapKey(iter.Key(), depth)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair{key: k, val: iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, p.key)
		buf.WriteByte(':')
		if err := encodeKey(buf, p.val, depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func mapKey(k reflect.Value, depth int) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	var kb bytes.Buffer
	if err := encodeKey(&kb, k, depth+1); err != nil {
		return "", err
	}
	return kb.String(), nil
}

// encodeStruct honours json tag names, omitempty and "-" on exported fields.
// Unexported fields are written under their Go names.
func encodeStruct(buf *bytes.Buffer, v reflect.Value, depth int) error {
	t := v.Type()
	buf.WriteByte('{')
	first := true
	for i := range t.NumField() {
		f := t.Field(i)
		name := f.Name
		if f.IsExported() {
			tag, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
			if tag == "-" && opts == "" {
				continue
			}
			if tag != "" {
				name = tag
			}
			if strings.Contains(opts, "omitempty") && v.Field(i).IsZero() {
				continue
			}
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeString(buf, name)
		buf.WriteByte(':')
		if err := encodeKey(buf, v.Field(i), depth+1); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	buf.WriteByte('}')
	return nil
}
