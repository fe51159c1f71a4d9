package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// KeySeparator separates the query name from the serialized arguments.
const KeySeparator = ":"

// KeyGenerator builds a cache key from a query name and its arguments.
type KeyGenerator interface {
	GenerateKey(queryName string, args map[string]any) string
}

// defaultKeyGenerator produces "<queryName>:<json>" where the top-level argument
// names are sorted. Nested values are encoded as encoding/json encodes them: map
// keys come out sorted, struct fields in declaration order.
type defaultKeyGenerator struct{}

// NewDefaultKeyGenerator creates a new instance of the default key generator.
func NewDefaultKeyGenerator() KeyGenerator {
	return defaultKeyGenerator{}
}

var defaultGenerator = NewDefaultKeyGenerator()

// GenerateKey builds a key with the default generator. Nil and empty args both
// produce "<queryName>:{}".
func GenerateKey(queryName string, args map[string]any) string {
	return defaultGenerator.GenerateKey(queryName, args)
}

func (defaultKeyGenerator) GenerateKey(queryName string, args map[string]any) string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString(queryName)
	buf.WriteString(KeySeparator)
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeValue(name))
		buf.WriteByte(':')
		buf.Write(encodeValue(args[name]))
	}
	buf.WriteByte('}')
	return buf.String()
}

// encodeValue JSON-encodes v without HTML escaping. Values encoding/json rejects
// (channels, funcs, complex numbers) fall back to their type and formatted value so
// key generation never fails.
func encodeValue(v any) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return encodeValue(fmt.Sprintf("%T:%v", v, v))
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
