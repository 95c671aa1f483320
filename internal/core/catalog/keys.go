package catalog

import (
	"net/url"
	"sort"
	"strings"
)

const (
	keySeparator = ":"
	allSegment   = "all"
	querySegment = "query"
)

// delimiter bytes inside values are escaped so distinct parameter sets never share a key
var keyValueEscaper = strings.NewReplacer("%", "%25", "&", "%26", "=", "%3D", ",", "%2C")

// KeyDeriver maps read requests to cache keys under a configured prefix
type KeyDeriver struct {
	prefix string
}

func NewKeyDeriver(prefix string) KeyDeriver {
	return KeyDeriver{prefix: prefix}
}

// Prefix returns the namespace all keys are derived under
func (k KeyDeriver) Prefix() string {
	return k.prefix
}

// ForID returns the key of a single product
func (k KeyDeriver) ForID(id string) string {
	return k.prefix + keySeparator + id
}

// AllKey returns the key of the unfiltered collection
func (k KeyDeriver) AllKey() string {
	return k.prefix + keySeparator + allSegment
}

// QueryPattern matches every filtered collection key
func (k KeyDeriver) QueryPattern() string {
	return k.prefix + keySeparator + querySegment + keySeparator + "*"
}

// NamespacePattern matches every key under the prefix
func (k KeyDeriver) NamespacePattern() string {
	return k.prefix + keySeparator + "*"
}

// ForCollection returns the key of a collection read. Parameters are sorted by
// name so their order in the URL does not matter; repeated values keep URL order.
func (k KeyDeriver) ForCollection(params url.Values) string {
	if len(params) == 0 {
		return k.AllKey()
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(k.prefix + keySeparator + querySegment + keySeparator)
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		values := make([]string, len(params[name]))
		for j, v := range params[name] {
			values[j] = keyValueEscaper.Replace(v)
		}
		b.WriteString(keyValueEscaper.Replace(name))
		b.WriteByte('=')
		b.WriteString(strings.Join(values, ","))
	}
	return b.String()
}

// ForRequest derives the key of any read. An identifier wins over parameters.
func (k KeyDeriver) ForRequest(req ReadRequest) string {
	if req.ID != "" {
		return k.ForID(req.ID)
	}
	return k.ForCollection(req.Params)
}
