package ngram

import (
	"encoding/binary"
	"strings"
)

// FreqMap maps a packed context key to the occurrence count of every token
// observed immediately after that context. Counts are always >= 1; a
// (context, token) entry exists only if the pair occurred in training.
type FreqMap map[string]map[string]uint64

// packContext encodes a context as a string of length-prefixed token bytes.
// The fixed-width length prefix makes the key structural: two distinct token
// sequences can never pack to the same key, no matter what bytes the tokens
// contain. A delimiter-joined key would not have that property.
func packContext(context []string) string {
	if len(context) == 0 {
		return ""
	}
	var b strings.Builder
	var size [4]byte
	for _, tok := range context {
		binary.BigEndian.PutUint32(size[:], uint32(len(tok)))
		b.Write(size[:])
		b.WriteString(tok)
	}
	return b.String()
}

// unpackContext reverses packContext. Keys are only ever produced by
// packContext, so a malformed key indicates internal corruption.
func unpackContext(key string) []string {
	if key == "" {
		return nil
	}
	var context []string
	for len(key) >= 4 {
		n := int(binary.BigEndian.Uint32([]byte(key[:4])))
		key = key[4:]
		context = append(context, key[:n])
		key = key[n:]
	}
	return context
}
