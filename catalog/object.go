// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Object is a JSON object that remembers the order of its members.
//
// Member values are either nested objects or raw JSON text (strings,
// numbers, arrays, literals), which is written back unchanged. This is what
// lets fields the tool does not know about survive a load/save cycle.
type Object struct {
	members []member
	index   map[string]int
}

type member struct {
	key string
	obj *Object // nil for raw values
	raw string
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// parseObject builds an Object from a gjson object result.
// dup is called for every repeated key; the later value wins but keeps the
// position of the first occurrence.
func parseObject(r gjson.Result, dup func(key string)) *Object {
	o := NewObject()

	r.ForEach(func(k, v gjson.Result) bool {
		key := k.String()

		if _, ok := o.index[key]; ok && dup != nil {
			dup(key)
		}

		if v.IsObject() {
			o.set(member{key: key, obj: parseObject(v, nil)})
		} else {
			o.set(member{key: key, raw: v.Raw})
		}

		return true
	})

	return o
}

func (o *Object) set(m member) {
	if i, ok := o.index[m.key]; ok {
		o.members[i] = m

		return
	}

	o.index[m.key] = len(o.members)
	o.members = append(o.members, m)
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}

	return keys
}

// Has reports whether key is a member, whatever its type.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]

	return ok
}

// Object returns the member key if it is an object.
func (o *Object) Object(key string) (*Object, bool) {
	i, ok := o.index[key]
	if !ok || o.members[i].obj == nil {
		return nil, false
	}

	return o.members[i].obj, true
}

// String returns the member key if it is a JSON string.
func (o *Object) String(key string) (string, bool) {
	i, ok := o.index[key]
	if !ok || o.members[i].obj != nil || !isJSONString(o.members[i].raw) {
		return "", false
	}

	return gjson.Parse(o.members[i].raw).Str, true
}

// IsNull reports whether key is absent or JSON null.
func (o *Object) IsNull(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return true
	}

	return o.members[i].obj == nil && o.members[i].raw == "null"
}

// SetString sets key to the string s. An existing member keeps its
// position; a new one is appended.
func (o *Object) SetString(key, s string) {
	o.set(member{key: key, raw: quote(s)})
}

// SetObject sets key to child. An existing member keeps its position;
// a new one is appended.
func (o *Object) SetObject(key string, child *Object) {
	o.set(member{key: key, obj: child})
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	c := &Object{
		members: make([]member, len(o.members)),
		index:   make(map[string]int, len(o.index)),
	}

	for i, m := range o.members {
		if m.obj != nil {
			m.obj = m.obj.Clone()
		}

		c.members[i] = m
		c.index[m.key] = i
	}

	return c
}

// appendJSON appends the compact JSON encoding of o to buf.
func (o *Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')

	for i, m := range o.members {
		if i > 0 {
			buf = append(buf, ',')
		}

		buf = append(buf, quote(m.key)...)
		buf = append(buf, ':')

		if m.obj != nil {
			buf = m.obj.appendJSON(buf)
		} else {
			buf = append(buf, m.raw...)
		}
	}

	return append(buf, '}')
}

func isJSONString(raw string) bool {
	return len(raw) > 0 && raw[0] == '"'
}

// quote encodes s as a JSON string without HTML escaping.
func quote(s string) string {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	// Encoding a string cannot fail.
	_ = enc.Encode(s)

	return string(bytes.TrimSuffix(b.Bytes(), []byte{'\n'}))
}
