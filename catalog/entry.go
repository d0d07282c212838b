// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

// Entry is one member of the catalog's "strings" object.
// Changes made through an Entry are visible to the Catalog it came from.
type Entry struct {
	key string
	obj *Object
}

// Unit is the stringUnit of one localization.
type Unit struct {
	// Value is the unit value, or "" when it is missing or not a string.
	Value string
	// State is the unit state when it is a string.
	State string
	// HasState is false when the state member is missing or null.
	HasState bool
}

// Key returns the entry key, which is the source text itself.
func (e *Entry) Key() string {
	return e.key
}

// Locales returns the locale identifiers of the entry's localizations in
// catalog order.
func (e *Entry) Locales() []string {
	locs, ok := e.obj.Object(LocalizationsField)
	if !ok {
		return nil
	}

	return locs.Keys()
}

// Unit returns the string unit for locale. The second result is false when
// the localization is absent, is not an object, or has no stringUnit object.
func (e *Entry) Unit(locale string) (Unit, bool) {
	su, ok := e.stringUnit(locale)
	if !ok {
		return Unit{}, false
	}

	var u Unit

	u.Value, _ = su.String(ValueField)

	if !su.IsNull(StateField) {
		u.HasState = true
		u.State, _ = su.String(StateField)
	}

	return u, true
}

func (e *Entry) stringUnit(locale string) (*Object, bool) {
	locs, ok := e.obj.Object(LocalizationsField)
	if !ok {
		return nil, false
	}

	loc, ok := locs.Object(locale)
	if !ok {
		return nil, false
	}

	return loc.Object(StringUnitField)
}

// ResetUnit installs an empty stringUnit for locale, creating the
// localizations member and the locale member as needed. Other members of
// an existing locale object are kept; a locale member that is not an
// object is replaced.
func (e *Entry) ResetUnit(locale string) {
	locs, ok := e.obj.Object(LocalizationsField)
	if !ok {
		locs = NewObject()
		e.obj.SetObject(LocalizationsField, locs)
	}

	loc, ok := locs.Object(locale)
	if !ok {
		loc = NewObject()
		locs.SetObject(locale, loc)
	}

	loc.SetObject(StringUnitField, NewObject())
}

// SetValue sets the unit value for locale, creating the unit if needed.
func (e *Entry) SetValue(locale, value string) {
	e.mustUnit(locale).SetString(ValueField, value)
}

// SetState sets the unit state for locale, creating the unit if needed.
func (e *Entry) SetState(locale, state string) {
	e.mustUnit(locale).SetString(StateField, state)
}

func (e *Entry) mustUnit(locale string) *Object {
	su, ok := e.stringUnit(locale)
	if !ok {
		e.ResetUnit(locale)
		su, _ = e.stringUnit(locale)
	}

	return su
}
