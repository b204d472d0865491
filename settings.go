package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Settings map keys. Stable; part of the persisted format.
const (
	settingsKeyData       = "data"
	settingsKeyCorrection = "correction"
	settingsKeyDesign     = "design"
)

// Settings projects the Document into its portable map form:
//
//	{"data": base64(payload), "correction": "L|M|Q|H", "design": {...}}
//
// The projection is pure and never fails.
func (d *Document) Settings() map[string]any {
	return map[string]any{
		settingsKeyData:       base64.StdEncoding.EncodeToString(d.payload),
		settingsKeyCorrection: d.level.Code(),
		settingsKeyDesign:     d.design.settings(),
	}
}

// FromSettings builds a Document from a settings map. The function is
// total over map contents: absent or malformed fields fall back to their
// defaults field by field, so FromSettings(nil) and FromSettings(empty)
// both yield a default Document. A payload that no longer fits at the
// stored level degrades to an empty payload rather than failing the load.
func FromSettings(m map[string]any) *Document {
	d := New()

	level := DefaultLevel
	if s, ok := stringField(m, settingsKeyCorrection); ok {
		level = LevelFromCode(s)
	}

	var payload []byte
	if s, ok := stringField(m, settingsKeyData); ok {
		if raw, err := base64.StdEncoding.DecodeString(s); err == nil {
			payload = raw
		}
	}

	if err := d.Update(payload, level); err != nil {
		d.level = level
	}

	if dm, ok := mapField(m, settingsKeyDesign); ok {
		d.design = designFromSettings(dm)
	}
	return d
}

// JSON returns the compact JSON encoding of the settings map. Map keys
// encode in sorted order, so output is stable across calls and versions.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d.Settings())
}

// JSONIndent returns the pretty-printed JSON encoding, for readable
// files and stable diffs.
func (d *Document) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(d.Settings(), "", "  ")
}

// FromJSON builds a Document from a JSON settings document. It fails
// with *SettingsParseError only when data is not a JSON object; field
// level problems fall back to defaults per FromSettings.
func FromJSON(data []byte) (*Document, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &SettingsParseError{Err: err}
	}
	if m == nil {
		return nil, &SettingsParseError{Err: fmt.Errorf("not a JSON object")}
	}
	return FromSettings(m), nil
}

// stringField fetches a string-typed field from a settings map.
func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// mapField fetches a nested map field from a settings map.
func mapField(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	sub, ok := v.(map[string]any)
	return sub, ok
}

// floatField fetches a numeric field from a settings map. JSON decodes
// numbers as float64; integer values from hand-built maps are accepted
// too.
func floatField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
