package portfolio

import (
	"fmt"
	"reflect"
	"strings"
)

// Edit operations. Each mutates the receiver; the content repository hands
// callers a clone, applies the operation, and swaps the whole document, so
// from the outside every edit is (document, params) -> new document.

func (d *Document) listSection(name string) (reflect.Value, bool) {
	var target any
	switch name {
	case "socials":
		target = &d.Socials
	case "projects":
		target = &d.Projects
	case "experience":
		target = &d.Experience
	case "process":
		target = &d.Process
	case "pricing":
		target = &d.Pricing
	case "faqs":
		target = &d.FAQs
	case "testimonials":
		target = &d.Testimonials
	default:
		return reflect.Value{}, false
	}
	return reflect.ValueOf(target).Elem(), true
}

// AddItem appends the section's template record. Records carrying an
// identifier field get a fresh one; the identifier is never reassigned
// afterwards.
func (d *Document) AddItem(section string) error {
	list, ok := d.listSection(section)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	tmpl, ok := Template(section)
	if !ok {
		return fmt.Errorf("%w: %q has no template", ErrUnknownSection, section)
	}

	item := reflect.New(list.Type().Elem()).Elem()
	item.Set(reflect.ValueOf(tmpl))
	if idField := item.FieldByName("ID"); idField.IsValid() {
		idField.SetString(NewID())
	}
	list.Set(reflect.Append(list, item))
	return nil
}

// DeleteItem removes the record at index, preserving relative order of the
// remainder. An out-of-range index leaves the document unchanged; callers
// today always pass valid indices but the bound check stays.
func (d *Document) DeleteItem(section string, index int) error {
	list, ok := d.listSection(section)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if index < 0 || index >= list.Len() {
		return nil
	}
	list.Set(reflect.AppendSlice(list.Slice(0, index), list.Slice(index+1, list.Len())))
	return nil
}

// PatchField sets one field, addressed by its json tag, on the record at
// index. String values aimed at list-of-strings fields (project tags,
// pricing features) are split per SplitList.
func (d *Document) PatchField(section string, index int, field string, value any) error {
	list, ok := d.listSection(section)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if index < 0 || index >= list.Len() {
		return fmt.Errorf("%w: index %d out of range for %q", ErrBadFieldValue, index, section)
	}
	if field == "id" {
		return ErrImmutableField
	}

	f, ok := fieldByJSONTag(list.Index(index), field)
	if !ok {
		return fmt.Errorf("%w: %q has no field %q", ErrUnknownField, section, field)
	}
	return setField(f, field, value)
}

func fieldByJSONTag(record reflect.Value, tag string) (reflect.Value, bool) {
	t := record.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == tag {
			return record.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func setField(f reflect.Value, name string, value any) error {
	switch f.Kind() {
	case reflect.String:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %q wants a string", ErrBadFieldValue, name)
		}
		f.SetString(s)
	case reflect.Bool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %q wants a boolean", ErrBadFieldValue, name)
		}
		f.SetBool(b)
	case reflect.Slice:
		if f.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w: %q is not editable", ErrBadFieldValue, name)
		}
		items, err := coerceStringList(value)
		if err != nil {
			return fmt.Errorf("%w: %q wants a string or list of strings", ErrBadFieldValue, name)
		}
		f.Set(reflect.ValueOf(items))
	default:
		return fmt.Errorf("%w: %q is not editable", ErrBadFieldValue, name)
	}
	return nil
}

func coerceStringList(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return SplitList(v), nil
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element is not a string")
			}
			items = append(items, s)
		}
		return items, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", value)
}

// SplitList turns free-text list input into elements: split on commas and
// newlines, trim whitespace, drop empties. One policy for tags, features,
// stack and services alike.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// SetPersonalField sets one of the scalar profile fields by json tag. Stats
// have their own operations below.
func (d *Document) SetPersonalField(field, value string) error {
	if field == "stats" {
		return fmt.Errorf("%w: stats are edited row by row", ErrBadFieldValue)
	}
	f, ok := fieldByJSONTag(reflect.ValueOf(&d.Personal).Elem(), field)
	if !ok {
		return fmt.Errorf("%w: personal has no field %q", ErrUnknownField, field)
	}
	return setField(f, field, value)
}

func (d *Document) AddStat() {
	d.Personal.Stats = append(d.Personal.Stats, StatPair{Label: "New Stat", Value: "Value"})
}

func (d *Document) DeleteStat(index int) {
	if index < 0 || index >= len(d.Personal.Stats) {
		return
	}
	d.Personal.Stats = append(d.Personal.Stats[:index], d.Personal.Stats[index+1:]...)
}

func (d *Document) PatchStat(index int, field, value string) error {
	if index < 0 || index >= len(d.Personal.Stats) {
		return fmt.Errorf("%w: stat index %d out of range", ErrBadFieldValue, index)
	}
	switch field {
	case "label":
		d.Personal.Stats[index].Label = value
	case "value":
		d.Personal.Stats[index].Value = value
	default:
		return fmt.Errorf("%w: stats have no field %q", ErrUnknownField, field)
	}
	return nil
}

// SetStack and SetServices take the single comma-separated text control the
// editor exposes for these flat lists.
func (d *Document) SetStack(text string) {
	d.Stack = SplitList(text)
}

func (d *Document) SetServices(text string) {
	d.Services = SplitList(text)
}

func (d *Document) gameSlot(slot string) (*GameConfig, bool) {
	switch slot {
	case "freeFire":
		return &d.GameSettings.FreeFire, true
	case "valorant":
		return &d.GameSettings.Valorant, true
	}
	return nil, false
}

func (d *Document) SetGameInfo(slot, field, value string) error {
	g, ok := d.gameSlot(slot)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGameSlot, slot)
	}
	switch field {
	case "game":
		g.Game = value
	case "experience":
		g.Experience = value
	default:
		return fmt.Errorf("%w: game slots have no field %q", ErrUnknownField, field)
	}
	return nil
}

func (d *Document) AddGameSettingRow(slot string) error {
	g, ok := d.gameSlot(slot)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGameSlot, slot)
	}
	g.Settings = append(g.Settings, GameSettingRow{Label: "New Setting", Value: "Value"})
	return nil
}

func (d *Document) DeleteGameSettingRow(slot string, index int) error {
	g, ok := d.gameSlot(slot)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGameSlot, slot)
	}
	if index < 0 || index >= len(g.Settings) {
		return nil
	}
	g.Settings = append(g.Settings[:index], g.Settings[index+1:]...)
	return nil
}

func (d *Document) PatchGameSettingRow(slot string, index int, field, value string) error {
	g, ok := d.gameSlot(slot)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGameSlot, slot)
	}
	if index < 0 || index >= len(g.Settings) {
		return fmt.Errorf("%w: setting index %d out of range", ErrBadFieldValue, index)
	}
	switch field {
	case "label":
		g.Settings[index].Label = value
	case "value":
		g.Settings[index].Value = value
	default:
		return fmt.Errorf("%w: setting rows have no field %q", ErrUnknownField, field)
	}
	return nil
}
