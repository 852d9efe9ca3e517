package portfolio

import "encoding/json"

// MergeWithDefaults overlays persisted JSON onto the built-in defaults.
// Unmarshalling over a pre-filled document gives the merge policy: top-level
// keys absent from the persisted data keep their defaults (including the
// theme), list sections present in the data replace the default wholesale,
// and the fixed object sections (personal, theme, gameSettings) merge
// field by field.
func MergeWithDefaults(raw []byte) (Document, error) {
	doc := Defaults()
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Defaults(), err
	}
	doc.normalize()
	return doc, nil
}

// normalize keeps every section non-nil so consumers and the serialized
// form always see all top-level keys.
func (d *Document) normalize() {
	if d.Personal.Stats == nil {
		d.Personal.Stats = []StatPair{}
	}
	if d.Socials == nil {
		d.Socials = []SocialLink{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Stack == nil {
		d.Stack = []string{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Services == nil {
		d.Services = []string{}
	}
	if d.Process == nil {
		d.Process = []ProcessStep{}
	}
	if d.GameSettings.FreeFire.Settings == nil {
		d.GameSettings.FreeFire.Settings = []GameSettingRow{}
	}
	if d.GameSettings.Valorant.Settings == nil {
		d.GameSettings.Valorant.Settings = []GameSettingRow{}
	}
	if d.Pricing == nil {
		d.Pricing = []PricingPlan{}
	}
	if d.FAQs == nil {
		d.FAQs = []FAQ{}
	}
	if d.Testimonials == nil {
		d.Testimonials = []Testimonial{}
	}
}
