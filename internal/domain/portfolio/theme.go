package portfolio

import (
	"fmt"
	"strconv"
	"strings"
)

// Presets match the theme switcher options in the site UI.
var Presets = []Theme{
	{Name: "Deep Orange", Primary: "249 115 22", Secondary: "253 186 116", Hex: "#F97316"},
	{Name: "Galaxy Purple", Primary: "167 139 250", Secondary: "56 189 248", Hex: "#A78BFA"},
	{Name: "Emerald Green", Primary: "52 211 153", Secondary: "110 231 183", Hex: "#34D399"},
	{Name: "Crimson Red", Primary: "251 113 133", Secondary: "253 164 175", Hex: "#FB7185"},
	{Name: "Royal Blue", Primary: "96 165 250", Secondary: "147 197 253", Hex: "#60A5FA"},
}

var ErrUnknownPreset = fmt.Errorf("unknown theme preset")

func PresetByName(name string) (Theme, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Theme{}, false
}

func (d *Document) SetThemePreset(name string) error {
	p, ok := PresetByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	d.Theme = p
	return nil
}

// CustomTheme builds a theme from a "#RRGGBB" hex string. The secondary
// color is the primary uniformly lightened: each channel +40, clamped to 255.
func CustomTheme(hex string) (Theme, error) {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return Theme{}, fmt.Errorf("%w: hex color must look like #RRGGBB", ErrBadFieldValue)
	}
	channels := make([]int, 3)
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: hex color must look like #RRGGBB", ErrBadFieldValue)
		}
		channels[i] = int(v)
	}
	lighten := func(c int) int {
		if c+40 > 255 {
			return 255
		}
		return c + 40
	}
	return Theme{
		Name:      "Custom",
		Primary:   fmt.Sprintf("%d %d %d", channels[0], channels[1], channels[2]),
		Secondary: fmt.Sprintf("%d %d %d", lighten(channels[0]), lighten(channels[1]), lighten(channels[2])),
		Hex:       hex,
	}, nil
}

func (d *Document) SetCustomTheme(hex string) error {
	t, err := CustomTheme(hex)
	if err != nil {
		return err
	}
	d.Theme = t
	return nil
}

// DefaultIcon is used when a social link names an icon the registry does
// not know.
const DefaultIcon = "Link"

var iconRegistry = map[string]struct{}{
	"Github": {}, "Twitter": {}, "Linkedin": {}, "Instagram": {}, "Facebook": {},
	"Phone": {}, "Mail": {}, "Figma": {}, "Code2": {}, "Terminal": {}, "Cpu": {},
	"PenTool": {}, "Workflow": {}, "Zap": {}, "Layout": {}, "Globe": {},
	"Smartphone": {}, "CheckCircle2": {}, "Gamepad2": {}, "FileSpreadsheet": {},
	"Video": {}, "Link": {}, "Circle": {}, "Sparkles": {},
}

func ResolveIcon(name string) string {
	if _, ok := iconRegistry[name]; ok {
		return name
	}
	return DefaultIcon
}
