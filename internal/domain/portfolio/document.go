package portfolio

import (
	"errors"
	"math/rand"
	"slices"
)

// Document is the aggregate root holding all portfolio content. Section
// names used by the edit operations match the json keys below.
type Document struct {
	Personal     Personal      `json:"personal"`
	Theme        Theme         `json:"theme"`
	Socials      []SocialLink  `json:"socials"`
	Projects     []Project     `json:"projects"`
	Stack        []string      `json:"stack"`
	Experience   []Experience  `json:"experience"`
	Services     []string      `json:"services"`
	Process      []ProcessStep `json:"process"`
	GameSettings GameSettings  `json:"gameSettings"`
	Pricing      []PricingPlan `json:"pricing"`
	FAQs         []FAQ         `json:"faqs"`
	Testimonials []Testimonial `json:"testimonials"`
}

type StatPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Personal struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         string     `json:"role"`
	Tagline      string     `json:"tagline"`
	Bio          string     `json:"bio"`
	Location     string     `json:"location"`
	AvatarURL    string     `json:"avatarUrl"`
	Availability string     `json:"availability"`
	Email        string     `json:"email"`
	Stats        []StatPair `json:"stats"`
}

// Theme colors are space-separated RGB component triples like "249 115 22";
// Hex is the display form shown in the editor. The three stay populated
// together: presets carry all of them and the custom path derives them.
type Theme struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Hex       string `json:"hex"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Username string `json:"username"`
}

type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	Link        string   `json:"link"`
	Featured    bool     `json:"featured"`
	Year        string   `json:"year"`
}

type ProcessStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type PricingPlan struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     string   `json:"price"`
	Period    string   `json:"period"`
	Features  []string `json:"features"`
	Highlight bool     `json:"highlight"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	AvatarURL string `json:"avatarUrl"`
}

type GameSettingRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type GameConfig struct {
	Game       string           `json:"game"`
	Experience string           `json:"experience"`
	Settings   []GameSettingRow `json:"settings"`
}

// GameSettings has exactly two fixed slots, not a general list.
type GameSettings struct {
	FreeFire GameConfig `json:"freeFire"`
	Valorant GameConfig `json:"valorant"`
}

var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownGameSlot = errors.New("unknown game slot")
	ErrImmutableField  = errors.New("identifier fields cannot be changed")
	ErrBadFieldValue   = errors.New("value does not match field type")
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a 9-character base36 token. Collision probability across a
// single list is negligible; this is not a cryptographic identifier.
func NewID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// Clone returns a deep copy. Callers of the content repository receive
// clones so the shared document is never mutated in place.
func (d Document) Clone() Document {
	c := d
	c.Personal.Stats = slices.Clone(d.Personal.Stats)
	c.Socials = slices.Clone(d.Socials)
	c.Projects = slices.Clone(d.Projects)
	for i := range c.Projects {
		c.Projects[i].Tags = slices.Clone(c.Projects[i].Tags)
	}
	c.Stack = slices.Clone(d.Stack)
	c.Experience = slices.Clone(d.Experience)
	c.Services = slices.Clone(d.Services)
	c.Process = slices.Clone(d.Process)
	c.GameSettings.FreeFire.Settings = slices.Clone(d.GameSettings.FreeFire.Settings)
	c.GameSettings.Valorant.Settings = slices.Clone(d.GameSettings.Valorant.Settings)
	c.Pricing = slices.Clone(d.Pricing)
	for i := range c.Pricing {
		c.Pricing[i].Features = slices.Clone(c.Pricing[i].Features)
	}
	c.FAQs = slices.Clone(d.FAQs)
	c.Testimonials = slices.Clone(d.Testimonials)
	return c
}
