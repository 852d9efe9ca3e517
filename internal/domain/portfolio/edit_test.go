package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddItem_AssignsFreshID(t *testing.T) {
	doc := Defaults()
	require.Len(t, doc.Projects, 3)

	err := doc.AddItem("projects")
	require.NoError(t, err)

	require.Len(t, doc.Projects, 4)
	added := doc.Projects[3]
	assert.Len(t, added.ID, 9)
	for _, existing := range doc.Projects[:3] {
		assert.NotEqual(t, existing.ID, added.ID)
	}
	assert.Equal(t, "New Project", added.Title)
}

func Test_AddItem_IDsUniqueWithinSection(t *testing.T) {
	doc := Defaults()
	for i := 0; i < 20; i++ {
		require.NoError(t, doc.AddItem("faqs"))
	}

	seen := make(map[string]bool)
	for _, f := range doc.FAQs {
		assert.NotEmpty(t, f.ID)
		assert.False(t, seen[f.ID], "duplicate id %q", f.ID)
		seen[f.ID] = true
	}
}

func Test_AddItem_SocialTemplateHasNoID(t *testing.T) {
	doc := Defaults()
	require.NoError(t, doc.AddItem("socials"))

	added := doc.Socials[len(doc.Socials)-1]
	assert.Equal(t, "Platform", added.Platform)
	assert.Equal(t, "Link", added.Icon)
}

func Test_AddItem_UnknownSection(t *testing.T) {
	doc := Defaults()
	err := doc.AddItem("stack")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func Test_DeleteItem_PreservesOrder(t *testing.T) {
	doc := Defaults()
	require.Len(t, doc.Experience, 3)

	require.NoError(t, doc.DeleteItem("experience", 1))

	require.Len(t, doc.Experience, 2)
	assert.Equal(t, "1", doc.Experience[0].ID)
	assert.Equal(t, "3", doc.Experience[1].ID)
}

func Test_DeleteItem_OutOfRangeIsNoOp(t *testing.T) {
	doc := Defaults()

	require.NoError(t, doc.DeleteItem("projects", 99))
	require.NoError(t, doc.DeleteItem("projects", -1))

	assert.Equal(t, Defaults().Projects, doc.Projects)
}

func Test_PatchField_String(t *testing.T) {
	doc := Defaults()

	err := doc.PatchField("projects", 0, "title", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", doc.Projects[0].Title)
}

func Test_PatchField_Bool(t *testing.T) {
	doc := Defaults()

	err := doc.PatchField("projects", 2, "featured", false)
	require.NoError(t, err)
	assert.False(t, doc.Projects[2].Featured)
}

func Test_PatchField_StringListFromText(t *testing.T) {
	doc := Defaults()

	err := doc.PatchField("projects", 0, "tags", " HTML, CSS ,React")
	require.NoError(t, err)
	assert.Equal(t, []string{"HTML", "CSS", "React"}, doc.Projects[0].Tags)
}

func Test_PatchField_FeaturesDropEmptyLines(t *testing.T) {
	doc := Defaults()

	err := doc.PatchField("pricing", 0, "features", "First\n\nSecond\n   \nThird,")
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second", "Third"}, doc.Pricing[0].Features)
}

func Test_PatchField_IDIsImmutable(t *testing.T) {
	doc := Defaults()

	err := doc.PatchField("projects", 0, "id", "hijacked")
	assert.ErrorIs(t, err, ErrImmutableField)
	assert.Equal(t, "p1", doc.Projects[0].ID)
}

func Test_PatchField_Errors(t *testing.T) {
	doc := Defaults()

	assert.ErrorIs(t, doc.PatchField("nope", 0, "title", "x"), ErrUnknownSection)
	assert.ErrorIs(t, doc.PatchField("projects", 42, "title", "x"), ErrBadFieldValue)
	assert.ErrorIs(t, doc.PatchField("projects", 0, "nope", "x"), ErrUnknownField)
	assert.ErrorIs(t, doc.PatchField("projects", 0, "title", 7), ErrBadFieldValue)
	assert.ErrorIs(t, doc.PatchField("projects", 0, "featured", "yes"), ErrBadFieldValue)
}

func Test_SplitList(t *testing.T) {
	assert.Equal(t, []string{"HTML", "CSS", "React"}, SplitList(" HTML, CSS ,React"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,,b,"))
	assert.Equal(t, []string{"one", "two"}, SplitList("one\ntwo\n"))
	assert.Empty(t, SplitList("  ,  \n , "))
}

func Test_SetPersonalField(t *testing.T) {
	doc := Defaults()

	require.NoError(t, doc.SetPersonalField("tagline", "New tagline"))
	assert.Equal(t, "New tagline", doc.Personal.Tagline)

	assert.ErrorIs(t, doc.SetPersonalField("stats", "x"), ErrBadFieldValue)
	assert.ErrorIs(t, doc.SetPersonalField("nope", "x"), ErrUnknownField)
}

func Test_Stats_AddPatchDelete(t *testing.T) {
	doc := Defaults()
	before := len(doc.Personal.Stats)

	doc.AddStat()
	require.Len(t, doc.Personal.Stats, before+1)

	require.NoError(t, doc.PatchStat(before, "label", "Coffee"))
	require.NoError(t, doc.PatchStat(before, "value", "Too much"))
	assert.Equal(t, StatPair{Label: "Coffee", Value: "Too much"}, doc.Personal.Stats[before])

	doc.DeleteStat(before)
	assert.Len(t, doc.Personal.Stats, before)

	doc.DeleteStat(99)
	assert.Len(t, doc.Personal.Stats, before)
}

func Test_SetStackAndServices(t *testing.T) {
	doc := Defaults()

	doc.SetStack("Go, Postgres ,Redis")
	assert.Equal(t, []string{"Go", "Postgres", "Redis"}, doc.Stack)

	doc.SetServices("Consulting")
	assert.Equal(t, []string{"Consulting"}, doc.Services)
}

func Test_GameSettings_Ops(t *testing.T) {
	doc := Defaults()

	require.NoError(t, doc.SetGameInfo("valorant", "experience", "6+ Years"))
	assert.Equal(t, "6+ Years", doc.GameSettings.Valorant.Experience)

	rows := len(doc.GameSettings.FreeFire.Settings)
	require.NoError(t, doc.AddGameSettingRow("freeFire"))
	require.Len(t, doc.GameSettings.FreeFire.Settings, rows+1)

	require.NoError(t, doc.PatchGameSettingRow("freeFire", rows, "label", "Headset"))
	assert.Equal(t, "Headset", doc.GameSettings.FreeFire.Settings[rows].Label)

	require.NoError(t, doc.DeleteGameSettingRow("freeFire", rows))
	assert.Len(t, doc.GameSettings.FreeFire.Settings, rows)

	// out of range delete is a no-op
	require.NoError(t, doc.DeleteGameSettingRow("freeFire", 999))
	assert.Len(t, doc.GameSettings.FreeFire.Settings, rows)

	assert.ErrorIs(t, doc.SetGameInfo("csgo", "game", "x"), ErrUnknownGameSlot)
	assert.ErrorIs(t, doc.SetGameInfo("valorant", "nope", "x"), ErrUnknownField)
}

func Test_Theme_Preset(t *testing.T) {
	doc := Defaults()

	require.NoError(t, doc.SetThemePreset("Royal Blue"))
	assert.Equal(t, "96 165 250", doc.Theme.Primary)
	assert.Equal(t, "#60A5FA", doc.Theme.Hex)

	assert.ErrorIs(t, doc.SetThemePreset("Hot Pink"), ErrUnknownPreset)
}

func Test_Theme_CustomDerivesSecondary(t *testing.T) {
	doc := Defaults()

	require.NoError(t, doc.SetCustomTheme("#F97316"))
	assert.Equal(t, "Custom", doc.Theme.Name)
	assert.Equal(t, "249 115 22", doc.Theme.Primary)
	// each channel +40, clamped to 255
	assert.Equal(t, "255 155 62", doc.Theme.Secondary)
	assert.Equal(t, "#F97316", doc.Theme.Hex)
}

func Test_Theme_CustomRejectsBadHex(t *testing.T) {
	doc := Defaults()

	assert.ErrorIs(t, doc.SetCustomTheme("F97316"), ErrBadFieldValue)
	assert.ErrorIs(t, doc.SetCustomTheme("#XYZ123"), ErrBadFieldValue)
	assert.ErrorIs(t, doc.SetCustomTheme("#FFF"), ErrBadFieldValue)
}

func Test_ResolveIcon(t *testing.T) {
	assert.Equal(t, "Github", ResolveIcon("Github"))
	assert.Equal(t, DefaultIcon, ResolveIcon("NotAnIcon"))
}

func Test_Clone_IsDeep(t *testing.T) {
	doc := Defaults()
	clone := doc.Clone()

	clone.Projects[0].Tags[0] = "mutated"
	clone.Personal.Stats[0].Label = "mutated"
	clone.Pricing[0].Features[0] = "mutated"

	assert.Equal(t, "Video Editing", doc.Projects[0].Tags[0])
	assert.Equal(t, "Esports Level", doc.Personal.Stats[0].Label)
	assert.Equal(t, "Data Entry & Cleaning", doc.Pricing[0].Features[0])
}
