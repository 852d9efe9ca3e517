package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(Defaults())
	require.NoError(t, err)
	return raw
}

func Test_Parse_AcceptsSerializedDefaults(t *testing.T) {
	doc, err := Parse(validRaw(t))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), doc)
}

func Test_Parse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func Test_Parse_RejectsMissingSection(t *testing.T) {
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(validRaw(t), &m))
	delete(m, "projects")
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Parse(raw)
	require.ErrorIs(t, err, ErrInvalidFormat)
	assert.Contains(t, err.Error(), "projects")
}

func Test_Parse_RejectsWrongSectionKind(t *testing.T) {
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(validRaw(t), &m))
	m["socials"] = json.RawMessage(`{"oops": true}`)
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Parse(raw)
	require.ErrorIs(t, err, ErrInvalidFormat)
	assert.Contains(t, err.Error(), "socials")
}

func Test_Parse_RejectsMistypedField(t *testing.T) {
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(validRaw(t), &m))
	m["stack"] = json.RawMessage(`[1, 2, 3]`)
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func Test_Parse_RejectsPartialTheme(t *testing.T) {
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(validRaw(t), &m))
	m["theme"] = json.RawMessage(`{"name": "Custom", "primary": "1 2 3"}`)
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = Parse(raw)
	require.ErrorIs(t, err, ErrInvalidFormat)
	assert.Contains(t, err.Error(), "theme")
}

func Test_Parse_NormalizesNilSlices(t *testing.T) {
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(validRaw(t), &m))
	m["faqs"] = json.RawMessage(`[]`)
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	doc, err := Parse(raw)
	require.NoError(t, err)
	assert.NotNil(t, doc.FAQs)
	assert.Empty(t, doc.FAQs)
}
