package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-dev/weft/internal/domain/entities"
)

func TestYAMLParserSingleRecord(t *testing.T) {
	input := `
name: James Minahan
type: person
jobTitle: harbourmaster
birthPlace:
  name: Rivermouth
`

	records, err := (&YAMLParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "James Minahan", rec.Name)
	assert.Equal(t, "person", rec.Type)
	assert.Equal(t, entities.ScalarValue("harbourmaster"), rec.Properties["jobTitle"])

	birthPlace := rec.Properties["birthPlace"]
	require.Equal(t, entities.KindReference, birthPlace.Kind)
	assert.Equal(t, "Rivermouth", birthPlace.Ref.Name)
}

func TestYAMLParserRecordList(t *testing.T) {
	input := `
- name: James Minahan
  type: person
- name: Rivermouth
  type: place
`

	records, err := (&YAMLParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "James Minahan", records[0].Name)
	assert.Equal(t, "Rivermouth", records[1].Name)
}

func TestYAMLParserMissingName(t *testing.T) {
	_, err := (&YAMLParser{}).Parse(strings.NewReader("type: person\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestJSONParserRecord(t *testing.T) {
	input := `{
		"name": "Pier 14",
		"type": "place",
		"length": 120,
		"draught": 4.5
	}`

	records, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Pier 14", rec.Name)
	// Integers stay integers regardless of the source format.
	assert.Equal(t, entities.ScalarValue(120), rec.Properties["length"])
	assert.Equal(t, entities.ScalarValue(4.5), rec.Properties["draught"])
}

func TestJSONParserArray(t *testing.T) {
	input := `[{"name": "a", "type": "person"}, {"name": "b", "type": "place"}]`

	records, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestJSONParserInvalidInput(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader("{not json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestCSVParser(t *testing.T) {
	input := "name,type,id,jobTitle\nJames Minahan,person,,harbourmaster\nRivermouth,place,https://elsewhere.net/rivermouth/,\n"

	records, err := (&CSVParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "James Minahan", records[0].Name)
	assert.Equal(t, entities.ScalarValue("harbourmaster"), records[0].Properties["jobTitle"])
	assert.Empty(t, records[0].ID)

	assert.Equal(t, "https://elsewhere.net/rivermouth/", records[1].ID)
	// The empty jobTitle cell produces no property at all.
	_, ok := records[1].Properties["jobTitle"]
	assert.False(t, ok)
}

func TestCSVParserMissingRequiredColumn(t *testing.T) {
	_, err := (&CSVParser{}).Parse(strings.NewReader("name,jobTitle\nJames,harbourmaster\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column: type")
}

func TestRecordFromRaw(t *testing.T) {
	rec, err := RecordFromRaw(map[string]any{
		"name":  "James Minahan",
		"type":  "person",
		"id":    "https://elsewhere.net/james/",
		"birth": 1871,
	})
	require.NoError(t, err)

	assert.Equal(t, "James Minahan", rec.Name)
	assert.Equal(t, "person", rec.Type)
	assert.Equal(t, "https://elsewhere.net/james/", rec.ID)
	assert.Equal(t, entities.ScalarValue(1871), rec.Properties["birth"])
	_, hasName := rec.Properties["name"]
	assert.False(t, hasName)
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, ForFormat("yaml"))
	assert.IsType(t, &YAMLParser{}, ForFormat("YML"))
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &CSVParser{}, ForFormat("csv"))
	assert.Nil(t, ForFormat("toml"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, ForFile("records/people.yaml"))
	assert.IsType(t, &YAMLParser{}, ForFile("people.YML"))
	assert.IsType(t, &JSONParser{}, ForFile("people.json"))
	assert.IsType(t, &CSVParser{}, ForFile("people.csv"))
	assert.Nil(t, ForFile("notes.txt"))
}
