package export

import (
	"encoding/json"
	"os"

	"github.com/owowisp/mosswright/internal/seedoutput"
)

// ExportJSON serializes a full generation universe to indented JSON,
// suitable for archiving alongside a generated seed for later inspection.
func ExportJSON(universe *seedoutput.SeedUniverse) ([]byte, error) {
	return json.MarshalIndent(universe, "", "  ")
}

// ExportJSONCompact serializes the universe without indentation.
func ExportJSONCompact(universe *seedoutput.SeedUniverse) ([]byte, error) {
	return json.Marshal(universe)
}

// SaveJSONToFile writes the indented JSON form to path with 0644
// permissions.
func SaveJSONToFile(universe *seedoutput.SeedUniverse, path string) error {
	data, err := ExportJSON(universe)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ExportSpoilerJSON serializes just the spoiler log, the piece a player
// asking "where did my starting item go" actually wants to read.
func ExportSpoilerJSON(spoiler *seedoutput.SeedSpoiler) ([]byte, error) {
	return json.MarshalIndent(spoiler, "", "  ")
}

// SaveSpoilerJSONToFile writes the spoiler log to path with 0644
// permissions.
func SaveSpoilerJSONToFile(spoiler *seedoutput.SeedSpoiler, path string) error {
	data, err := ExportSpoilerJSON(spoiler)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
