// Package schemas embeds the JSON Schemas for the documents the CLI and API accept and emit.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names
const (
	RawResume = "raw_resume.schema.json"
	Resume    = "resume.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the contents of an embedded schema file
func Load(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}
