package boottime

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if entries == nil {
		entries = []Entry{}
	}
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
