package boottime

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func writeCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write(e.row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, e := range entries {
		row := e.row()
		// Tabs and newlines in a message would break the columns.
		row[2] = strings.NewReplacer("\t", " ", "\n", " ").Replace(row[2])
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
