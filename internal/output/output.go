package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	findfolder "github.com/PistonDevelopers/find-folder"
)

const (
	KindNotFound = "not_found"
	KindIO       = "io"
)

type Document struct {
	Generator string    `json:"generator"`
	Created   time.Time `json:"created"`
	Name      string    `json:"name"`
	Search    string    `json:"search"`
	From      string    `json:"from"`
	Found     bool      `json:"found"`
	Path      string    `json:"path,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
}

// NewDocument describes the outcome of searching for name from dir.
func NewDocument(name string, search findfolder.Search, from, path string, err error) Document {
	doc := Document{
		Generator: "find-folder",
		Created:   time.Now(),
		Name:      name,
		Search:    search.String(),
		From:      from,
		Found:     err == nil,
		Path:      path,
	}

	if err != nil {
		doc.Path = ""
		doc.Error = err.Error()
		doc.ErrorKind = KindIO
		if findfolder.IsNotFound(err) {
			doc.ErrorKind = KindNotFound
		}
	}

	return doc
}

func Write(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
