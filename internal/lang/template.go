package lang

import (
	"embed"
	"fmt"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template returns the starter buffer for a new tab in the given language.
// Languages without a bundled template get a short comment header.
func Template(id ID) string {
	data, err := templateFS.ReadFile("templates/" + string(id) + ".tmpl")
	if err == nil {
		return string(data)
	}
	return fmt.Sprintf("// Welcome to omnicode - %s\n\n// Your code here...\n", id.Name())
}

// HasTemplate reports whether a bundled template exists for id.
func HasTemplate(id ID) bool {
	_, err := templateFS.Open("templates/" + string(id) + ".tmpl")
	return err == nil
}
