// Package filex handles the one file-system concern of the form: turning
// a selected image file into its textual data-URI representation so the
// record can carry the image inline.
package filex

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// DataURI reads the file at path and returns it encoded as
// "data:<mime>;base64,<payload>". The media type is sniffed from the
// file content, not the extension.
func DataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("read %s: file is empty", path)
	}

	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
