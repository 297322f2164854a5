package mistral

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// maxImageBytes gates how large an attachment we are willing to inline.
const maxImageBytes = 10 << 20

func readAsDataURL(path string) (string, string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", "", err
	}
	if st.IsDir() || st.Size() > maxImageBytes {
		return "", "", os.ErrInvalid
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}
