package fixit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

// uploadFields is the upload contract table: operation -> multipart field
// name expected by the backend's upload middleware. The names are
// inconsistent across endpoints because the backend routes evolved
// independently; changing one side without the other breaks uploads
// silently, so the table lives here in one place.
var uploadFields = map[string]string{
	"leases.document":  "documentFile",
	"requests.media":   "mediaFiles",
	"messages.media":   "media",
	"media.upload":     "files",
	"scheduled.media":  "mediaFiles",
	"users.avatar":     "media",
	"vendors.document": "documentFile",
}

// uploadField looks up the multipart field name for an operation.
// A missing entry is a programming error in this SDK, not a runtime
// condition, hence the panic.
func uploadField(operation string) string {
	field, ok := uploadFields[operation]
	if !ok {
		panic(fmt.Sprintf("fixit: no upload field registered for operation %q", operation))
	}
	return field
}

// NormalizeEnum lowercases an enum-valued field (role, status, category,
// priority, contextType) before transmission. The backend stores enums as
// case-sensitive lowercase strings while callers often pass display-cased
// values.
func NormalizeEnum(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Upload is one file attachment: the filename reported to the backend and a
// reader for its content.
type Upload struct {
	Name    string
	Content io.Reader
}

// Form accumulates fields and file attachments for a multipart request.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key, value string
}

type formFile struct {
	field, name string
	content     io.Reader
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Set adds a plain text field. Empty values are skipped so optional params
// do not overwrite backend defaults with blanks.
func (f *Form) Set(key, value string) *Form {
	if value != "" {
		f.fields = append(f.fields, formField{key, value})
	}
	return f
}

// SetEnum adds an enum-valued field, lowercased per the backend contract.
func (f *Form) SetEnum(key, value string) *Form {
	return f.Set(key, NormalizeEnum(value))
}

// SetJSON adds a nested object as a JSON-stringified form field, since
// multipart fields are flat text.
func (f *Form) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode form field %s: %w", key, err)
	}
	f.fields = append(f.fields, formField{key, string(data)})
	return nil
}

// AddFiles attaches uploads under the operation's contract field name.
func (f *Form) AddFiles(field string, uploads []Upload) *Form {
	for _, u := range uploads {
		f.files = append(f.files, formFile{field: field, name: u.Name, content: u.Content})
	}
	return f
}

// HasFiles reports whether at least one file is attached, which is what
// flips an operation from JSON to multipart encoding.
func (f *Form) HasFiles() bool {
	return len(f.files) > 0
}

// encode serializes the form as a multipart body and returns it with its
// content type (which carries the boundary).
func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", field.key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.name)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %s: %w", file.name, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", fmt.Errorf("write form file %s: %w", file.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
