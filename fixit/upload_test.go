package fixit

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEnum(t *testing.T) {
	assert.Equal(t, "plumbing", NormalizeEnum("Plumbing"))
	assert.Equal(t, "in_progress", NormalizeEnum(" IN_PROGRESS "))
	assert.Equal(t, "", NormalizeEnum(""))
}

func TestUploadField_ContractTable(t *testing.T) {
	assert.Equal(t, "documentFile", uploadField("leases.document"))
	assert.Equal(t, "mediaFiles", uploadField("requests.media"))
	assert.Equal(t, "media", uploadField("messages.media"))
	assert.Equal(t, "files", uploadField("media.upload"))

	assert.Panics(t, func() { uploadField("no.such.operation") })
}

func TestForm_EncodeMultipart(t *testing.T) {
	form := NewForm().
		Set("title", "Leak").
		SetEnum("category", "Plumbing").
		AddFiles("mediaFiles", []Upload{{Name: "sink.jpg", Content: strings.NewReader("jpegbytes")}})
	require.NoError(t, form.SetJSON("location", map[string]string{"floor": "2"}))

	body, contentType, err := form.encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])
	fields := map[string]string{}
	var fileField, fileName, fileContent string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			fileField = part.FormName()
			fileName = part.FileName()
			fileContent = string(data)
		} else {
			fields[part.FormName()] = string(data)
		}
	}

	assert.Equal(t, "Leak", fields["title"])
	assert.Equal(t, "plumbing", fields["category"], "enum fields must be lowercased")
	assert.JSONEq(t, `{"floor":"2"}`, fields["location"], "nested objects are JSON-stringified")
	assert.Equal(t, "mediaFiles", fileField)
	assert.Equal(t, "sink.jpg", fileName)
	assert.Equal(t, "jpegbytes", fileContent)
}

func TestForm_SkipsEmptyFields(t *testing.T) {
	form := NewForm().Set("present", "yes").Set("absent", "")
	body, contentType, err := form.encode()
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	reader := multipart.NewReader(body, params["boundary"])

	var names []string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, part.FormName())
	}
	assert.Equal(t, []string{"present"}, names)
}

func TestCreateRequest_WithFileSwitchesToMultipart(t *testing.T) {
	var gotContentType string
	var gotCategory, gotFileField string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotCategory = r.FormValue("category")
		for field := range r.MultipartForm.File {
			gotFileField = field
		}
		w.Write([]byte(`{}`))
	}))

	_, err := client.Requests.Create(context.Background(), RequestParams{
		Title:      "Leak",
		Category:   "Plumbing",
		PropertyID: uuid.New(),
	}, []Upload{{Name: "sink.jpg", Content: strings.NewReader("jpegbytes")}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"),
		"one attached file must switch the whole payload to multipart")
	assert.Equal(t, "plumbing", gotCategory)
	assert.Equal(t, "mediaFiles", gotFileField)
}

func TestCreateRequest_WithoutFilesStaysJSON(t *testing.T) {
	var gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))

	_, err := client.Requests.Create(context.Background(), RequestParams{
		Title:      "Leak",
		Category:   "Plumbing",
		PropertyID: uuid.New(),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
}

func TestLeaseUploadDocument_UsesDocumentFileField(t *testing.T) {
	var gotFileField string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field := range r.MultipartForm.File {
			gotFileField = field
		}
		w.Write([]byte(`{}`))
	}))

	_, err := client.Leases.UploadDocument(context.Background(), uuid.New(),
		Upload{Name: "lease.pdf", Content: strings.NewReader("pdfbytes")})
	require.NoError(t, err)
	assert.Equal(t, "documentFile", gotFileField)
}
