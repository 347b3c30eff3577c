package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpath/intake/internal/pkg/apperrors"
)

// makeFileHeader builds a real multipart.FileHeader around the content.
func makeFileHeader(t *testing.T, fieldName, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)

	headers := form.File[fieldName]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestNewLocalStorageCreatesDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")

	_, err := NewLocalStorage(root)
	require.NoError(t, err)

	for _, dir := range []string{"transcripts", "cvs", "photos"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveUpload(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	at := time.Unix(1700000000, 0)
	header := makeFileHeader(t, "cv", "resume.pdf", []byte("pdf bytes"))

	relPath, err := storage.SaveUpload(header, KindCV, 5, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("cvs", "5_cv_1700000000_resume.pdf"), relPath)

	content, err := os.ReadFile(filepath.Join(storage.BasePath(), relPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), content)
}

func TestSaveUploadRejectsDisallowedExtension(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := makeFileHeader(t, "cv", "resume.exe", []byte("nope"))

	_, err = storage.SaveUpload(header, KindCV, 5, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)

	// Nothing may be written for a rejected upload
	entries, readErr := os.ReadDir(filepath.Join(storage.BasePath(), KindCV.Dir()))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSaveUploadNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	relPath, err := storage.SaveUpload(nil, KindPhoto, 5, time.Now())
	require.NoError(t, err)
	assert.Empty(t, relPath)
}

func TestResolveDownload(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	stored := filepath.Join(storage.BasePath(), "photos", "1_photo_1_me.png")
	require.NoError(t, os.WriteFile(stored, []byte("png"), 0o644))

	path, err := storage.ResolveDownload(KindPhoto, "1_photo_1_me.png")
	require.NoError(t, err)
	assert.Equal(t, stored, path)
}

func TestResolveDownloadMissingFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.ResolveDownload(KindPhoto, "nothing-here.png")
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}

func TestResolveDownloadStripsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	// A secret outside the kind directory must stay unreachable
	secret := filepath.Join(storage.BasePath(), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	_, err = storage.ResolveDownload(KindPhoto, "../secret.txt")
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}
