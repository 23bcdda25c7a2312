package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader собирает multipart.FileHeader так же,
// как он приходит из разобранной формы
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="proof"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["proof"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSave(t *testing.T) {
	t.Run("saves png under public prefix", func(t *testing.T) {
		dir := t.TempDir()
		saver := NewSaver(dir, "/uploads/proofs", 1<<20)

		content := []byte("png-bytes")
		publicPath, err := saver.Save(makeFileHeader(t, "receipt.png", "image/png", content))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(publicPath, "/uploads/proofs/"))
		assert.True(t, strings.HasSuffix(publicPath, ".png"))

		stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(publicPath)))
		require.NoError(t, err)
		assert.Equal(t, content, stored)
	})

	t.Run("extension follows content type not filename", func(t *testing.T) {
		saver := NewSaver(t.TempDir(), "/uploads/proofs", 1<<20)

		publicPath, err := saver.Save(makeFileHeader(t, "receipt.exe", "image/jpeg", []byte("jpeg")))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(publicPath, ".jpg"))
	})

	t.Run("rejects oversize file and leaves no trace", func(t *testing.T) {
		dir := t.TempDir()
		saver := NewSaver(dir, "/uploads/proofs", 16)

		_, err := saver.Save(makeFileHeader(t, "big.png", "image/png", bytes.Repeat([]byte("x"), 64)))
		require.ErrorIs(t, err, ErrFileTooLarge)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		saver := NewSaver(t.TempDir(), "/uploads/proofs", 1<<20)

		_, err := saver.Save(makeFileHeader(t, "receipt.pdf", "application/pdf", []byte("pdf")))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	saver := NewSaver(dir, "/uploads/proofs", 1<<20)

	publicPath, err := saver.Save(makeFileHeader(t, "receipt.png", "image/png", []byte("png")))
	require.NoError(t, err)

	require.NoError(t, saver.Remove(publicPath))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(publicPath)))
	assert.True(t, os.IsNotExist(err))

	// повторное удаление - ошибка, файла уже нет
	assert.Error(t, saver.Remove(publicPath))

	// путь без имени файла не должен трогать директорию
	assert.Error(t, saver.Remove("/"))
}
