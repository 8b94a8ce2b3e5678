package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "http://files.test/uploads/"})
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "resumes/u1/cv.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://files.test/uploads/resumes/u1/cv.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "resumes", "u1", "cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, s.Delete(context.Background(), "resumes/u1/cv.pdf"))
	_, err = os.Stat(filepath.Join(dir, "resumes", "u1", "cv.pdf"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(context.Background(), "resumes/u1/cv.pdf"))
}

func TestLocalStorageRejectsEscapingKey(t *testing.T) {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "../outside.txt", strings.NewReader("x"), "text/plain")
	assert.Error(t, err)
}

func TestNewUnsupportedType(t *testing.T) {
	_, err := New(Config{Type: "ftp"})
	assert.Error(t, err)
}

func TestNewS3RequiresBucket(t *testing.T) {
	_, err := New(Config{Type: "s3"})
	assert.Error(t, err)
}
