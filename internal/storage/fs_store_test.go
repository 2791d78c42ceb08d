package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFSStore_PutAndPublicURL(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), "http://localhost:5000/")
	assert.NoError(t, err)

	content := []byte("jpeg bytes")
	err = store.Put(context.Background(), "products/1693526400000_ab12cd34.jpg", bytes.NewReader(content), "image/jpeg")
	assert.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(store.Root(), "products", "1693526400000_ab12cd34.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, content, stored)

	url := store.PublicURL("products/1693526400000_ab12cd34.jpg")
	assert.Equal(t, "http://localhost:5000/storage/products/1693526400000_ab12cd34.jpg", url)
}

func TestFSStore_PutNeverOverwrites(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), "http://localhost:5000")
	assert.NoError(t, err)

	err = store.Put(context.Background(), "products/x.jpg", bytes.NewReader([]byte("first")), "image/jpeg")
	assert.NoError(t, err)

	err = store.Put(context.Background(), "products/x.jpg", bytes.NewReader([]byte("second")), "image/jpeg")
	assert.Error(t, err)

	// the original object is untouched
	stored, readErr := os.ReadFile(filepath.Join(store.Root(), "products", "x.jpg"))
	assert.NoError(t, readErr)
	assert.Equal(t, []byte("first"), stored)
}

func TestFSStore_LargeUpload(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), "http://localhost:5000")
	assert.NoError(t, err)

	// 2MB payload, the size of a typical product photo
	payload := bytes.Repeat([]byte{0xff}, 2<<20)
	err = store.Put(context.Background(), "products/big.jpg", bytes.NewReader(payload), "image/jpeg")
	assert.NoError(t, err)

	info, err := os.Stat(filepath.Join(store.Root(), "products", "big.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, int64(len(payload)), info.Size())
}
