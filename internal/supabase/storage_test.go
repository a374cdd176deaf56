package supabase_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/supabase"
)

func TestStorageClient_PublicURL(t *testing.T) {
	client := supabase.NewStorageClient("https://project.supabase.co/", "key", "documentos")

	url := client.PublicURL("12/1700000000000_syllabus.pdf")
	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/documentos/12/1700000000000_syllabus.pdf", url)
}

func TestStorageClient_PathFromURL(t *testing.T) {
	client := supabase.NewStorageClient("https://project.supabase.co", "key", "documentos")

	path, ok := client.PathFromURL(client.PublicURL("12/1700000000000_syllabus.pdf"))
	assert.True(t, ok)
	assert.Equal(t, "12/1700000000000_syllabus.pdf", path)

	_, ok = client.PathFromURL("https://elsewhere.example.com/file.pdf")
	assert.False(t, ok)

	_, ok = client.PathFromURL("https://project.supabase.co/storage/v1/object/public/documentos/")
	assert.False(t, ok)
}

func TestStorageClient_RemoveNothing(t *testing.T) {
	client := supabase.NewStorageClient("https://project.supabase.co", "key", "documentos")
	assert.NoError(t, client.Remove())
}

func folderServer(t *testing.T, total int, calls *int32, offsets *[]int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/storage/v1/object/list/documentos", r.URL.Path)

		var body struct {
			Limit  int    `json:"limit"`
			Offset int    `json:"offset"`
			Prefix string `json:"prefix"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "1", body.Prefix)
		*offsets = append(*offsets, body.Offset)

		entries := []map[string]string{}
		for i := body.Offset; i < total && i < body.Offset+body.Limit; i++ {
			entries = append(entries, map[string]string{
				"name": fmt.Sprintf("%013d_doc.pdf", i),
				"id":   fmt.Sprintf("obj-%d", i),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	}))
}

func TestStorageClient_ListPagesThroughFolder(t *testing.T) {
	var (
		calls   int32
		offsets []int
	)
	server := folderServer(t, 2500, &calls, &offsets)
	defer server.Close()

	client := supabase.NewStorageClient(server.URL, "key", "documentos")
	objects, err := client.List("1")

	require.NoError(t, err)
	assert.Len(t, objects, 2500)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []int{0, 1000, 2000}, offsets)
	assert.Equal(t, "0000000002499_doc.pdf", objects[2499].Name)
	assert.False(t, objects[0].Folder)
}

func TestStorageClient_ListExactPageBoundary(t *testing.T) {
	var (
		calls   int32
		offsets []int
	)
	server := folderServer(t, 1000, &calls, &offsets)
	defer server.Close()

	client := supabase.NewStorageClient(server.URL, "key", "documentos")
	objects, err := client.List("1")

	require.NoError(t, err)
	assert.Len(t, objects, 1000)
	assert.Equal(t, []int{0, 1000}, offsets)
}
