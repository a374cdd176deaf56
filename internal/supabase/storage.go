package supabase

import (
	"bytes"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"printshop-backend/internal/models"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, key, bucket string) *StorageClient {
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", key, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Upload stores data at path. Existing objects are never overwritten.
func (s *StorageClient) Upload(path, contentType string, data []byte) error {
	upsert := false
	_, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

func (s *StorageClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

// PathFromURL recovers the object path from a public URL of this bucket.
func (s *StorageClient) PathFromURL(url string) (string, bool) {
	marker := "/" + s.bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}
	path := url[idx+len(marker):]
	if path == "" {
		return "", false
	}
	return path, true
}

func (s *StorageClient) Remove(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if _, err := s.client.RemoveFile(s.bucket, paths); err != nil {
		return fmt.Errorf("failed to remove files: %w", err)
	}
	return nil
}

// listPageSize is the number of entries requested per list call.
const listPageSize = 1000

// List returns the direct children of prefix. Folders come back without an
// object id. Pages are fetched until one comes back short.
func (s *StorageClient) List(prefix string) ([]models.StoredObject, error) {
	var objects []models.StoredObject

	for offset := 0; ; offset += listPageSize {
		files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
			Limit:  listPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list files at offset %d: %w", offset, err)
		}

		for _, file := range files {
			objects = append(objects, models.StoredObject{
				Name:   file.Name,
				Folder: file.Id == "",
			})
		}
		if len(files) < listPageSize {
			return objects, nil
		}
	}
}
