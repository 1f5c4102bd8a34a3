package testutil

import (
	"context"
	"strings"
	"sync"
)

const FakeMediaURL = "https://media.test/"

// FakeS3 records uploads and deletes in memory instead of talking to S3.
type FakeS3 struct {
	mu       sync.Mutex
	Uploaded []string
	Deleted  []string
}

func (s *FakeS3) UploadFile(_ context.Context, fileName string, _ []byte, folder string, _ ...string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := folder + "/" + fileName + ".png"
	s.Uploaded = append(s.Uploaded, key)
	return key, nil
}

func (s *FakeS3) DeleteFile(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Deleted = append(s.Deleted, objectKey)
	return nil
}

func (s *FakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, FakeMediaURL)
}

func (s *FakeS3) GetPublicLinkKey(objectKey string) string {
	return FakeMediaURL + objectKey
}
