package services

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories/memory"
)

// Shared fixtures: an in-memory store plus helpers mirroring the demo data
// the init endpoint seeds.

func seedMember(t *testing.T, store *memory.Store, nickname, email string) *models.Member {
	t.Helper()
	member := &models.Member{
		Nickname:     nickname,
		Email:        email,
		PasswordHash: "$2a$10$fake-hash",
		Coin:         100000,
	}
	require.NoError(t, store.MemberRepository().Create(context.Background(), member))
	return member
}

func seedDog(t *testing.T, store *memory.Store, ownerID int64, name string) *models.Dog {
	t.Helper()
	dog := &models.Dog{
		Breed:    "푸들",
		Name:     name,
		Image:    "이미지1",
		Sex:      "수컷",
		Size:     "대형견",
		MemberID: ownerID,
	}
	require.NoError(t, store.DogRepository().Create(context.Background(), dog))
	return dog
}

func seedNotification(t *testing.T, store *memory.Store, dogID int64, title string) *models.Notification {
	t.Helper()
	start := time.Date(2023, time.October, 13, 22, 36, 0, 0, time.UTC)
	n := &models.Notification{
		Title:       title,
		Significant: "우리 아이는 착해용",
		Lat:         34.25,
		Lng:         43.1,
		Coin:        40000,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		DogID:       dogID,
	}
	require.NoError(t, store.NotificationRepository().Create(context.Background(), n))
	return n
}

func seedApplication(t *testing.T, store *memory.Store, memberID, notificationID int64) *models.Application {
	t.Helper()
	a := &models.Application{
		MemberID:       memberID,
		NotificationID: notificationID,
		Status:         models.ApplicationStatusPending,
	}
	require.NoError(t, store.ApplicationRepository().Create(context.Background(), a))
	return a
}

// fakeStorage keeps saved blobs in memory and hands out /files/<path> URLs.
type fakeStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeStorage) URL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

func testImageService(store *fakeStorage) *ImageService {
	return NewImageService(store, 10*1024*1024, []string{"image/jpeg", "image/png"})
}

func testImage() *ImageUpload {
	return &ImageUpload{
		Reader:      bytes.NewReader([]byte("fake-image-bytes")),
		Filename:    "dog.jpg",
		ContentType: "image/jpeg",
		Size:        16,
	}
}
