package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"

	"dogwalking_backend/internal/imageprocessor"
	"dogwalking_backend/internal/storage"
	"dogwalking_backend/pkg/apperrors"
)

// ImageUpload is an incoming image part, decoupled from multipart internals
// so services stay testable without HTTP.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// ImageService stores uploaded images and hands back the public reference
// string the domain keeps.
type ImageService struct {
	store        storage.Storage
	normalizer   *imageprocessor.Normalizer
	maxSize      int64
	allowedTypes []string
}

func NewImageService(store storage.Storage, maxSize int64, allowedTypes []string) *ImageService {
	return &ImageService{
		store:        store,
		normalizer:   imageprocessor.NewNormalizer(1600, 85),
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

// Store validates and persists the image under a generated name, returning
// its public URL.
func (s *ImageService) Store(ctx context.Context, prefix string, image *ImageUpload) (string, error) {
	if image == nil || image.Reader == nil {
		return "", apperrors.ErrImageNotProvided
	}
	if s.maxSize > 0 && image.Size > s.maxSize {
		return "", apperrors.ValidationError("이미지 용량이 너무 큽니다.")
	}
	if !s.typeAllowed(image.ContentType) {
		return "", apperrors.ValidationError("지원하지 않는 이미지 형식입니다.")
	}

	body, _, err := s.normalizer.Normalize(image.Reader)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "이미지 저장에 실패했습니다.", http.StatusInternalServerError)
	}

	name := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(image.Filename))
	if err := s.store.Save(ctx, name, body, image.ContentType); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "이미지 저장에 실패했습니다.", http.StatusInternalServerError)
	}

	url, err := s.store.URL(ctx, name)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "storage", "이미지 저장에 실패했습니다.", http.StatusInternalServerError)
	}
	return url, nil
}

func (s *ImageService) typeAllowed(contentType string) bool {
	if len(s.allowedTypes) == 0 {
		return true
	}
	for _, t := range s.allowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
