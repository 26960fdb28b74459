package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/repositories/memory"
	"dogwalking_backend/pkg/apperrors"
)

func dogForm() *dto.DogForm {
	return &dto.DogForm{
		Breed: "푸들",
		Name:  "강쥐",
		Sex:   "수컷",
		Size:  "대형견",
	}
}

func TestRegisterDog_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	owner := seedMember(t, store, "닉네임1", "owner@test.com")

	svc := NewDogService(store.DogRepository(), testImageService(newFakeStorage()))
	ctx := context.Background()

	summary, err := svc.RegisterDog(ctx, owner.ID, dogForm(), testImage())
	require.NoError(t, err)
	assert.NotZero(t, summary.DogID)
	assert.Equal(t, "강쥐", summary.Name)
	assert.True(t, strings.HasPrefix(summary.Image, "/files/dogs/"))

	detail, err := svc.GetDog(ctx, summary.DogID)
	require.NoError(t, err)
	assert.Equal(t, "푸들", detail.Breed)
	assert.Equal(t, owner.ID, detail.OwnerID)
	assert.Equal(t, "닉네임1", detail.OwnerNickname)

	mine, err := svc.ListMyDogs(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, summary.DogID, mine[0].DogID)
}

func TestRegisterDog_ImageRequired(t *testing.T) {
	store := memory.NewStore()
	owner := seedMember(t, store, "닉네임1", "owner@test.com")

	svc := NewDogService(store.DogRepository(), testImageService(newFakeStorage()))

	_, err := svc.RegisterDog(context.Background(), owner.ID, dogForm(), nil)
	assert.ErrorIs(t, err, apperrors.ErrImageNotProvided)
}

func TestUpdateDog_KeepsImageWhenAbsent(t *testing.T) {
	store := memory.NewStore()
	owner := seedMember(t, store, "닉네임1", "owner@test.com")
	dog := seedDog(t, store, owner.ID, "강쥐")

	svc := NewDogService(store.DogRepository(), testImageService(newFakeStorage()))

	form := dogForm()
	form.Name = "새이름"
	updated, err := svc.UpdateDog(context.Background(), owner.ID, dog.ID, form, nil)
	require.NoError(t, err)
	assert.Equal(t, "새이름", updated.Name)
	assert.Equal(t, dog.Image, updated.Image)
}

func TestUpdateDog_NotOwner(t *testing.T) {
	store := memory.NewStore()
	owner := seedMember(t, store, "닉네임1", "owner@test.com")
	other := seedMember(t, store, "닉네임2", "other@test.com")
	dog := seedDog(t, store, owner.ID, "강쥐")

	svc := NewDogService(store.DogRepository(), testImageService(newFakeStorage()))

	_, err := svc.UpdateDog(context.Background(), other.ID, dog.ID, dogForm(), nil)
	assert.ErrorIs(t, err, apperrors.ErrNotDogOwner)
}

func TestGetDog_NotFound(t *testing.T) {
	store := memory.NewStore()

	svc := NewDogService(store.DogRepository(), testImageService(newFakeStorage()))

	_, err := svc.GetDog(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrDogNotFound)
}
