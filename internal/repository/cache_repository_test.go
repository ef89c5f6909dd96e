package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/campus-reports-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	var dest []string

	err := repo.Get(context.Background(), "categories", &dest)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(context.Background(), "categories", []string{"tech"}, 0))
}

func TestNamespacedKey(t *testing.T) {
	assert.Equal(t, "campus:categories:all", namespaced("categories:all"))
}
