package common

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStorageError(t *testing.T) {
	assert.NoError(t, ClassifyStorageError(nil))

	assert.True(t, errors.Is(ClassifyStorageError(pgx.ErrNoRows), ErrNotFound))

	pgErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	err := ClassifyStorageError(pgErr)
	var reqErr *StorageRequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "23503", reqErr.Code)

	err = ClassifyStorageError(errors.New("something broke"))
	assert.True(t, errors.As(err, &reqErr))
	assert.Empty(t, reqErr.Code)
}
