package symaudit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/symaudit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := symaudit.Errorf(symaudit.EFETCH, "fetch %q failed", "https://example.com")

	assert.Equal(t, symaudit.EFETCH, symaudit.ErrorCode(err))
	assert.Equal(t, "fetch \"https://example.com\" failed", symaudit.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading source: %w", symaudit.Errorf(symaudit.ENOTFOUND, "os.c not found"))

	assert.Equal(t, symaudit.ENOTFOUND, symaudit.ErrorCode(err))
	assert.Equal(t, "os.c not found", symaudit.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, symaudit.EINTERNAL, symaudit.ErrorCode(err))
	assert.Equal(t, "Internal error.", symaudit.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, symaudit.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, symaudit.ErrorMessage(nil))
}

func TestCatalog_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires name", func(t *testing.T) {
		t.Parallel()

		c := &symaudit.Catalog{URL: symaudit.DefaultGTK2StableURL}
		assert.Equal(t, symaudit.EINVALID, symaudit.ErrorCode(c.Validate()))
	})

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		c := &symaudit.Catalog{Name: symaudit.CatalogGTK2Stable}
		assert.Equal(t, symaudit.EINVALID, symaudit.ErrorCode(c.Validate()))
	})

	t.Run("accepts complete catalog", func(t *testing.T) {
		t.Parallel()

		c := &symaudit.Catalog{Name: symaudit.CatalogGTK2Stable, URL: symaudit.DefaultGTK2StableURL}
		assert.NoError(t, c.Validate())
	})
}
