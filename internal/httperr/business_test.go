package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBusinessErrorMatching(t *testing.T) {
	err := fmt.Errorf("book: %w", ErrConflict("slot_not_available"))

	assert.True(t, IsBusiness(err, "slot_not_available"))
	assert.False(t, IsBusiness(err, "service_not_found"))

	be, ok := AsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, be.Kind)

	_, ok = AsBusiness(errors.New("boom"))
	assert.False(t, ok)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(KindNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(KindConflict))
	assert.Equal(t, http.StatusForbidden, StatusFor(KindUnauthorized))
	assert.Equal(t, http.StatusBadRequest, StatusFor(KindInvalid))
}

func TestIsExclusionConflict(t *testing.T) {
	assert.True(t, IsExclusionConflict(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsExclusionConflict(errors.New("other")))
}
