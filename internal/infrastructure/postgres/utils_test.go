package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(uniqueErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert product: %w", uniqueErr)))

	fkErr := &pgconn.PgError{Code: "23503"}
	assert.False(t, isUniqueViolation(fkErr))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
