package seats

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSortSeatIDs(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	c := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	tests := []struct {
		name  string
		input []uuid.UUID
		want  []uuid.UUID
	}{
		{name: "already sorted", input: []uuid.UUID{a, b, c}, want: []uuid.UUID{a, b, c}},
		{name: "reversed", input: []uuid.UUID{c, b, a}, want: []uuid.UUID{a, b, c}},
		{name: "mixed", input: []uuid.UUID{b, c, a}, want: []uuid.UUID{a, b, c}},
		{name: "single", input: []uuid.UUID{c}, want: []uuid.UUID{c}},
		{name: "empty", input: nil, want: []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortSeatIDs(tt.input)
			assert.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestSortSeatIDsDoesNotMutateInput(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	c := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	input := []uuid.UUID{c, a}
	_ = sortSeatIDs(input)

	assert.Equal(t, c, input[0])
	assert.Equal(t, a, input[1])
}

func TestSortSeatIDsIsByteOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	sorted := sortSeatIDs(ids)

	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, bytes.Compare(sorted[i-1][:], sorted[i][:]), 0)
	}
}

func TestIsLockContention(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadlock detected", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "wrapped deadlock", err: errors.Join(errors.New("tx failed"), &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockContention(tt.err))
		})
	}
}
