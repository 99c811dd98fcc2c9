package mytype_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myqdrv/myq/mytype"
)

type suit int

const spades suit = 1

type opaque struct{ a, b int }

func TestInferType(t *testing.T) {
	ti := mytype.DefaultTypeInferrer{}

	tests := []struct {
		value any
		want  mytype.Type
	}{
		{uuid.New(), mytype.Guid},
		{5 * time.Second, mytype.Time},
		{true, mytype.Tiny},
		{false, mytype.Tiny},
		{int8(-1), mytype.Tiny},
		{uint8(1), mytype.UnsignedTiny},
		{int16(-1), mytype.Short},
		{uint16(1), mytype.UnsignedShort},
		{int32(-1), mytype.Long},
		{uint32(1), mytype.UnsignedLong},
		{int64(-1), mytype.LongLong},
		{uint64(1), mytype.UnsignedLongLong},
		{int(-1), mytype.LongLong},
		{uint(1), mytype.UnsignedLongLong},
		{time.Now(), mytype.DateTime},
		{"hello", mytype.VarChar},
		{float32(1.5), mytype.Float},
		{float64(1.5), mytype.Double},
		{decimal.NewFromInt(42), mytype.NewDecimal},
		{[]byte{1, 2}, mytype.Blob},
		{mytype.Geometry{X: 1, Y: 2, Valid: true}, mytype.Geom},
		{spades, mytype.Long},       // enumeration member
		{opaque{1, 2}, mytype.Blob}, // catch-all
	}

	for _, tt := range tests {
		got, ok := ti.InferType(tt.value)
		require.Truef(t, ok, "value %#v", tt.value)
		assert.Equalf(t, tt.want, got, "value %#v", tt.value)
	}
}

func TestInferTypeNil(t *testing.T) {
	_, ok := mytype.DefaultTypeInferrer{}.InferType(nil)
	assert.False(t, ok)
}

func TestInferTypeDeterministic(t *testing.T) {
	ti := mytype.DefaultTypeInferrer{}
	for i := 0; i < 3; i++ {
		got, ok := ti.InferType("x")
		require.True(t, ok)
		assert.Equal(t, mytype.VarChar, got)
	}
}
