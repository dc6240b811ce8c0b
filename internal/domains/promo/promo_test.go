package promo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wander/internal/domains/promo"
	"wander/shared/failure"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		subtotal float64
		want     float64
		wantErr  bool
	}{
		{
			name:     "no code means no discount",
			code:     "",
			subtotal: 200,
			want:     0,
		},
		{
			name:     "SAVE10 takes ten percent",
			code:     "SAVE10",
			subtotal: 200,
			want:     20,
		},
		{
			name:     "FLAT100 takes a flat amount",
			code:     "FLAT100",
			subtotal: 250,
			want:     100,
		},
		{
			name:     "flat discount is capped at the subtotal",
			code:     "FLAT100",
			subtotal: 60,
			want:     60,
		},
		{
			name:     "unknown code",
			code:     "NOPE",
			subtotal: 200,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, err := promo.Apply(tt.code, tt.subtotal)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, discount)
		})
	}
}

func TestLookup(t *testing.T) {
	c, ok := promo.Lookup("SAVE10")

	assert.True(t, ok)
	assert.Equal(t, promo.KindPercentage, c.Kind)

	_, ok = promo.Lookup("missing")
	assert.False(t, ok)
}
