package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/core/domain"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{raw: "", want: domain.DefaultIndexDelay},
		{raw: "0", want: 0},
		{raw: "45", want: 45 * time.Second},
		{raw: "1m30s", want: 90 * time.Second},
		{raw: " 2s ", want: 2 * time.Second},
		{raw: "9223372036", want: 9223372036 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseDelay(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDelay_Invalid(t *testing.T) {
	for _, raw := range []string{"-5", "-1m", "soon", "9300000000", "99999999999999999999"} {
		_, err := domain.ParseDelay(raw)
		require.ErrorContains(t, err, domain.ErrInvalidDelay.Error(), raw)
	}
}
