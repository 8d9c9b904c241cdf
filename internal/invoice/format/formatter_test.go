package format

import (
	"testing"
	"time"

	"github.com/smallbiznis/leadflow/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceID(t *testing.T) {
	tests := []struct {
		name    string
		stamp   int64
		want    string
		wantErr bool
	}{
		{name: "millis stamp", stamp: 1773099000000, want: "INV-1773099000000"},
		{name: "small stamp", stamp: 42, want: "INV-42"},
		{name: "zero stamp", stamp: 0, wantErr: true},
		{name: "negative stamp", stamp: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatInvoiceID(tt.stamp)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$200.00", FormatMoney(domain.Money(20000)))
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$12.05", FormatMoney(1205))
	assert.Equal(t, "2026-03-09", FormatDate(time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "3", FormatQuantity(3))
}
