package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSource(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"magic_eden", "Magic Eden"},
		{"tensor", "Tensor"},
		{"coral_cube", "Coral Cube"},
		// Existing mid-word uppercase is not altered further
		{"magicEden", "MagicEden"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatSource(c.in), "source %q", c.in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "2", formatPrice(2000000000))
	assert.Equal(t, "1.5", formatPrice(1500000000))
	assert.Equal(t, "0.001", formatPrice(1000000))
	assert.Equal(t, "0", formatPrice(0))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://galacticgeckoz.nyc3.cdn.digitaloceanspaces.com/gecko-images/42.jpg",
		ImageURL(42))
}

func TestFormatMessage(t *testing.T) {
	msg := FormatMessage(42, 7, "Magic Eden", 2000000000, "B", "S", "SIG")

	assert.Contains(t, msg, "Gecko #42 - RANK 7 - collected on Magic Eden")
	assert.Contains(t, msg, "*Price*: 2 SOL")
	assert.Contains(t, msg, "*Buyer*: `B`")
	assert.Contains(t, msg, "*Seller*: `S`")
	assert.Contains(t, msg, "[View on Solscan](https://solscan.io/tx/SIG)")
}
