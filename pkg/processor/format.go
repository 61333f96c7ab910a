package processor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	imageBase      = "https://galacticgeckoz.nyc3.cdn.digitaloceanspaces.com/gecko-images"
	explorerTxURL  = "https://solscan.io/tx/"
	lamportsPerSOL = 1e9
)

// ImageURL builds the CDN image location for a display ID. No existence check
// is performed; the CDN serves every configured gecko.
func ImageURL(displayID int) string {
	return fmt.Sprintf("%s/%d.jpg", imageBase, displayID)
}

// FormatSource turns a snake_case marketplace identifier into display form:
// underscores become spaces and the first letter of every word is uppercased.
// "magic_eden" -> "Magic Eden". Letters past the first of a word keep their
// original case.
func FormatSource(source string) string {
	var b strings.Builder
	b.Grow(len(source))
	prevIsWord := false
	for _, r := range strings.ReplaceAll(source, "_", " ") {
		if !prevIsWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevIsWord = unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return b.String()
}

// formatPrice renders a lamports amount as SOL with minimal decimals:
// 2000000000 -> "2", 1500000000 -> "1.5".
func formatPrice(lamports uint64) string {
	return strconv.FormatFloat(float64(lamports)/lamportsPerSOL, 'f', -1, 64)
}

// FormatMessage builds the Telegram-Markdown sale announcement.
func FormatMessage(displayID, rank int, source string, lamports uint64, buyer, seller, signature string) string {
	return fmt.Sprintf("🎉 *Gecko #%d - RANK %d - collected on %s*\n\n"+
		"*Price*: %s SOL\n"+
		"*Buyer*: `%s`\n"+
		"*Seller*: `%s`\n"+
		"*Signature*: [View on Solscan](%s%s)",
		displayID, rank, source, formatPrice(lamports), buyer, seller, explorerTxURL, signature)
}
