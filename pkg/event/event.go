package event

// Transaction types delivered by the Helius enhanced webhook that this bot
// cares about. Everything else is ignored.
const (
	TypeNFTSale = "NFT_SALE"
	TypeSwap    = "SWAP"
)

// Transaction is one element of the enhanced-webhook payload array.
type Transaction struct {
	Type      string `json:"type"`
	Events    Events `json:"events"`
	IsTesting bool   `json:"isTesting,omitempty"`
}

// Events wraps the per-category event payloads. Only the NFT event is used.
type Events struct {
	NFT NFTEvent `json:"nft"`
}

// NFTEvent carries the marketplace sale details for a transaction.
type NFTEvent struct {
	Amount    uint64  `json:"amount"` // lamports
	Buyer     string  `json:"buyer"`
	Seller    string  `json:"seller"`
	Signature string  `json:"signature"`
	NFTs      []Token `json:"nfts"`
	Source    string  `json:"source"` // marketplace id, snake_case
}

// Token identifies a single NFT within the event.
type Token struct {
	Mint          string `json:"mint"`
	TokenStandard string `json:"tokenStandard"`
}

// Relevant reports whether this transaction type should be processed.
func (t *Transaction) Relevant() bool {
	return t.Type == TypeNFTSale || t.Type == TypeSwap
}

// FirstMint returns the mint address of the first NFT in the event,
// or "" when the event carries none.
func (t *Transaction) FirstMint() string {
	if len(t.Events.NFT.NFTs) == 0 {
		return ""
	}
	return t.Events.NFT.NFTs[0].Mint
}
