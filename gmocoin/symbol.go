package gmocoin

import "fmt"

// Symbol identifies a product listed on the exchange. Spot symbols are the
// bare asset (BTC); leverage symbols carry the JPY quote suffix (BTC_JPY).
type Symbol string

const (
	SymbolBTC Symbol = "BTC"
	SymbolETH Symbol = "ETH"
	SymbolBCH Symbol = "BCH"
	SymbolLTC Symbol = "LTC"
	SymbolXRP Symbol = "XRP"

	SymbolBTCJPY Symbol = "BTC_JPY"
	SymbolETHJPY Symbol = "ETH_JPY"
	SymbolBCHJPY Symbol = "BCH_JPY"
	SymbolLTCJPY Symbol = "LTC_JPY"
	SymbolXRPJPY Symbol = "XRP_JPY"
)

// knownSymbols is the set accepted by Validate, in listing order.
var knownSymbols = []Symbol{
	SymbolBTC, SymbolETH, SymbolBCH, SymbolLTC, SymbolXRP,
	SymbolBTCJPY, SymbolETHJPY, SymbolBCHJPY, SymbolLTCJPY, SymbolXRPJPY,
}

// String returns the canonical wire form used in query strings.
func (s Symbol) String() string {
	return string(s)
}

// IsLeverage reports whether the symbol is a leverage product.
func (s Symbol) IsLeverage() bool {
	for _, known := range knownSymbols[5:] {
		if s == known {
			return true
		}
	}
	return false
}

// Validate returns an error when the symbol is not one the exchange lists.
func (s Symbol) Validate() error {
	for _, known := range knownSymbols {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("unknown symbol %q", string(s))
}

// Symbols returns all symbols the exchange lists.
func Symbols() []Symbol {
	out := make([]Symbol, len(knownSymbols))
	copy(out, knownSymbols)
	return out
}
