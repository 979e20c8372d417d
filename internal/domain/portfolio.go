package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Portfolio is the simulator's working state: free cash plus share
// positions. Quantities never go negative; selling everything removes
// the position.
type Portfolio struct {
	Positions map[string]*Position
	Cash      decimal.Decimal
}

func NewPortfolio(cash decimal.Decimal) *Portfolio {
	return &Portfolio{
		Positions: map[string]*Position{},
		Cash:      cash,
	}
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (p Portfolio) Quantity(symbol string) decimal.Decimal {
	if position, ok := p.Positions[symbol]; ok {
		return position.ExactQuantity
	}
	return decimal.Zero
}

func (p *Portfolio) SetQuantity(symbol string, quantity decimal.Decimal) {
	if quantity.IsZero() {
		delete(p.Positions, symbol)
		return
	}
	p.Positions[symbol] = &Position{
		Symbol:        symbol,
		ExactQuantity: quantity,
	}
}

func (p Portfolio) DeepCopy() *Portfolio {
	newPortfolio := &Portfolio{
		Cash:      p.Cash,
		Positions: map[string]*Position{},
	}
	for symbol, position := range p.Positions {
		newPortfolio.Positions[symbol] = position.DeepCopy()
	}

	return newPortfolio
}

// TotalValue marks the portfolio to market. Positions without a quote
// in priceMap are excluded from the sum that day; the shares are
// still held and get valued again once a quote shows up.
func (p Portfolio) TotalValue(priceMap map[string]decimal.Decimal) decimal.Decimal {
	totalValue := p.Cash
	for symbol, position := range p.Positions {
		price, ok := priceMap[symbol]
		if !ok {
			continue
		}
		totalValue = totalValue.Add(position.ExactQuantity.Mul(price))
	}

	return totalValue
}

type Position struct {
	Symbol        string
	ExactQuantity decimal.Decimal
}

func (p Position) DeepCopy() *Position {
	return &Position{
		Symbol:        p.Symbol,
		ExactQuantity: p.ExactQuantity,
	}
}
