package placement

import (
	"github.com/shopspring/decimal"

	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/seedrng"
)

// shopPrice computes the spirit-light price a shop charges for it (spec
// §4.4 "Shop pricing"): the item's base ShopPrice, multiplied by a uniform
// jitter in [0.75, 1.25] and rounded to the nearest integer when
// RandomShopPrice allows it — Blaze is exempt, handled already by
// item.Item.RandomShopPrice. The jitter draw itself is an unavoidable
// float64 (spec calls for a continuous uniform distribution), but the
// multiply and round happen in decimal.Decimal so the price recorded in
// the spoiler is exactly the integer the wire event carries, with no
// binary-float rounding drift between generation and output.
func shopPrice(it item.Item, r *seedrng.RNG) decimal.Decimal {
	base := decimal.NewFromInt(int64(it.ShopPrice()))
	if !it.RandomShopPrice() {
		return base
	}
	jitter := decimal.NewFromFloat(r.Float64Range(0.75, 1.25))
	return base.Mul(jitter).Round(0)
}
