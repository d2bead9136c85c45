package report

import (
	"github.com/kdiomande/cntsci-flux/internal/domain"
)

// BuildRollup folds the record set into the nested
// center → structure → product → blood group tree in a single pass.
// Every record's quantity lands on its leaf and on every ancestor's
// running total, plus the per-center blood-group subtotal, so leaf sums
// and branch totals agree at every level by construction. Blank fields
// descend through placeholder keys; no record is dropped. The returned
// tree is freshly built and owned by the caller.
func BuildRollup(records []domain.DistributionRecord) *domain.Rollup {
	rollup := &domain.Rollup{Centers: make(map[string]*domain.CenterNode)}

	for i := range records {
		r := &records[i]
		qty := r.Quantity.Int()

		center, ok := rollup.Centers[r.CenterKey()]
		if !ok {
			center = &domain.CenterNode{
				GroupTotals: make(map[string]int),
				Structures:  make(map[string]*domain.StructureNode),
			}
			rollup.Centers[r.CenterKey()] = center
		}

		structure, ok := center.Structures[r.StructureKey()]
		if !ok {
			structure = &domain.StructureNode{Products: make(map[string]*domain.ProductNode)}
			center.Structures[r.StructureKey()] = structure
		}

		product, ok := structure.Products[r.ProductKey()]
		if !ok {
			product = &domain.ProductNode{Groups: make(map[string]int)}
			structure.Products[r.ProductKey()] = product
		}

		product.Groups[r.GroupKey()] += qty
		product.Total += qty
		structure.Total += qty
		center.Total += qty
		center.GroupTotals[r.GroupKey()] += qty
		rollup.Total += qty
	}

	return rollup
}
