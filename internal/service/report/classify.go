package report

import (
	"strings"

	"github.com/kdiomande/cntsci-flux/internal/domain"
)

// classifierRules are tested in order; the first matching substring
// wins. Priority is a defined tie-break for labels that would contain
// several trigger words, not an accident of iteration order.
var classifierRules = []struct {
	needle   string
	category domain.ProductCategory
}{
	{"ADULTE", domain.AdultRedCells},
	{"PEDIATRIQUE", domain.PediatricRedCells},
	{"NOURRISSON", domain.PediatricRedCells},
	{"PLASMA", domain.Plasma},
	{"PLAQUETTES", domain.Platelets},
}

// ClassifyProduct maps a free-text product label to its category. An
// unrecognized label is Unclassified; it still counts toward totals,
// just not toward any named sub-bucket. Never fails.
func ClassifyProduct(label string) domain.ProductCategory {
	upper := strings.ToUpper(label)
	for _, rule := range classifierRules {
		if strings.Contains(upper, rule.needle) {
			return rule.category
		}
	}
	return domain.Unclassified
}
