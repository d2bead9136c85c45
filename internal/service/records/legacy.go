package records

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kdiomande/cntsci-flux/internal/domain"
)

// Column order of the published sheet, fixed since the first Apps
// Script revision: horodateur, agent, date, centre, structure, produit,
// groupe, quantité.
const legacyColumns = 8

// ParseLegacyTable extracts distribution records from the sheet's
// published-HTML rendering. The first row is the header; short rows and
// unparsable quantities degrade to blanks and zero rather than failing
// the snapshot.
func ParseLegacyTable(r io.Reader) ([]domain.DistributionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table in legacy payload")
	}

	var parsed []domain.DistributionRecord
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}

		cells := make([]string, 0, legacyColumns)
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) == 0 {
			return
		}
		for len(cells) < legacyColumns {
			cells = append(cells, "")
		}

		qty, err := strconv.Atoi(cells[7])
		if err != nil || qty < 0 {
			qty = 0
		}

		parsed = append(parsed, domain.DistributionRecord{
			Timestamp:        cells[0],
			AgentName:        cells[1],
			DistributionDate: cells[2],
			Center:           cells[3],
			HealthStructure:  cells[4],
			ProductType:      cells[5],
			BloodGroup:       cells[6],
			Quantity:         domain.Quantity(qty),
		})
	})

	return parsed, nil
}
