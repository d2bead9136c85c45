package domain

import (
	"strconv"
	"strings"
)

// Placeholder bucket keys for blank non-key fields. A record is never
// excluded from aggregation because a field is blank; it aggregates
// under one of these instead.
const (
	UnknownCenter    = "CENTRE NON RENSEIGNE"
	UnknownStructure = "STRUCTURE NON RENSEIGNEE"
	UnknownProduct   = "PRODUIT NON RENSEIGNE"
	UnknownGroup     = "GROUPE NON RENSEIGNE"
)

// DistributionRecord is one distribution event as it arrives from the
// sheet. Field names mirror the capture form; the sheet has been fed by
// several revisions of that form, so every field is decoded tolerantly.
type DistributionRecord struct {
	ID               string   `json:"id,omitempty"`
	Timestamp        string   `json:"horodateur"`
	AgentName        string   `json:"nomAgent"`
	DistributionDate string   `json:"dateDistribution"`
	Center           string   `json:"centreCntsci"`
	HealthStructure  string   `json:"nomStructuresSanitaire"`
	ProductType      string   `json:"typeProduit"`
	BloodGroup       string   `json:"saGroupe"`
	Quantity         Quantity `json:"nbPoches"`
}

// CenterKey returns the rollup key for the record's center, falling back
// to the placeholder when blank.
func (r *DistributionRecord) CenterKey() string {
	if s := strings.TrimSpace(r.Center); s != "" {
		return s
	}
	return UnknownCenter
}

func (r *DistributionRecord) StructureKey() string {
	if s := strings.TrimSpace(r.HealthStructure); s != "" {
		return s
	}
	return UnknownStructure
}

func (r *DistributionRecord) ProductKey() string {
	if s := strings.TrimSpace(r.ProductType); s != "" {
		return s
	}
	return UnknownProduct
}

func (r *DistributionRecord) GroupKey() string {
	if s := strings.TrimSpace(r.BloodGroup); s != "" {
		return s
	}
	return UnknownGroup
}

// Quantity is a unit count that may arrive as a JSON number, a numeric
// string, or blank. Anything unparsable decodes to zero rather than
// failing the whole snapshot.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || s == "null" {
		*q = 0
		return nil
	}

	// Old sheet rows occasionally carry floats ("12.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
		*q = Quantity(int(f))
		return nil
	}

	*q = 0
	return nil
}

func (q Quantity) Int() int { return int(q) }
