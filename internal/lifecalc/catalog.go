package lifecalc

// CatalogCode is one accepted code of a dimension.
type CatalogCode struct {
	Code   string  `json:"code"`
	Delta  float64 `json:"adjustment"`
	Label  string  `json:"label,omitempty"`
	Impact Impact  `json:"impact"`
	Silent bool    `json:"silent,omitempty"`
}

// CatalogDimension describes a coded dimension in registry order.
type CatalogDimension struct {
	Dimension Dimension     `json:"dimension"`
	Group     string        `json:"group"`
	Legacy    bool          `json:"legacy,omitempty"`
	Codes     []CatalogCode `json:"codes"`
}

// Catalog lists every coded dimension of the default registry with the codes
// it accepts. BMI and smoking are numeric and carry no codes.
func Catalog() []CatalogDimension {
	return catalogOf(DefaultRegistry())
}

func catalogOf(groups []Group) []CatalogDimension {
	out := make([]CatalogDimension, 0, len(codeTables)+2)
	add := func(group string, ev Evaluator, legacy bool) {
		table, ok := codeTables[ev.Dimension]
		if !ok {
			return
		}
		entry := CatalogDimension{Dimension: ev.Dimension, Group: group, Legacy: legacy, Codes: make([]CatalogCode, 0, len(table))}
		for _, row := range table {
			entry.Codes = append(entry.Codes, CatalogCode{
				Code:   row.Code,
				Delta:  row.Delta,
				Label:  row.Label,
				Impact: row.Impact,
				Silent: row.Silent,
			})
		}
		out = append(out, entry)
	}
	for _, g := range groups {
		for _, ev := range g.Current {
			add(g.Name, ev, false)
		}
		if g.Legacy != nil {
			add(g.Name, *g.Legacy, true)
		}
	}
	return out
}
