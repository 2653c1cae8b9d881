// Package catalog provides the cleaning services catalog: the fixed set of
// service types a visitor can request a quote for.
package catalog

// Service is one bookable cleaning service.
type Service struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PriceHint string `json:"priceHint"`
}

// GeneralInquiryLabel is used when a quote request selects no services.
const GeneralInquiryLabel = "General inquiry"

// services is the ordered catalog as shown on the public site.
var services = []Service{
	{ID: "office", Name: "Office Cleaning", PriceHint: "From R800/visit"},
	{ID: "residential", Name: "Residential / Home Cleaning", PriceHint: "From R500/visit"},
	{ID: "airbnb", Name: "Airbnb & Short-Term Rental", PriceHint: "From R350/turnover"},
	{ID: "retail", Name: "Shopping Malls & Retail", PriceHint: "Custom quote"},
	{ID: "schools", Name: "Schools & Universities", PriceHint: "Custom quote"},
	{ID: "medical", Name: "Hospitals & Medical", PriceHint: "Custom quote"},
	{ID: "government", Name: "Government Buildings", PriceHint: "Custom quote"},
	{ID: "construction", Name: "Post-Construction Cleaning", PriceHint: "From R1500/job"},
	{ID: "industrial", Name: "Industrial & Warehouse", PriceHint: "Custom quote"},
	{ID: "dealership", Name: "Car Dealership & Showroom", PriceHint: "From R1000/visit"},
	{ID: "restaurant", Name: "Restaurant Deep Cleaning", PriceHint: "From R1200/visit"},
	{ID: "moveinout", Name: "Move-In / Move-Out Cleaning", PriceHint: "From R800/property"},
}

// All returns the catalog in display order.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ResolveNames maps service IDs to their display names, preserving catalog
// order and dropping IDs that are not in the catalog. An empty selection
// resolves to the general inquiry label.
func ResolveNames(ids []string) []string {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	names := make([]string, 0, len(ids))
	for _, svc := range services {
		if selected[svc.ID] {
			names = append(names, svc.Name)
		}
	}

	if len(names) == 0 {
		return []string{GeneralInquiryLabel}
	}
	return names
}

// IsKnown reports whether the ID exists in the catalog.
func IsKnown(id string) bool {
	for _, svc := range services {
		if svc.ID == id {
			return true
		}
	}
	return false
}
