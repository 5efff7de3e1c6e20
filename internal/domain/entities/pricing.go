package entities

// PricingRequest is everything the remote pricing service needs for one
// selected service.
type PricingRequest struct {
	ServiceID          ServiceID
	ZipCode            string
	UnitOfMeasurement  string
	Quantity           float64
	FinishingMaterials []string
}
