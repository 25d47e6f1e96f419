package models

// FleetCar is one vehicle of the transfer fleet shown on the site. The
// description is localized; the name and image are shared.
type FleetCar struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ServiceOffering is one entry of the services grid.
type ServiceOffering struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
