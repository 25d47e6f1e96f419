package handlers

import (
	"net/http"

	"bvetra/models"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static fleet and services catalogs the landing
// page renders. Descriptions are localized via the lang query parameter.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

var fleet = map[string][]models.FleetCar{
	"ru": {
		{ID: "camry", Name: "Toyota Camry", Description: "Бизнес-класс", Image: "/images/car1.webp"},
		{ID: "mercedes-e", Name: "Mercedes E", Description: "Премиум", Image: "/images/car2.webp"},
		{ID: "transit", Name: "Ford Transit", Description: "Минивэн", Image: "/images/car3.webp"},
		{ID: "polo", Name: "Volkswagen Polo", Description: "Эконом", Image: "/images/car4.webp"},
	},
	"en": {
		{ID: "camry", Name: "Toyota Camry", Description: "Business class", Image: "/images/car1.webp"},
		{ID: "mercedes-e", Name: "Mercedes E", Description: "Premium", Image: "/images/car2.webp"},
		{ID: "transit", Name: "Ford Transit", Description: "Minivan", Image: "/images/car3.webp"},
		{ID: "polo", Name: "Volkswagen Polo", Description: "Economy", Image: "/images/car4.webp"},
	},
}

var services = map[string][]models.ServiceOffering{
	"ru": {
		{ID: "airport", Title: "Трансфер в аэропорт", Description: "Быстрый и комфортный трансфер."},
		{ID: "corporate", Title: "Корпоративная аренда", Description: "Автомобили по договору."},
		{ID: "longterm", Title: "Долгосрочная аренда", Description: "Гибкие условия."},
		{ID: "events", Title: "Экскурсии и мероприятия", Description: "Профессиональные водители."},
	},
	"en": {
		{ID: "airport", Title: "Airport transfer", Description: "Fast and comfortable transfers."},
		{ID: "corporate", Title: "Corporate rental", Description: "Vehicles under contract."},
		{ID: "longterm", Title: "Long-term rental", Description: "Flexible terms."},
		{ID: "events", Title: "Tours and events", Description: "Professional drivers."},
	},
}

func catalogLang(c *gin.Context) string {
	if c.Query("lang") == "en" {
		return "en"
	}
	return "ru"
}

func (h *CatalogHandler) Fleet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": fleet[catalogLang(c)]})
}

func (h *CatalogHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": services[catalogLang(c)]})
}
