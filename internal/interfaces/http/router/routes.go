package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stockroom/backend/internal/interfaces/http/handler"
)

// Handlers bundles every API handler for route registration.
type Handlers struct {
	Products           *handler.ProductHandler
	Categories         *handler.CategoryHandler
	Locations          *handler.LocationHandler
	SupplierProducts   *handler.SupplierProductHandler
	Suppliers          *handler.SupplierHandler
	SupplierCategories *handler.SupplierCategoryHandler
	Countries          *handler.CountryHandler
	Movements          *handler.MovementHandler
}

// RegisterRoutes wires every endpoint under the API group.
func (h Handlers) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/:id", h.Products.GetByID)
		products.GET("/:id/price-history", h.Products.PriceHistory)
		products.POST("", h.Products.Create)
		products.PUT("/:id", h.Products.Update)
		products.DELETE("/:id", h.Products.Delete)
	}

	categories := rg.Group("/product-categories")
	{
		categories.GET("", h.Categories.List)
		categories.GET("/:id", h.Categories.GetByID)
		categories.POST("", h.Categories.Create)
		categories.PUT("/:id", h.Categories.Update)
		categories.DELETE("/:id", h.Categories.Delete)
	}

	locations := rg.Group("/locations")
	{
		locations.GET("", h.Locations.List)
		locations.GET("/:id", h.Locations.GetByID)
		locations.POST("", h.Locations.Create)
		locations.PUT("/:id", h.Locations.Update)
		locations.DELETE("/:id", h.Locations.Delete)
	}

	supplierProducts := rg.Group("/supplier-products")
	{
		supplierProducts.GET("", h.SupplierProducts.List)
		supplierProducts.GET("/:id", h.SupplierProducts.GetByID)
		supplierProducts.POST("", h.SupplierProducts.Create)
		supplierProducts.PUT("/:id", h.SupplierProducts.Update)
		supplierProducts.DELETE("/:id", h.SupplierProducts.Delete)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.Suppliers.List)
		suppliers.GET("/:id", h.Suppliers.GetByID)
		suppliers.GET("/:id/products", h.SupplierProducts.ListBySupplier)
		suppliers.POST("", h.Suppliers.Create)
		suppliers.PUT("/:id", h.Suppliers.Update)
		suppliers.DELETE("/:id", h.Suppliers.Delete)
	}

	supplierCategories := rg.Group("/supplier-categories")
	{
		supplierCategories.GET("", h.SupplierCategories.List)
		supplierCategories.GET("/:id", h.SupplierCategories.GetByID)
		supplierCategories.POST("", h.SupplierCategories.Create)
		supplierCategories.PUT("/:id", h.SupplierCategories.Update)
		supplierCategories.DELETE("/:id", h.SupplierCategories.Delete)
	}

	countries := rg.Group("/countries")
	{
		countries.GET("", h.Countries.List)
		countries.GET("/:id", h.Countries.GetByID)
		countries.POST("/import", h.Countries.Import)
	}

	movements := rg.Group("/movements")
	{
		movements.GET("", h.Movements.List)
		movements.GET("/:id", h.Movements.GetByID)
		movements.POST("", h.Movements.Register)
		movements.POST("/simulate", h.Movements.Simulate)
	}
}
