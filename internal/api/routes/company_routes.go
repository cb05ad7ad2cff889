package routes

import (
	"remote-jobs-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers the company directory routes.
func RegisterCompanyRoutes(
	rg *gin.RouterGroup,
	companyHandler handlers.CompanyHandlerInterface,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	companies := rg.Group("/companies")
	{
		companies.GET("", companyHandler.ListCompanies)
		companies.GET("/my", authMiddleware, companyHandler.ListMyCompanies)
		companies.GET("/:id", companyHandler.GetCompany)
		companies.GET("/:id/jobs", jobHandler.ListJobsByCompany)
		companies.POST("", authMiddleware, companyHandler.CreateCompany)
		companies.PUT("/:id", authMiddleware, companyHandler.UpdateCompany)
	}
}
