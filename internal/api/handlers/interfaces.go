package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListOpenJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	ListJobsByCompany(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	ApplyToJob(c *gin.Context)
	ApplyStatus(c *gin.Context)
	CancelApplication(c *gin.Context)
	ListMyApplications(c *gin.Context)
}

// CompanyHandlerInterface defines the methods needed by the company routes.
type CompanyHandlerInterface interface {
	ListCompanies(c *gin.Context)
	GetCompany(c *gin.Context)
	CreateCompany(c *gin.Context)
	UpdateCompany(c *gin.Context)
	ListMyCompanies(c *gin.Context)
}

// ProfileHandlerInterface defines the methods needed by the profile routes.
type ProfileHandlerInterface interface {
	GetMyProfile(c *gin.Context)
	UpsertMyProfile(c *gin.Context)
}

// RelayHandlerInterface defines the methods needed by the relay routes.
type RelayHandlerInterface interface {
	SendJobApplicationEmail(c *gin.Context)
	SendVerificationEmail(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var (
	_ JobHandlerInterface         = (*JobHandler)(nil)
	_ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
	_ CompanyHandlerInterface     = (*CompanyHandler)(nil)
	_ ProfileHandlerInterface     = (*ProfileHandler)(nil)
	_ RelayHandlerInterface       = (*RelayHandler)(nil)
)
