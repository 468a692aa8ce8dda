package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface lets the route registration (and its tests) swap in
// mock handlers.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetBoard(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	MoveJobStatus(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// FinanceHandlerInterface mirrors FinanceHandler for route registration.
type FinanceHandlerInterface interface {
	GetSummary(c *gin.Context)
}

var _ JobHandlerInterface = (*JobHandler)(nil)
var _ FinanceHandlerInterface = (*FinanceHandler)(nil)
