package routes

import (
	"corporatepay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests   = "/requests"
	PathChains     = "/chains"
	PathExceptions = "/exceptions"
	PathDisputes   = "/disputes"
)

func addApprovalRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.RequestHandler,
	approvalHandler *handlers.ApprovalHandler,
	exceptionHandler *handlers.ExceptionHandler,
	disputeHandler *handlers.DisputeHandler,
	scanHandler *handlers.ScanHandler,
	policyHandler *handlers.PolicyHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.SubmitRequest)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.PATCH("/:request_id/cancel", requestHandler.CancelRequest)
		requests.PATCH("/:request_id/complete", requestHandler.CompleteRequest)
	}

	chains := rg.Group(PathChains)
	{
		chains.GET("/:chain_id", approvalHandler.GetChain)
		chains.PATCH("/:chain_id/approve", approvalHandler.ApproveStep)
		chains.PATCH("/:chain_id/reject", approvalHandler.RejectStep)
	}

	exceptions := rg.Group(PathExceptions)
	{
		exceptions.POST("", exceptionHandler.RequestExemption)
		exceptions.GET("/exempt", exceptionHandler.QueryExempt)
		exceptions.GET("/:exception_id", exceptionHandler.GetException)
	}

	disputes := rg.Group(PathDisputes)
	{
		disputes.POST("", disputeHandler.OpenDispute)
		disputes.GET("", disputeHandler.ListDisputesByEntity)
		disputes.GET("/:dispute_id", disputeHandler.GetDispute)
		disputes.PATCH("/:dispute_id/resolve", disputeHandler.ResolveDispute)
	}

	rg.POST("/scan", scanHandler.TriggerScan)
	rg.GET("/policy", policyHandler.GetPolicy)
}
