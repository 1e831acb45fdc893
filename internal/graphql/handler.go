package graphql

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gql "github.com/graphql-go/graphql"

	"github.com/medisuite/hospital-services/pkg/metrics"
)

// Request is the standard GraphQL HTTP payload.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves a schema over HTTP. Results always come back as 200
// with any resolver errors in the "errors" array; only a missing query
// is rejected outright.
type Handler struct {
	schema  gql.Schema
	metrics *metrics.Metrics
}

func NewHandler(schema gql.Schema, m *metrics.Metrics) *Handler {
	return &Handler{schema: schema, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/graphql", h.Serve)
	r.GET("/graphql", h.Serve)
}

func (h *Handler) Serve(c *gin.Context) {
	var req Request
	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "invalid request body: " + err.Error()}},
			})
			return
		}
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"message": "query is required"}},
		})
		return
	}

	start := time.Now()
	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})
	h.observe(time.Since(start), len(result.Errors) > 0)

	c.JSON(http.StatusOK, result)
}

func (h *Handler) observe(d time.Duration, failed bool) {
	if h.metrics == nil {
		return
	}
	status := "ok"
	if failed {
		status = "error"
	}
	h.metrics.GraphQLRequests.WithLabelValues(status).Inc()
	h.metrics.GraphQLLatency.Observe(d.Seconds())
}
