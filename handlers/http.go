// Package handlers contains the HTTP surface of confdiscovery: the stats
// snapshot for the operator dashboard and the selection/getter endpoints the
// orchestrator consumes.
package handlers

import (
	"net/http"

	"confdiscovery/domain"
	"confdiscovery/helpers"
	"confdiscovery/interfaces"
	"confdiscovery/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer serves the discovery endpoints.
type HTTPServer struct {
	discovery interfaces.Discovery
	logger    log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil discovery or logger.
func NewHTTPServer(discovery interfaces.Discovery, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		discovery: helpers.NilPanic(discovery, "handlers.http.go: discovery is required"),
		logger:    logger,
	}
}

// RegisterHandlers attaches the discovery routes to the echo instance.
func RegisterHandlers(e *echo.Echo, server *HTTPServer) {
	e.GET("/v1/stats", server.GetStats)
	e.GET("/v1/instances/:kind", server.GetInstances)
	e.GET("/v1/instance/:kind", server.GetInstance)
	e.GET("/v1/bridge", server.SelectBridge)
}

// GetStats (GET /v1/stats) returns the aggregated discovery stats snapshot.
// Disabled subsystems are absent from the object.
func (h *HTTPServer) GetStats(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, h.discovery.Stats())
}

// GetInstances (GET /v1/instances/:kind?sip=) lists all instances of a kind.
// 400 on unknown kind, 404 with configuration_absent or entity_not_found
// depending on whether the kind is enabled.
func (h *HTTPServer) GetInstances(ectx echo.Context) error {
	kind, sip, err := kindParams(ectx)
	if err != nil {
		return err
	}
	instances, err := h.discovery.Instances(kind, sip)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toInstancesResponse(instances))
}

// GetInstance (GET /v1/instance/:kind?sip=) returns the first instance of a
// kind in stable order, with the same error contract as GetInstances.
func (h *HTTPServer) GetInstance(ectx echo.Context) error {
	kind, sip, err := kindParams(ectx)
	if err != nil {
		return err
	}
	instance, err := h.discovery.GetInstance(kind, sip)
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toInstanceInfo(instance))
}

// SelectBridge (GET /v1/bridge) returns the bridge selected to host the next
// conference. 503 with no_healthy_instance when nothing qualifies (callers
// retry), 404 with configuration_absent when bridge discovery is disabled.
func (h *HTTPServer) SelectBridge(ectx echo.Context) error {
	instance, err := h.discovery.SelectBridge()
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, toInstanceInfo(instance))
}

// kindParams parses the :kind path param and sip query flag.
func kindParams(ectx echo.Context) (domain.ServiceKind, bool, error) {
	var kind domain.ServiceKind
	switch ectx.Param("kind") {
	case string(domain.KindBridge):
		kind = domain.KindBridge
	case string(domain.KindRecorder):
		kind = domain.KindRecorder
	case string(domain.KindGateway):
		kind = domain.KindGateway
	default:
		return "", false, service.NewBadParameterError("unknown service kind", nil)
	}
	sip := false
	switch ectx.QueryParam("sip") {
	case "", "false", "0":
	case "true", "1":
		sip = true
	default:
		return "", false, service.NewBadParameterError("sip must be a boolean", nil)
	}
	return kind, sip, nil
}
