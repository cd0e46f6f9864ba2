package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/httpresp"
	"github.com/BruksfildServices01/appointment-booking/internal/usecase/catalog"
)

type ServiceHandler struct {
	list *catalog.ListServices
}

func NewServiceHandler(list *catalog.ListServices) *ServiceHandler {
	return &ServiceHandler{list: list}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_services")
		return
	}

	httpresp.List(c, services)
}
