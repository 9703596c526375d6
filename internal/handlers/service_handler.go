package handlers

import (
	"net/http"

	"lawmanBack/internal/models"
	"lawmanBack/internal/services"
)

type ServiceHandler struct {
	Service *services.ServiceService
}

var (
	serviceCreated = outcome{
		good: "Service Added Successfully.",
		bad:  "Service Could Not Be Added.",
	}
	serviceDeleted = outcome{
		good:     "Service Deleted Successfully.",
		bad:      "Service Could Not Be Deleted.",
		notFound: "Service Not Found.",
	}
	serviceRead = outcome{bad: "Services Could Not Be Loaded."}
)

// GetServices handles GET /services?limit=N.
func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListServices(r.Context(), r.URL.Query().Get("limit"))
	if err != nil {
		fail(w, r, err, serviceRead)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetServiceByID answers null when no service has the id.
func (h *ServiceHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	service, err := h.Service.GetService(r.Context(), pathParam(r, "serviceID"))
	if err != nil {
		fail(w, r, err, serviceRead)
		return
	}
	writeJSON(w, http.StatusOK, service)
}

func (h *ServiceHandler) GetServicesByUserID(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.GetServicesByAuthorID(r.Context(), pathParam(r, "userID"))
	if err != nil {
		fail(w, r, err, serviceRead)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var service models.Service
	if err := decodeJSON(w, r, &service); err != nil {
		invalidRequest(w, r, err)
		return
	}

	created, err := h.Service.CreateService(r.Context(), service)
	if err != nil {
		fail(w, r, err, serviceCreated)
		return
	}

	env := models.Good(serviceCreated.good)
	env.InsertedID = created.ID.Hex()
	WriteEnvelope(w, http.StatusOK, env)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteService(r.Context(), pathParam(r, "serviceID")); err != nil {
		fail(w, r, err, serviceDeleted)
		return
	}
	WriteEnvelope(w, http.StatusOK, models.Good(serviceDeleted.good))
}
