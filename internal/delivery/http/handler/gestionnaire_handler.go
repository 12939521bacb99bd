package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/middleware"
	"logitrack/internal/usecase/gestionnaire"
	"logitrack/pkg/utils"
)

type GestionnaireHandler struct {
	service *gestionnaire.Service
}

func NewGestionnaireHandler(service *gestionnaire.Service) *GestionnaireHandler {
	return &GestionnaireHandler{service: service}
}

func (h *GestionnaireHandler) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/gestionnaire")
	{
		g.GET("/colis/envoyes", h.ListColisEnvoyes)
		g.GET("/colis/recus", h.ListColisRecus)
		g.POST("/colis", h.CreateColis)
		g.PUT("/colis/:id/statut", h.UpdateColisStatut)
		g.POST("/colis/recuperer", h.Recuperer)
		g.GET("/colis/:id/history", h.ColisHistory)

		g.GET("/clients", h.ListClients)
		g.POST("/clients", h.CreateClient)

		g.GET("/entrepots", h.ListEntrepots)
		g.GET("/stats", h.Stats)

		g.GET("/vehicules", h.ListVehicules)
		g.PUT("/vehicules/:id/statut", h.UpdateVehiculeStatut)
	}
}

func (h *GestionnaireHandler) ListColisEnvoyes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.ListColisEnvoyes(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *GestionnaireHandler) ListColisRecus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.ListColisRecus(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *GestionnaireHandler) CreateColis(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req gestionnaire.CreateColisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateColis(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Colis created", resp)
}

func (h *GestionnaireHandler) UpdateColisStatut(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	colisID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req gestionnaire.UpdateColisStatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateColisStatut(c.Request.Context(), userID, colisID, &req); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Statut updated", nil)
}

func (h *GestionnaireHandler) Recuperer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req gestionnaire.RecupererRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Recuperer(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Colis recuperes", resp)
}

func (h *GestionnaireHandler) ColisHistory(c *gin.Context) {
	colisID, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.ColisHistory(c.Request.Context(), colisID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *GestionnaireHandler) ListClients(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	role, ok := middleware.UserRole(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
		return
	}

	resp, err := h.service.ListClients(c.Request.Context(), userID, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *GestionnaireHandler) CreateClient(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req gestionnaire.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateClient(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Client created", resp)
}

func (h *GestionnaireHandler) ListEntrepots(c *gin.Context) {
	resp, err := h.service.ListEntrepots(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *GestionnaireHandler) Stats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *GestionnaireHandler) ListVehicules(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.ListVehicules(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *GestionnaireHandler) UpdateVehiculeStatut(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	vehiculeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req gestionnaire.UpdateVehiculeStatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateVehiculeStatut(c.Request.Context(), userID, vehiculeID, &req); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Statut updated", nil)
}
