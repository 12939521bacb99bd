package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/middleware"
	"logitrack/internal/usecase/livreur"
	"logitrack/pkg/utils"
)

type LivreurHandler struct {
	service *livreur.Service
}

func NewLivreurHandler(service *livreur.Service) *LivreurHandler {
	return &LivreurHandler{service: service}
}

func (h *LivreurHandler) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/livreur")
	{
		g.GET("/livraisons/disponibles", h.ListDisponibles)
		g.GET("/livraisons/mes-livraisons", h.MesLivraisons)
		g.POST("/livraisons/:id/prendre", h.Prendre)
		g.POST("/livraisons/:id/livrer", h.Livrer)
		g.GET("/vehicules", h.ListVehicules)
	}
}

func (h *LivreurHandler) ListDisponibles(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.ListDisponibles(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *LivreurHandler) MesLivraisons(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.service.MesLivraisons(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *LivreurHandler) Prendre(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	livraisonID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req livreur.PrendreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Prendre(c.Request.Context(), userID, livraisonID, &req); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Livraison prise", nil)
}

func (h *LivreurHandler) Livrer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	livraisonID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Livrer(c.Request.Context(), userID, livraisonID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Livraison livree", nil)
}

func (h *LivreurHandler) ListVehicules(c *gin.Context) {
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
