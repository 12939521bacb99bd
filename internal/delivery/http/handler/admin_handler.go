package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"logitrack/internal/middleware"
	"logitrack/internal/usecase/admin"
	"logitrack/pkg/utils"
)

type AdminHandler struct {
	service *admin.Service
}

func NewAdminHandler(service *admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	adminGroup := router.Group("/admin")
	{
		adminGroup.GET("/kpis", h.KPIs)

		adminGroup.GET("/users", h.ListUsers)
		adminGroup.POST("/users", h.CreateUser)
		adminGroup.PUT("/users/:id", h.UpdateUser)

		adminGroup.GET("/entrepots", h.ListEntrepots)
		adminGroup.POST("/entrepots", h.CreateEntrepot)
		adminGroup.GET("/gestionnaires", h.ListGestionnaires)

		adminGroup.GET("/clients", h.ListClients)
		adminGroup.POST("/clients", h.CreateClient)

		adminGroup.GET("/vehicules", h.ListVehicules)
		adminGroup.POST("/vehicules", h.CreateVehicule)
		adminGroup.PUT("/vehicules/:id", h.UpdateVehicule)
	}
}

func (h *AdminHandler) KPIs(c *gin.Context) {
	resp, err := h.service.KPIs(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	resp, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req admin.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "User created", resp)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req admin.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User updated", resp)
}

func (h *AdminHandler) ListEntrepots(c *gin.Context) {
	resp, err := h.service.ListEntrepots(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *AdminHandler) CreateEntrepot(c *gin.Context) {
	var req admin.CreateEntrepotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateEntrepot(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Entrepot created", resp)
}

func (h *AdminHandler) ListGestionnaires(c *gin.Context) {
	resp, err := h.service.ListGestionnaires(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	resp, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *AdminHandler) CreateClient(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req admin.CreateClientRequest
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

func (h *AdminHandler) ListVehicules(c *gin.Context) {
	var entrepotID *int64
	if raw := c.Query("id_entrepot"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid id_entrepot")
			return
		}
		entrepotID = &id
	}

	resp, err := h.service.ListVehicules(c.Request.Context(), entrepotID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *AdminHandler) CreateVehicule(c *gin.Context) {
	var req admin.CreateVehiculeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateVehicule(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Vehicule created", resp)
}

func (h *AdminHandler) UpdateVehicule(c *gin.Context) {
	vehiculeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req admin.UpdateVehiculeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateVehicule(c.Request.Context(), vehiculeID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Vehicule updated", resp)
}

// pathID parses a numeric path parameter, answering 400 itself when
// the value is not an integer.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
