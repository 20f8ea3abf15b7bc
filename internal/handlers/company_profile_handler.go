package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyProfileHandler struct {
	*BaseHandler
	companyService services.CompanyProfileService
}

func NewCompanyProfileHandler(base *BaseHandler, companyService services.CompanyProfileService) *CompanyProfileHandler {
	return &CompanyProfileHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles/company")
	profiles.Use(middleware.AuthMiddleware())
	profiles.Use(middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		profiles.POST("", h.CreateProfile)
		profiles.GET("/me", h.GetMyProfile)
		profiles.PATCH("/me", h.UpdateMyProfile)
		profiles.POST("/me/logo", h.UploadLogo)
		profiles.POST("/me/metrics/recount", h.RecountMetrics)
	}
}

func (h *CompanyProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.companyService.CreateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *CompanyProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.companyService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CompanyProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.companyService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CompanyProfileHandler) UploadLogo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	header, content, ok := h.ReadUploadedFile(c, "file")
	if !ok {
		return
	}

	upload := &dto.LogoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}

	profile, err := h.companyService.UploadLogo(c.Request.Context(), userID, upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CompanyProfileHandler) RecountMetrics(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	metrics, err := h.companyService.RecountMetrics(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
