package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicantProfileHandler struct {
	*BaseHandler
	profileService services.ApplicantProfileService
}

func NewApplicantProfileHandler(base *BaseHandler, profileService services.ApplicantProfileService) *ApplicantProfileHandler {
	return &ApplicantProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ApplicantProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles/applicant")
	profiles.Use(middleware.AuthMiddleware())
	profiles.Use(middleware.RoleMiddleware(models.UserRoleApplicant))
	{
		profiles.POST("", h.CreateProfile)
		profiles.GET("/me", h.GetMyProfile)
		profiles.PATCH("/me", h.UpdateMyProfile)

		profiles.POST("/me/education", h.AddEducation)
		profiles.PATCH("/me/education/:entryId", h.UpdateEducation)
		profiles.DELETE("/me/education/:entryId", h.DeleteEducation)

		profiles.POST("/me/experience", h.AddExperience)
		profiles.PATCH("/me/experience/:entryId", h.UpdateExperience)
		profiles.DELETE("/me/experience/:entryId", h.DeleteExperience)

		profiles.POST("/me/resume", h.UploadResume)
		profiles.DELETE("/me/resume/:resumeId", h.DeleteResume)
	}
}

func (h *ApplicantProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicantProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ApplicantProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ApplicantProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicantProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Education

func (h *ApplicantProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddEducationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.profileService.AddEducation(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ApplicantProfileHandler) UpdateEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEducationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.profileService.UpdateEducation(c.Request.Context(), userID, c.Param("entryId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *ApplicantProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteEducation(c.Request.Context(), userID, c.Param("entryId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Experience

func (h *ApplicantProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.profileService.AddExperience(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ApplicantProfileHandler) UpdateExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.profileService.UpdateExperience(c.Request.Context(), userID, c.Param("entryId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *ApplicantProfileHandler) DeleteExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteExperience(c.Request.Context(), userID, c.Param("entryId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Resume

func (h *ApplicantProfileHandler) UploadResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	header, content, ok := h.ReadUploadedFile(c, "file")
	if !ok {
		return
	}

	upload := &dto.ResumeUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}

	resume, err := h.profileService.UploadResume(c.Request.Context(), userID, upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resume)
}

func (h *ApplicantProfileHandler) DeleteResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteResume(c.Request.Context(), userID, c.Param("resumeId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
