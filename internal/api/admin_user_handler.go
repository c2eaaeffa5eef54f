package api

import (
	"errors"
	"net/http"

	"skillsynclab/backend/internal/domain"
	"skillsynclab/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminUserHandler holds the user service dependency.
type AdminUserHandler struct {
	userService service.AdminUserService
}

// NewAdminUserHandler creates a new AdminUserHandler.
func NewAdminUserHandler(userService service.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService}
}

// --- DTOs for API (Data Transfer Objects) ---

// UserRequest defines the expected JSON for creating or replacing a user.
type UserRequest struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest defines the expected JSON for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendCodeRequest defines the expected JSON for the verification-code endpoint.
type SendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ProfilePhotoRequest defines the expected JSON for requesting an upload URL.
type ProfilePhotoRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// UserResponse is the DTO for returning account details. The password never
// leaves the service boundary.
type UserResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// MapUserToResponse converts a domain.AdminUser to a UserResponse DTO.
func MapUserToResponse(u *domain.AdminUser) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
	}
}

// MapUsersToResponse converts a slice of domain.AdminUser to response DTOs.
func MapUsersToResponse(users []domain.AdminUser) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateUser handles POST /admin/user. A taken email is a 409.
func (h *AdminUserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &domain.AdminUser{
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			abortWithError(c, http.StatusConflict, "Email already exists!")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// GetAllUsers handles GET /admin/user.
func (h *AdminUserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(users))
}

// GetUserByID handles GET /admin/user/:id.
func (h *AdminUserHandler) GetUserByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortNotFound(c, "User not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateUser handles PUT /admin/user/:id. Renaming a user also rewrites the
// denormalized owner name on their learning plans.
func (h *AdminUserHandler) UpdateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), &domain.AdminUser{
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortNotFound(c, "User not found")
			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			abortWithError(c, http.StatusConflict, "Email already exists!")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteUser handles DELETE /admin/user/:id, cascading over the user's
// dependent records before removing the account.
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortNotFound(c, "User not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User account and related data deleted successfully."})
}

// Login handles POST /admin/login.
func (h *AdminUserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortNotFound(c, "Email not found: "+req.Email)
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			abortWithError(c, http.StatusUnauthorized, "Invalid credentials!")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckEmail handles GET /admin/checkEmail?email=... and returns a bare boolean.
func (h *AdminUserHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	exists, err := h.userService.EmailExists(c.Request.Context(), email)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exists)
}

// SendVerificationCode handles POST /admin/sendVerificationCode.
func (h *AdminUserHandler) SendVerificationCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Email and code are required.")
		return
	}

	if err := h.userService.SendVerificationCode(c.Request.Context(), req.Email, req.Code); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent successfully."})
}

// RequestProfilePhotoUpload handles POST /admin/user/:id/profilePhoto and
// returns a presigned URL the client PUTs the image to.
func (h *AdminUserHandler) RequestProfilePhotoUpload(c *gin.Context) {
	var req ProfilePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Content type is required.")
		return
	}

	url, err := h.userService.ProfilePhotoUploadURL(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortNotFound(c, "User not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": url})
}

// GetProfilePhoto handles GET /admin/user/:id/profilePhoto and returns a
// presigned download URL.
func (h *AdminUserHandler) GetProfilePhoto(c *gin.Context) {
	url, err := h.userService.ProfilePhotoURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrNoProfilePhoto) {
			abortNotFound(c, "Profile photo not found")
			return
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
