package handlers

import (
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user together with a security question used for password recovery
// @Tags auth
// @Accept json
// @Produce json
// @Param account body services.RegisterInput true "Account"
// @Success 201 {object} utils.StandardResponse{data=RegisterResponse} "User registered"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Register(c.Context(), &req)
	if err != nil {
		return handleServiceError(c, h.logger, err, "User", "Failed to register user")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Login godoc
// @Summary Obtain an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginInput true "Credentials"
// @Success 200 {object} utils.StandardResponse{data=TokenResponse} "Token"
// @Failure 400 {object} utils.StandardResponse "Unable to log in with provided credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := h.service.Login(c.Context(), &req)
	if err != nil {
		return handleServiceError(c, h.logger, err, "User", "Failed to log in")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", TokenResponse{Token: token})
}

// GetSecurityQuestion godoc
// @Summary Get the security question of a user
// @Description First step of password recovery
// @Tags auth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} utils.StandardResponse{data=SecurityQuestionResponse} "Security question"
// @Failure 404 {object} utils.StandardResponse "User or security question not found"
// @Router /auth/reset-password/{username} [get]
func (h *AuthHandler) GetSecurityQuestion(c *fiber.Ctx) error {
	question, err := h.service.GetSecurityQuestion(c.Context(), pathParam(c, "username"))
	if err != nil {
		return handleServiceError(c, h.logger, err, "Security question", "Failed to retrieve security question")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Security question retrieved successfully", SecurityQuestionResponse{
		Question: question.Question,
	})
}

// ResetPassword godoc
// @Summary Reset a password with the security answer
// @Description Second step of password recovery. The answer is compared after trimming whitespace and is case-sensitive.
// @Tags auth
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param reset body services.ResetPasswordInput true "Answer and new password"
// @Success 200 {object} utils.StandardResponse "Password reset"
// @Failure 400 {object} utils.StandardResponse "Wrong answer or weak password"
// @Failure 404 {object} utils.StandardResponse "User or security question not found"
// @Router /auth/reset-password/{username} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	username := pathParam(c, "username")

	var req services.ResetPasswordInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.ResetPassword(c.Context(), username, &req); err != nil {
		return handleServiceError(c, h.logger, err, "Security question", "Failed to reset password")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Password has been reset successfully", nil)
}
