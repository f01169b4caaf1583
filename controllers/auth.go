package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"crm-backend/config"
	"crm-backend/models"
	"crm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Root sends authenticated users to the dashboard and everyone else to
// the login page.
func Root(c *gin.Context) {
	if token, err := c.Cookie("token"); err == nil && token != "" {
		if _, err := utils.ParseToken(token); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	utils.RenderPage(c, "Auth/Login", gin.H{})
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		utils.RespondWithValidationErrors(c, utils.ValidationErrors(verrs))
		return
	}

	var existing models.User
	result := config.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		errs := utils.FieldErrors{}
		errs.Add("email", "The email has already been taken.")
		utils.RespondWithValidationErrors(c, errs)
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password, // hashed in the BeforeCreate hook
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if !issueTokenCookie(c, user.ID.String()) {
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		utils.RespondWithValidationErrors(c, utils.ValidationErrors(verrs))
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.TrimSpace(input.Email)).First(&user)
	if result.Error != nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		errs := utils.FieldErrors{}
		errs.Add("email", "These credentials do not match our records.")
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	if !issueTokenCookie(c, user.ID.String()) {
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.Redirect(http.StatusFound, "/login")
}

func issueTokenCookie(c *gin.Context, userID string) bool {
	token, err := utils.GenerateToken(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return false
	}

	expiryHours := 24
	c.SetCookie("token", token, expiryHours*3600, "/", "", true, true)
	return true
}
