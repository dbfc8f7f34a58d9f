package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/config"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/models"
	"github.com/studio-navalha/agenda-api/internal/validators"
)

// ======================================================
// AUTH HANDLER
// ======================================================

type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// ------------------------------------------------------
// REGISTER
// ------------------------------------------------------

type registerInput struct {
	ShopName string `json:"shop_name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	if !validators.IsEmailDomainValid(in.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "Domínio de e-mail inválido")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_error", "Erro ao processar senha")
		return
	}

	shop := models.Barbershop{
		Name: in.ShopName,
		Slug: strings.ToLower(strings.TrimSpace(in.Slug)),
	}

	err = h.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&shop).Error; err != nil {
			return err
		}

		owner := models.User{
			BarbershopID: shop.ID,
			Name:         in.Name,
			Email:        strings.ToLower(in.Email),
			PasswordHash: string(hash),
			Phone:        in.Phone,
			Role:         "owner",
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		httperr.Conflict(c, "already_registered", "Slug ou e-mail já cadastrado")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barbershop_id": shop.ID,
		"slug":          shop.Slug,
	})
}

// ------------------------------------------------------
// LOGIN
// ------------------------------------------------------

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	var user models.User
	err := h.DB.WithContext(c.Request.Context()).
		Where("email = ?", strings.ToLower(in.Email)).
		First(&user).Error
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          float64(user.ID),
		"barbershopId": float64(user.BarbershopID),
		"role":         user.Role,
		"iat":          now.Unix(),
		"exp":          now.Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_error", "Erro ao gerar token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
