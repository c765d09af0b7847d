package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Jackson-git-lab/players-api/config"
	"github.com/Jackson-git-lab/players-api/models"

	"github.com/gin-gonic/gin"
)

var validClasses = []string{"guerrier", "mage", "archer", "voleur"}

// PlayerRequest carries every mutable player field. OwnerID is absent on
// purpose: ownership always comes from the caller identity.
type PlayerRequest struct {
	Nom    string   `json:"nom" binding:"required,min=3,max=30"`
	Classe string   `json:"classe" binding:"required,min=3,max=20"`
	Niveau *int     `json:"niveau" binding:"omitempty,gte=1,lte=100"`
	Trophe []string `json:"trophe"`
	Actif  *bool    `json:"actif"`
}

func (r *PlayerRequest) validate() (string, bool) {
	classe := strings.ToLower(r.Classe)
	for _, v := range validClasses {
		if classe == v {
			if len(r.Trophe) > 10 {
				return "a player cannot have more than 10 trophies", false
			}
			r.Classe = classe
			return "", true
		}
	}
	return "classe must be one of: " + strings.Join(validClasses, ", "), false
}

func playerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("player_id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// Welcome is the authenticated connectivity probe.
func Welcome(c *gin.Context) {
	if _, ok := CurrentUser(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if err := config.DB.Exec("SELECT 1").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Message": "Bienvenue Sur Notre Api"})
}

// GetMyPlayers lists the caller's players, oldest id first.
func GetMyPlayers(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	players := []models.Player{}
	if err := config.DB.Where("owner_id = ?", user.ID).Order("id asc").Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve players"})
		return
	}
	c.JSON(http.StatusOK, players)
}

// GetPlayerByID returns one of the caller's players. A player owned by
// someone else is reported exactly like a missing one.
func GetPlayerByID(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var player models.Player
	if err := config.DB.Where("id = ? AND owner_id = ?", playerID, user.ID).First(&player).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	c.JSON(http.StatusOK, player)
}

// GetPlayersByName searches the caller's players by partial name,
// case-insensitive. The query must be at least 3 characters.
func GetPlayersByName(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	nom := c.Query("nom")
	if utf8.RuneCountInString(nom) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nom must be at least 3 characters"})
		return
	}

	var players []models.Player
	if err := config.DB.
		Where("LOWER(nom) LIKE ? AND owner_id = ?", "%"+strings.ToLower(nom)+"%", user.ID).
		Order("id asc").
		Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search players"})
		return
	}
	if len(players) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no player found with this name"})
		return
	}
	c.JSON(http.StatusOK, players)
}

// CreatePlayer inserts a player owned by the caller. The owner is forced
// to the caller id regardless of the payload.
func CreatePlayer(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	player := models.Player{
		Nom:     req.Nom,
		Classe:  req.Classe,
		Niveau:  1,
		Trophe:  req.Trophe,
		Actif:   true,
		OwnerID: user.ID,
	}
	if req.Niveau != nil {
		player.Niveau = *req.Niveau
	}
	if req.Actif != nil {
		player.Actif = *req.Actif
	}
	if player.Trophe == nil {
		player.Trophe = []string{}
	}

	tx := config.DB.Begin()
	if err := tx.Create(&player).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create player"})
		return
	}
	tx.Commit()

	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer overwrites every mutable field of one of the caller's
// players. Full-replace semantics: there is no partial merge here.
func UpdatePlayer(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var player models.Player
	if err := config.DB.Where("id = ? AND owner_id = ?", playerID, user.ID).First(&player).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	player.Nom = req.Nom
	player.Classe = req.Classe
	player.Niveau = 1
	if req.Niveau != nil {
		player.Niveau = *req.Niveau
	}
	player.Trophe = req.Trophe
	if player.Trophe == nil {
		player.Trophe = []string{}
	}
	player.Actif = true
	if req.Actif != nil {
		player.Actif = *req.Actif
	}

	tx := config.DB.Begin()
	if err := tx.Save(&player).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update player"})
		return
	}
	tx.Commit()

	c.Status(http.StatusNoContent)
}

// DeletePlayer removes one of the caller's players.
func DeletePlayer(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	playerID, ok := playerIDParam(c)
	if !ok {
		return
	}

	var player models.Player
	if err := config.DB.Where("id = ? AND owner_id = ?", playerID, user.ID).First(&player).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	tx := config.DB.Begin()
	if err := tx.Delete(&player).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete player"})
		return
	}
	tx.Commit()

	c.Status(http.StatusNoContent)
}
