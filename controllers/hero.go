package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Jackson-git-lab/players-api/config"
	"github.com/Jackson-git-lab/players-api/models"

	"github.com/gin-gonic/gin"
)

type HeroCreateRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=100"`
	FirstName  string   `json:"first_name" binding:"omitempty,max=100"`
	Occupation []string `json:"occupation"`
	Powers     []string `json:"powers"`
	Hobbies    []string `json:"hobbies"`
	Type       string   `json:"type" binding:"omitempty,max=50"`
	Rank       *int     `json:"rank" binding:"omitempty,gte=0,lte=100"`
}

// HeroUpdateRequest uses pointers throughout: only the fields present in
// the payload are applied. This is deliberately different from the
// full-replace policy on /player/update.
type HeroUpdateRequest struct {
	Name       *string   `json:"name" binding:"omitempty,min=1,max=100"`
	FirstName  *string   `json:"first_name" binding:"omitempty,max=100"`
	Occupation *[]string `json:"occupation"`
	Powers     *[]string `json:"powers"`
	Hobbies    *[]string `json:"hobbies"`
	Type       *string   `json:"type" binding:"omitempty,max=50"`
	Rank       *int      `json:"rank" binding:"omitempty,gte=0,lte=100"`
}

func heroIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("hero_id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hero id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// GetAllHeroes lists heroes with skip/limit pagination.
func GetAllHeroes(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	heroes := []models.Hero{}
	if err := config.DB.Offset(skip).Limit(limit).Order("id asc").Find(&heroes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve heroes"})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// GetHeroesByType returns heroes whose type matches, case-insensitive.
func GetHeroesByType(c *gin.Context) {
	heroType := c.Query("hero_type")
	if heroType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hero_type query parameter is required"})
		return
	}

	var heroes []models.Hero
	if err := config.DB.Where("LOWER(type) LIKE ?", "%"+strings.ToLower(heroType)+"%").Find(&heroes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve heroes"})
		return
	}
	if len(heroes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hero found with type '" + heroType + "'"})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// GetHeroesByRank returns heroes at or above the given rank, best first.
func GetHeroesByRank(c *gin.Context) {
	rank, err := strconv.Atoi(c.Query("hero_rank"))
	if err != nil || rank < 0 || rank > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hero_rank must be an integer between 0 and 100"})
		return
	}

	var heroes []models.Hero
	if err := config.DB.Where("rank >= ?", rank).Order("rank desc").Find(&heroes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve heroes"})
		return
	}
	if len(heroes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hero found with rank >= " + strconv.Itoa(rank)})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// SearchHeroes combines the optional name/type/rank filters.
func SearchHeroes(c *gin.Context) {
	query := config.DB.Model(&models.Hero{})

	if name := c.Query("name"); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if heroType := c.Query("type"); heroType != "" {
		query = query.Where("LOWER(type) LIKE ?", "%"+strings.ToLower(heroType)+"%")
	}
	if minRank := c.Query("min_rank"); minRank != "" {
		v, err := strconv.Atoi(minRank)
		if err != nil || v < 0 || v > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_rank must be an integer between 0 and 100"})
			return
		}
		query = query.Where("rank >= ?", v)
	}
	if maxRank := c.Query("max_rank"); maxRank != "" {
		v, err := strconv.Atoi(maxRank)
		if err != nil || v < 0 || v > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_rank must be an integer between 0 and 100"})
			return
		}
		query = query.Where("rank <= ?", v)
	}

	var heroes []models.Hero
	if err := query.Find(&heroes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search heroes"})
		return
	}
	if len(heroes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hero found with these criteria"})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// GetHeroesStats aggregates global and per-type statistics.
func GetHeroesStats(c *gin.Context) {
	var total int64
	config.DB.Model(&models.Hero{}).Count(&total)

	if total == 0 {
		c.JSON(http.StatusOK, gin.H{"total_heroes": 0, "message": "database is empty"})
		return
	}

	var minRank, maxRank int
	var avgRank float64
	config.DB.Model(&models.Hero{}).Select("COALESCE(MIN(rank), 0)").Scan(&minRank)
	config.DB.Model(&models.Hero{}).Select("COALESCE(MAX(rank), 0)").Scan(&maxRank)
	config.DB.Model(&models.Hero{}).Select("COALESCE(AVG(rank), 0)").Scan(&avgRank)

	var topHero models.Hero
	config.DB.Order("rank desc").First(&topHero)

	type typeStat struct {
		Type    string
		Count   int64
		AvgRank float64
	}
	var typeStats []typeStat
	config.DB.Model(&models.Hero{}).
		Select("type, COUNT(id) AS count, COALESCE(AVG(rank), 0) AS avg_rank").
		Where("type <> ''").
		Group("type").
		Scan(&typeStats)

	byType := gin.H{}
	avgByType := gin.H{}
	for _, s := range typeStats {
		byType[s.Type] = s.Count
		avgByType[s.Type] = s.AvgRank
	}

	c.JSON(http.StatusOK, gin.H{
		"total_heroes": total,
		"ranks": gin.H{
			"min":     minRank,
			"max":     maxRank,
			"average": avgRank,
		},
		"top_hero":             topHero.Name,
		"heroes_by_type":       byType,
		"average_rank_by_type": avgByType,
	})
}

// GetValidTypes returns the closed set of hero types.
func GetValidTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid_types": models.ValidHeroTypes,
		"total":       len(models.ValidHeroTypes),
	})
}

// GetTopHeroes returns the best-ranked heroes.
func GetTopHeroes(c *gin.Context) {
	limit, err := strconv.Atoi(c.Param("limit"))
	if err != nil || limit < 1 || limit > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
		return
	}

	heroes := []models.Hero{}
	if err := config.DB.Order("rank desc").Limit(limit).Find(&heroes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve heroes"})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// GetHeroesByPower returns heroes having the given power. The powers
// column is JSON-serialized, so the case-insensitive match happens in
// memory rather than in SQL.
func GetHeroesByPower(c *gin.Context) {
	power := strings.ToLower(c.Param("power_name"))

	var all []models.Hero
	if err := config.DB.Order("id asc").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve heroes"})
		return
	}

	heroes := []models.Hero{}
	for _, hero := range all {
		for _, p := range hero.Powers {
			if strings.ToLower(p) == power {
				heroes = append(heroes, hero)
				break
			}
		}
	}
	if len(heroes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hero found with power '" + c.Param("power_name") + "'"})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// GetHeroByID returns a single hero.
func GetHeroByID(c *gin.Context) {
	heroID, ok := heroIDParam(c)
	if !ok {
		return
	}

	var hero models.Hero
	if err := config.DB.First(&hero, heroID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hero not found"})
		return
	}
	c.JSON(http.StatusOK, hero)
}

// GetHeroByName searches heroes by partial name, case-insensitive.
func GetHeroByName(c *gin.Context) {
	name := c.Param("hero_name")

	var heroes []models.Hero
	if err := config.DB.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").Find(&heroes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search heroes"})
		return
	}
	if len(heroes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hero found with name '" + name + "'"})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// CreateHero inserts a hero; names are unique across the table.
func CreateHero(c *gin.Context) {
	var req HeroCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
		return
	}
	if req.Type != "" {
		req.Type = strings.ToLower(req.Type)
		if !models.IsValidHeroType(req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type, allowed types: " + strings.Join(models.ValidHeroTypes, ", ")})
			return
		}
	}

	var existing models.Hero
	if err := config.DB.Where("LOWER(name) = ?", strings.ToLower(req.Name)).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "a hero named '" + req.Name + "' already exists"})
		return
	}

	hero := models.Hero{
		Name:       req.Name,
		FirstName:  req.FirstName,
		Occupation: req.Occupation,
		Powers:     req.Powers,
		Hobbies:    req.Hobbies,
		Type:       req.Type,
		Rank:       req.Rank,
	}
	if hero.Occupation == nil {
		hero.Occupation = []string{}
	}
	if hero.Powers == nil {
		hero.Powers = []string{}
	}
	if hero.Hobbies == nil {
		hero.Hobbies = []string{}
	}

	tx := config.DB.Begin()
	if err := tx.Create(&hero).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create hero"})
		return
	}
	tx.Commit()

	c.JSON(http.StatusCreated, hero)
}

// UpdateHero applies only the supplied fields and returns the result.
func UpdateHero(c *gin.Context) {
	heroID, ok := heroIDParam(c)
	if !ok {
		return
	}

	var req HeroUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	var hero models.Hero
	if err := config.DB.First(&hero, heroID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hero not found"})
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		hero.Name = name
	}
	if req.FirstName != nil {
		hero.FirstName = *req.FirstName
	}
	if req.Occupation != nil {
		hero.Occupation = *req.Occupation
	}
	if req.Powers != nil {
		hero.Powers = *req.Powers
	}
	if req.Hobbies != nil {
		hero.Hobbies = *req.Hobbies
	}
	if req.Type != nil {
		t := strings.ToLower(*req.Type)
		if !models.IsValidHeroType(t) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type, allowed types: " + strings.Join(models.ValidHeroTypes, ", ")})
			return
		}
		hero.Type = t
	}
	if req.Rank != nil {
		hero.Rank = req.Rank
	}

	tx := config.DB.Begin()
	if err := tx.Save(&hero).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update hero"})
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, hero)
}

// DeleteHero removes a hero.
func DeleteHero(c *gin.Context) {
	heroID, ok := heroIDParam(c)
	if !ok {
		return
	}

	var hero models.Hero
	if err := config.DB.First(&hero, heroID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hero not found"})
		return
	}

	tx := config.DB.Begin()
	if err := tx.Delete(&hero).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete hero"})
		return
	}
	tx.Commit()

	c.Status(http.StatusNoContent)
}
