// file: internals/features/school/academics/levels/controller/level_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/levels/model"
	"sekolahku_backend/internals/features/school/academics/levels/service"
	helper "sekolahku_backend/internals/helpers"
)

type LevelController struct {
	DB *gorm.DB
}

// GET /levels — daftar jenjang aktif (dropdown)
func (h *LevelController) List(c *fiber.Ctx) error {
	var levels []model.AcademicLevelModel
	if err := h.DB.WithContext(c.Context()).
		Where("academic_level_is_active = ?", true).
		Order("academic_level_order ASC").
		Find(&levels).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar jenjang")
	}
	return helper.JsonOK(c, "ok", levels)
}

// GET /levels/scale?level_key= — rentang nilai sah utk form input
func (h *LevelController) Scale(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Query("level_key"))
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "level_key wajib diisi")
	}
	sc, err := service.Range(key)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Jenjang tidak dikenal")
	}
	return helper.JsonOK(c, "ok", sc)
}
