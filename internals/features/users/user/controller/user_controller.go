// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	gradeRepo "sekolahku_backend/internals/features/school/academics/grades/repository"
	"sekolahku_backend/internals/features/users/user/dto"
	"sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/*
=========================================================

	CREATE (by admin)
	POST /a/users

	Satu transaksi: akun + profil siswa (role student) atau
	scope jenjang (principal/chairperson).

=========================================================
*/
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if req.Role == constants.RoleStudent && req.StudentNumber == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "student_number wajib untuk role student")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := req.ToModel(string(hashed))
	if err := uc.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email atau nomor induk sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
		}

		if req.Role == constants.RoleStudent {
			if err := tx.Create(&model.StudentProfileModel{
				StudentProfileUserID:       user.UserID,
				StudentProfileNumber:       req.StudentNumber,
				StudentProfileYearLevelTag: req.StudentYearLevelTag,
			}).Error; err != nil {
				msg := strings.ToLower(err.Error())
				if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
					return fiber.NewError(fiber.StatusConflict, "Nomor induk sudah terdaftar")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil siswa")
			}
		}

		for _, levelID := range req.LevelIDs {
			if err := tx.Create(&model.UserLevelModel{
				UserLevelUserID:  user.UserID,
				UserLevelLevelID: levelID,
			}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan scope jenjang")
			}
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromUserModel(user))
}

/*
=========================================================

	LIST
	GET /a/users?role=&q=

=========================================================
*/
func (uc *UserController) List(c *fiber.Ctx) error {
	q := uc.DB.WithContext(c.Context()).Model(&model.UserModel{})

	if v := strings.ToLower(strings.TrimSpace(c.Query("role"))); v != "" {
		q = q.Where("user_role = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+v+"%", "%"+v+"%")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := q.Order("user_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", dto.FromUserModels(users), &pg)
}

/*
=========================================================

	LOOKUP SISWA
	GET /u/students/lookup?identifier=

	Dipakai form input nilai utk memastikan identifier (uuid
	atau nomor induk) resolve sebelum baris dikirim.

=========================================================
*/
func (uc *UserController) StudentLookup(c *fiber.Ctx) error {
	identifier := strings.TrimSpace(c.Query("identifier"))
	if identifier == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "identifier wajib diisi")
	}

	student, err := gradeRepo.NewStudentDirectoryGorm(uc.DB).FindByIDOrNumber(c.Context(), identifier)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user_id":        student.ID,
		"user_name":      student.Name,
		"year_level_tag": student.YearLevelTag,
	})
}
