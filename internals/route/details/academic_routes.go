// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	assignmentRoute "sekolahku_backend/internals/features/school/academics/assignments/route"
	gradeRoute "sekolahku_backend/internals/features/school/academics/grades/route"
	honorRoute "sekolahku_backend/internals/features/school/academics/honors/route"
	levelRoute "sekolahku_backend/internals/features/school/academics/levels/route"
	termRoute "sekolahku_backend/internals/features/school/academics/terms/route"
	"sekolahku_backend/internals/middlewares"
)

// AcademicUserRoutes: dipasang di /api/u — jalur baca + input nilai.
// Scope tulis per operasi (assignment adviser, jenjang) dicek service.
func AcademicUserRoutes(r fiber.Router, db *gorm.DB) {
	levelRoute.AllLevelRoutes(r, db)
	termRoute.UserTermRoutes(r, db)
	assignmentRoute.UserAssignmentRoutes(r, db)
	gradeRoute.UserGradeRoutes(r, db)
}

// AcademicAdminRoutes: dipasang di /api/a (principal/admin/owner).
// Antrean & transisi persetujuan terbuka utk semua approver; CRUD
// referensi (periode, mapel, penugasan) dikunci admin/owner.
func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	gradeRoute.AdminGradeRoutes(r, db)
	honorRoute.AdminHonorRoutes(r, db)

	ref := r.Group("", middlewares.RequireRoles("data referensi akademik", constants.OwnerAndAbove...))
	termRoute.AdminTermRoutes(ref, db)
	assignmentRoute.AdminAssignmentRoutes(ref, db)
}
