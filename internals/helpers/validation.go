// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap mengubah validator.ValidationErrors menjadi map field →
// pesan, supaya bisa dikirim lewat JsonValidationError (422).
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "min":
			msg = "minimal " + fe.Param()
		case "max":
			msg = "maksimal " + fe.Param()
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param()
		case "uuid":
			msg = "harus UUID valid"
		case "email":
			msg = "format email tidak valid"
		default:
			msg = "format tidak valid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
