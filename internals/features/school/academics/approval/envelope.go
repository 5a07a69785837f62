// file: internals/features/school/academics/approval/envelope.go
//
// Satu mesin status generik untuk dua resource yang bentuknya sama tapi
// kosakatanya beda: nilai (draft → submitted → approved/returned) dan
// predikat honor (pending → approved/rejected). Status disimpan sebagai satu
// kolom enum string, bukan tiga boolean lepas — kombinasi ilegal
// (approved sekaligus returned) jadi tidak mungkin terekam.
package approval

import (
	"time"

	"github.com/google/uuid"
)

// Status adalah satu keadaan dalam siklus persetujuan.
type Status string

// Table memetakan status asal ke daftar status tujuan yang diizinkan.
type Table map[Status][]Status

// CanMove melapor apakah transisi from→to diizinkan tabel ini.
func (t Table) CanMove(from, to Status) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal: tidak ada transisi keluar dari status ini.
func (t Table) Terminal(s Status) bool { return len(t[s]) == 0 }

// Stamp adalah jejak audit satu transisi: siapa, kapan, dan (kalau ada)
// alasannya. Disimpan seatomik dengan perubahan status — pembaca tidak boleh
// melihat status baru tanpa stamp-nya.
type Stamp struct {
	ActorID uuid.UUID
	At      time.Time
	Reason  *string
}

// NewStamp membuat stamp dengan waktu sekarang.
func NewStamp(actorID uuid.UUID, reason *string) Stamp {
	return Stamp{ActorID: actorID, At: time.Now(), Reason: reason}
}
