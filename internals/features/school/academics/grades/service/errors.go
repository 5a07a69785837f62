// file: internals/features/school/academics/grades/service/errors.go
package service

import "errors"

var (
	// ErrInvalidTransition: status record tidak mengizinkan operasi ini (409).
	ErrInvalidTransition = errors.New("transisi status tidak valid")

	// ErrStudentNotFound: identifier tidak cocok dengan siswa manapun (404).
	ErrStudentNotFound = errors.New("siswa tidak ditemukan")

	// ErrRecordNotFound: catatan nilai tidak ada (404).
	ErrRecordNotFound = errors.New("catatan nilai tidak ditemukan")

	// ErrDuplicateRecord: constraint unik identity terpicu di luar jalur
	// upsert yang diharapkan (409).
	ErrDuplicateRecord = errors.New("catatan nilai dengan identitas sama sudah ada")

	// ErrInvalidPeriod: periode tidak sah untuk jenjang itu (422).
	ErrInvalidPeriod = errors.New("periode tidak valid untuk jenjang ini")

	// ErrEmptyBatch: berkas impor tidak punya satu baris data pun.
	ErrEmptyBatch = errors.New("berkas impor kosong")
)

// ReasonError: teks alasan wajib tidak memenuhi syarat (422, bukan 403).
type ReasonError struct {
	Msg string
}

func (e *ReasonError) Error() string { return e.Msg }
