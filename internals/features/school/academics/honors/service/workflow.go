// file: internals/features/school/academics/honors/service/workflow.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/honors/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const maxReasonLen = 1000

var (
	ErrInvalidTransition = errors.New("transisi status predikat tidak valid")
	ErrRecordNotFound    = errors.New("predikat tidak ditemukan")
)

// ReasonError: teks alasan wajib tidak memenuhi syarat (422).
type ReasonError struct {
	Msg string
}

func (e *ReasonError) Error() string { return e.Msg }

// HonorStore adalah persistence minimal workflow predikat.
type HonorStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.HonorRecordModel, error)

	// ApplyTransition: status + stamp seatomik, ber-guard status asal.
	ApplyTransition(ctx context.Context, id uuid.UUID, from, to approval.Status, stamp approval.Stamp) error

	// ApplyOverride menandai is_overridden + alasan tanpa menyentuh status.
	ApplyOverride(ctx context.Context, id uuid.UUID, stamp approval.Stamp) error
}

// Approver: scope persetujuan per jenjang — kontrak yang sama dengan nilai,
// tapi cek assignment mapel tidak berlaku utk honor (hanya scope jenjang).
type Approver interface {
	CanApprove(actor helperAuth.Actor, levelID uuid.UUID) error
}

// HonorService menggerakkan siklus persetujuan predikat honor.
type HonorService struct {
	honors HonorStore
	authz  Approver
}

func NewHonorService(honors HonorStore, authz Approver) *HonorService {
	return &HonorService{honors: honors, authz: authz}
}

// Approve: pending → approved (terminal).
func (s *HonorService) Approve(ctx context.Context, recordID uuid.UUID, actor helperAuth.Actor) (*model.HonorRecordModel, error) {
	rec, err := s.honors.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanApprove(actor, rec.HonorRecordLevelID); err != nil {
		return nil, err
	}
	return s.move(ctx, rec, model.HonorStatusApproved, approval.NewStamp(actor.UserID, nil))
}

// Reject: pending → rejected (terminal), alasan wajib.
func (s *HonorService) Reject(ctx context.Context, recordID uuid.UUID, actor helperAuth.Actor, reason string) (*model.HonorRecordModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &ReasonError{Msg: "alasan penolakan wajib diisi"}
	}
	if len(reason) > maxReasonLen {
		return nil, &ReasonError{Msg: "alasan penolakan maksimal 1000 karakter"}
	}

	rec, err := s.honors.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanApprove(actor, rec.HonorRecordLevelID); err != nil {
		return nil, err
	}
	return s.move(ctx, rec, model.HonorStatusRejected, approval.NewStamp(actor.UserID, &reason))
}

// Override menandai koreksi manual eligibility. Bekerja pada status apa pun
// dan TIDAK mengubah status persetujuan — hanya flag + alasan + stamp.
func (s *HonorService) Override(ctx context.Context, recordID uuid.UUID, actor helperAuth.Actor, reason string) (*model.HonorRecordModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &ReasonError{Msg: "alasan override wajib diisi"}
	}
	if len(reason) > maxReasonLen {
		return nil, &ReasonError{Msg: "alasan override maksimal 1000 karakter"}
	}

	rec, err := s.honors.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanApprove(actor, rec.HonorRecordLevelID); err != nil {
		return nil, err
	}

	stamp := approval.NewStamp(actor.UserID, &reason)
	if err := s.honors.ApplyOverride(ctx, rec.HonorRecordID, stamp); err != nil {
		return nil, err
	}

	rec.HonorRecordIsOverridden = true
	rec.HonorRecordOverriddenBy = &stamp.ActorID
	rec.HonorRecordOverriddenAt = &stamp.At
	rec.HonorRecordOverrideReason = stamp.Reason
	return rec, nil
}

func (s *HonorService) move(ctx context.Context, rec *model.HonorRecordModel, to approval.Status, stamp approval.Stamp) (*model.HonorRecordModel, error) {
	from := rec.HonorRecordStatus
	if !model.HonorTransitions.CanMove(from, to) {
		return nil, ErrInvalidTransition
	}
	if err := s.honors.ApplyTransition(ctx, rec.HonorRecordID, from, to, stamp); err != nil {
		return nil, err
	}

	rec.HonorRecordStatus = to
	switch to {
	case model.HonorStatusApproved:
		rec.HonorRecordApprovedBy = &stamp.ActorID
		rec.HonorRecordApprovedAt = &stamp.At
	case model.HonorStatusRejected:
		rec.HonorRecordRejectedBy = &stamp.ActorID
		rec.HonorRecordRejectedAt = &stamp.At
		rec.HonorRecordRejectReason = stamp.Reason
	}
	return rec, nil
}
