package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/pdf"
	"rx-prescription-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type ShareUsecase interface {
	SendEmail(ctx context.Context, doctorUserID uuid.UUID, req *dto.ShareEmailRequest) error
	CreateTempLink(ctx context.Context, doctorUserID uuid.UUID, prescriptionID uint) (*dto.TempLinkResponse, error)
}

type shareUsecase struct {
	log                 *logrus.Logger
	prescriptionUsecase PrescriptionUsecase
	renderer            *pdf.Renderer
	mailer              *service.MailerService
	tempLinks           *service.TempLinkService
}

func NewShareUsecase(
	log *logrus.Logger,
	prescriptionUsecase PrescriptionUsecase,
	renderer *pdf.Renderer,
	mailer *service.MailerService,
	tempLinks *service.TempLinkService,
) ShareUsecase {
	return &shareUsecase{
		log:                 log,
		prescriptionUsecase: prescriptionUsecase,
		renderer:            renderer,
		mailer:              mailer,
		tempLinks:           tempLinks,
	}
}

// SendEmail mails free-form content; when a prescription id is present the
// rendered document rides along as an attachment. Ownership is enforced by
// the prescription lookup.
func (u *shareUsecase) SendEmail(ctx context.Context, doctorUserID uuid.UUID, req *dto.ShareEmailRequest) error {
	var attachment []byte
	var attachmentName string

	if req.PrescriptionID != 0 {
		document, err := u.prescriptionUsecase.GetDocument(ctx, doctorUserID, req.PrescriptionID)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := u.renderer.RenderPrescription(&buf, document); err != nil {
			u.log.Warnf("Failed to render prescription %d: %+v", req.PrescriptionID, err)
			return err
		}

		attachment = buf.Bytes()
		attachmentName = fmt.Sprintf("prescription-%s.pdf", document.PrescriptionID)
	}

	if err := u.mailer.SendDocument(req.To, req.Subject, req.Content, attachmentName, attachment); err != nil {
		u.log.Warnf("Failed to send share mail to %s: %+v", req.To, err)
		return err
	}

	u.log.Infof("Share mail sent to %s (prescription=%d)", req.To, req.PrescriptionID)
	return nil
}

// CreateTempLink renders the prescription to a short-lived file that can be
// downloaded without authentication until the janitor removes it.
func (u *shareUsecase) CreateTempLink(ctx context.Context, doctorUserID uuid.UUID, prescriptionID uint) (*dto.TempLinkResponse, error) {
	document, err := u.prescriptionUsecase.GetDocument(ctx, doctorUserID, prescriptionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := u.renderer.RenderPrescription(&buf, document); err != nil {
		u.log.Warnf("Failed to render prescription %d: %+v", prescriptionID, err)
		return nil, err
	}

	url, expiresAt, err := u.tempLinks.Put(document.PrescriptionID, buf.Bytes())
	if err != nil {
		u.log.Warnf("Failed to store temp link: %+v", err)
		return nil, err
	}

	return &dto.TempLinkResponse{
		URL:       url,
		ExpiresAt: expiresAt,
	}, nil
}
