// Package pdf renders prescriptions and certificates as paginated PDF
// documents. Rendering is a single linear pass: a declarative line list is
// built from the joined view, then emitted through gofpdf. Callers should
// render into a buffer and only deliver bytes after Render returns nil; a
// non-nil error means the stream is incomplete and must be discarded.
package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageLeftMargin = 50
	pageTopMargin  = 45
	lineHeight     = 14
	indentWidth    = 15

	letterheadWidth = 500
	signatureX      = 400
	signatureWidth  = 100
	stampWidth      = 80
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPrescription writes the prescription document as a PDF byte stream
func (r *Renderer) RenderPrescription(w io.Writer, d *PrescriptionDocument) error {
	doc := newDocument()

	r.emitHeader(doc, &d.Doctor)
	doc.pdf.Ln(2 * lineHeight)
	r.emitLines(doc, prescriptionLines(d))
	r.emitSignatureBlock(doc, &d.Doctor, false)

	if err := doc.pdf.Output(w); err != nil {
		return fmt.Errorf("render prescription %s: %w", d.PrescriptionID, err)
	}
	return nil
}

// RenderCertificate writes the medical certificate as a PDF byte stream
func (r *Renderer) RenderCertificate(w io.Writer, d *CertificateDocument) error {
	doc := newDocument()

	doc.setStyle(styleTitleFont)
	doc.centered("MEDICAL CERTIFICATE")
	doc.pdf.Ln(lineHeight)
	doc.setStyle(styleHeadingFont)
	doc.centered("This is to certify that:")
	doc.pdf.Ln(2 * lineHeight)

	r.emitLines(doc, certificateLines(d))
	r.emitSignatureBlock(doc, &d.Doctor, true)

	if err := doc.pdf.Output(w); err != nil {
		return fmt.Errorf("render certificate %s: %w", d.CertificateID, err)
	}
	return nil
}

// document bundles the engine with its cp1252 translator
type document struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func newDocument() *document {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageLeftMargin, pageTopMargin, pageLeftMargin)
	pdf.SetAutoPageBreak(true, pageTopMargin)
	pdf.AddPage()
	return &document{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

type fontStyle struct {
	style string
	size  float64
}

var (
	styleTitleFont   = fontStyle{"B", 20}
	styleHeadingFont = fontStyle{"U", 14}
	styleSectionFont = fontStyle{"U", 12}
	styleBodyFont    = fontStyle{"", 10}
)

func (d *document) setStyle(fs fontStyle) {
	d.pdf.SetFont("Helvetica", fs.style, fs.size)
}

func (d *document) centered(text string) {
	d.pdf.MultiCell(0, lineHeight, d.translate(text), "", "C", false)
}

func (r *Renderer) emitHeader(doc *document, doctor *DoctorBlock) {
	if imageUsable(doctor.LetterheadImagePath) {
		doc.pdf.ImageOptions(doctor.LetterheadImagePath, pageLeftMargin, -1, letterheadWidth, 0, true,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		return
	}

	// No letterhead on file: synthesize a text header from clinic fields
	clinicName := doctor.ClinicName
	if clinicName == "" {
		clinicName = "Medical Clinic"
	}
	doc.setStyle(styleTitleFont)
	doc.centered(clinicName)
	doc.setStyle(styleBodyFont)
	if doctor.ClinicAddress != "" {
		doc.centered(doctor.ClinicAddress)
	}
	if doctor.ClinicPhone != "" {
		doc.centered("Phone: " + doctor.ClinicPhone)
	}
}

func (r *Renderer) emitLines(doc *document, lines []docLine) {
	for _, line := range lines {
		switch line.style {
		case styleHeading:
			doc.setStyle(styleHeadingFont)
			doc.pdf.MultiCell(0, lineHeight+4, doc.translate(line.text), "", "L", false)
		case styleSection:
			doc.setStyle(styleSectionFont)
			doc.pdf.MultiCell(0, lineHeight+2, doc.translate(line.text), "", "L", false)
		case styleIndent:
			doc.setStyle(styleBodyFont)
			doc.pdf.SetX(pageLeftMargin + indentWidth)
			doc.pdf.MultiCell(0, lineHeight, doc.translate(line.text), "", "L", false)
		case styleSpacer:
			doc.pdf.Ln(lineHeight / 2)
		default:
			doc.setStyle(styleBodyFont)
			doc.pdf.MultiCell(0, lineHeight, doc.translate(line.text), "", "L", false)
		}
	}
}

// emitSignatureBlock writes the closing rule and doctor identity, then lays
// the signature and stamp images (when present) at fixed offsets relative to
// the cursor. withClinic additionally prints the clinic name and address,
// matching the certificate layout.
func (r *Renderer) emitSignatureBlock(doc *document, doctor *DoctorBlock, withClinic bool) {
	doc.pdf.Ln(4 * lineHeight)
	doc.setStyle(styleBodyFont)
	doc.pdf.MultiCell(0, lineHeight, "________________________________", "", "L", false)
	doc.pdf.MultiCell(0, lineHeight, doc.translate("Dr. "+doctor.FullName), "", "L", false)
	if doctor.Qualification != "" {
		doc.pdf.MultiCell(0, lineHeight, doc.translate(doctor.Qualification), "", "L", false)
	}
	doc.pdf.MultiCell(0, lineHeight, doc.translate("Reg. No: "+doctor.RegistrationNumber), "", "L", false)
	if withClinic {
		if doctor.ClinicName != "" {
			doc.pdf.MultiCell(0, lineHeight, doc.translate(doctor.ClinicName), "", "L", false)
		}
		if doctor.ClinicAddress != "" {
			doc.pdf.MultiCell(0, lineHeight, doc.translate(doctor.ClinicAddress), "", "L", false)
		}
	}

	y := doc.pdf.GetY()
	if imageUsable(doctor.DigitalSignaturePath) {
		doc.pdf.ImageOptions(doctor.DigitalSignaturePath, signatureX, y-100, signatureWidth, 0, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
	if imageUsable(doctor.StampImagePath) {
		doc.pdf.ImageOptions(doctor.StampImagePath, signatureX, y+20, stampWidth, 0, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
}

// imageUsable reports whether path points at a readable image of a type the
// engine accepts. Unusable paths degrade to the text fallback instead of
// failing the render.
func imageUsable(path string) bool {
	if path == "" {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
	default:
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
