package pdfexport

import (
	"bytes"
	"fmt"
	"path/filepath"
	"rh-hub-backend/lib/utils/helpers"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// CandidateCard данные карточки кандидата в воронке вакансии
type CandidateCard struct {
	CompanyName string
	JobTitle    string
	StageName   string
	Name        string
	Email       string
	Phone       string
	Linkedin    string
	Rating      int
	MaxRating   int
	AppliedAt   time.Time
	Notes       []string
	GeneratedAt time.Time
}

// FontConfig внешний utf-8 шрифт, при пустом Dir используется Helvetica
type FontConfig struct {
	Dir  string
	File string
}

const fontFamily = "CardFont"

func GenerateCandidateCard(card CandidateCard, font FontConfig) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCandidateCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", font.Dir)
	tr := func(s string) string { return s }
	family := fontFamily
	if font.Dir != "" {
		pdf.AddUTF8Font(fontFamily, "", font.File)
		pdf.AddUTF8Font(fontFamily, "B", font.File)
	} else {
		family = "Helvetica"
		tr = pdf.UnicodeTranslatorFromDescriptor("cp1252")
	}
	if pdf.Error() != nil {
		return nil, errors.Wrapf(pdf.Error(), "ошибка загрузки шрифта %s", filepath.Join(font.Dir, font.File))
	}
	pdf.SetTitle(tr(card.Name), font.Dir != "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(family, "", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s - %s", card.CompanyName, card.GeneratedAt.Format("02.01.2006 15:04"))),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.MultiCell(0, 8, tr(card.Name), "", "L", false)
	pdf.SetFont(family, "", 11)
	pdf.MultiCell(0, 6, tr(card.JobTitle), "", "L", false)
	pdf.Ln(4)

	fields := [][2]string{
		{"Etapa", card.StageName},
		{"E-mail", card.Email},
		{"Telefone", card.Phone},
		{"LinkedIn", card.Linkedin},
		{"Avaliação", ratingStars(card.Rating, card.MaxRating)},
		{"Candidatura", helpers.FormatDate(card.AppliedAt)},
	}
	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		pdf.SetFont(family, "B", 11)
		pdf.CellFormat(40, 7, tr(field[0]), "", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		pdf.MultiCell(0, 7, tr(field[1]), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont(family, "B", 13)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Notas (%d)", len(card.Notes))), "B", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 11)
	pdf.Ln(2)
	if len(card.Notes) == 0 {
		pdf.MultiCell(0, 6, tr("Sem notas"), "", "L", false)
	}
	// свежие заметки сверху, как на карточке доски
	for k := len(card.Notes) - 1; k >= 0; k-- {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", k+1, card.Notes[k])), "", "L", false)
		pdf.Ln(1)
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ratingStars(rating, maxRating int) string {
	if maxRating <= 0 {
		return ""
	}
	if rating < 0 {
		rating = 0
	}
	if rating > maxRating {
		rating = maxRating
	}
	return fmt.Sprintf("%s%s (%d/%d)", strings.Repeat("*", rating), strings.Repeat("-", maxRating-rating), rating, maxRating)
}
