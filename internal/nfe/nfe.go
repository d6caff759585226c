// Package nfe extracts invoice data from uploaded NFe XML documents.
//
// NFe files arrive in whatever encoding the issuing system produced,
// commonly ISO-8859-1, so parsing goes through a charset-aware reader.
package nfe

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cargoyard/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html/charset"
)

var (
	ErrInvalidDocument = errors.New("no NFe structure was found in the XML document")
	ErrUnreadableFile  = errors.New("the file could not be parsed as XML")
)

// Item is one line item of an NFe document with its weight normalized
// to kilograms.
type Item struct {
	Name     string          `json:"name" example:"Soja em grãos"`
	Quantity decimal.Decimal `json:"quantity" example:"35.5"`
	Unit     string          `json:"unit" example:"TON"`
	WeightKg decimal.Decimal `json:"weightKg" example:"35500"`
}

// Document is the structured invoice record extracted from an NFe file.
type Document struct {
	Number      string          `json:"number" example:"12345"`
	IssueDate   types.Date      `json:"issueDate" example:"2024-03-18"`
	Product     string          `json:"product" example:"Soja em grãos (+2 itens)"`
	WeightKg    decimal.Decimal `json:"weightKg" example:"71000"`
	Value       decimal.Decimal `json:"value" example:"105000.40"`
	IssuerID    string          `json:"issuerId" example:"12345678000195"`
	RecipientID string          `json:"recipientId" example:"98765432000121"`
	Items       []Item          `json:"items"`
}

// The XML structures below only declare the elements the extractor reads.
// An NFe is either wrapped in a nfeProc element or sent bare.
type xmlRoot struct {
	XMLName xml.Name
	InfNFe  *xmlInfNFe `xml:"infNFe"` // set when the root element is NFe
	NFe     struct {
		InfNFe *xmlInfNFe `xml:"infNFe"`
	} `xml:"NFe"` // set when the root element is nfeProc
}

type xmlInfNFe struct {
	Ide struct {
		NNF   string `xml:"nNF"`
		DhEmi string `xml:"dhEmi"`
		DEmi  string `xml:"dEmi"`
	} `xml:"ide"`
	Emit  xmlParty `xml:"emit"`
	Dest  xmlParty `xml:"dest"`
	Det   []xmlDet `xml:"det"`
	Total struct {
		ICMSTot struct {
			VNF string `xml:"vNF"`
		} `xml:"ICMSTot"`
	} `xml:"total"`
}

type xmlParty struct {
	CNPJ string `xml:"CNPJ"`
	CPF  string `xml:"CPF"`
}

type xmlDet struct {
	Prod struct {
		XProd string `xml:"xProd"`
		QCom  string `xml:"qCom"`
		UCom  string `xml:"uCom"`
	} `xml:"prod"`
}

// Parse extracts the invoice record from an NFe XML document.
func Parse(r io.Reader) (Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var root xmlRoot
	err := decoder.Decode(&root)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrUnreadableFile, err.Error())
	}

	infNFe := root.InfNFe
	if infNFe == nil {
		infNFe = root.NFe.InfNFe
	}

	if infNFe == nil {
		return Document{}, ErrInvalidDocument
	}

	issueDate, err := parseIssueDate(infNFe.Ide.DhEmi, infNFe.Ide.DEmi)
	if err != nil {
		return Document{}, err
	}

	value, err := parseDecimal(infNFe.Total.ICMSTot.VNF)
	if err != nil {
		return Document{}, fmt.Errorf("could not parse the invoice value: %w", err)
	}

	items := make([]Item, 0, len(infNFe.Det))
	weight := decimal.Zero

	for _, det := range infNFe.Det {
		name := det.Prod.XProd
		if name == "" {
			name = "Produto não especificado"
		}

		unit := det.Prod.UCom
		if unit == "" {
			unit = "UN"
		}

		quantity, err := parseDecimal(det.Prod.QCom)
		if err != nil {
			return Document{}, fmt.Errorf("could not parse the quantity of item %q: %w", name, err)
		}

		item := Item{
			Name:     name,
			Quantity: quantity,
			Unit:     unit,
			WeightKg: NormalizeWeight(quantity, unit),
		}

		weight = weight.Add(item.WeightKg)
		items = append(items, item)
	}

	issuer := infNFe.Emit.CNPJ
	if issuer == "" {
		issuer = infNFe.Emit.CPF
	}

	recipient := infNFe.Dest.CNPJ
	if recipient == "" {
		recipient = infNFe.Dest.CPF
	}

	return Document{
		Number:      infNFe.Ide.NNF,
		IssueDate:   issueDate,
		Product:     productLabel(items),
		WeightKg:    weight,
		Value:       value,
		IssuerID:    issuer,
		RecipientID: recipient,
		Items:       items,
	}, nil
}

// parseIssueDate reads the issue date from dhEmi (RFC3339 timestamp) or,
// for older documents, dEmi (plain date).
func parseIssueDate(dhEmi, dEmi string) (types.Date, error) {
	raw := dhEmi
	if raw == "" {
		raw = dEmi
	}

	if len(raw) < 10 {
		return types.Date{}, fmt.Errorf("could not parse the issue date %q", raw)
	}

	date, err := types.ParseDate(raw[:10])
	if err != nil {
		return types.Date{}, fmt.Errorf("could not parse the issue date %q: %w", raw, err)
	}

	return date, nil
}

// parseDecimal parses a decimal, defaulting to zero for missing values.
func parseDecimal(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(strings.TrimSpace(s))
}

// productLabel builds the composite product description: the first item
// name plus a count of the remaining items.
func productLabel(items []Item) string {
	if len(items) == 0 {
		return "Produto não especificado"
	}

	if len(items) == 1 {
		return items[0].Name
	}

	return fmt.Sprintf("%s (+%d itens)", items[0].Name, len(items)-1)
}
