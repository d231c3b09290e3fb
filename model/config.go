package model

import "strings"

// Config is page configuration and document level options. It is carried to
// the generation service as is, editor only reads and replaces it, so it keeps
// wire names on its fields.
type Config struct {
	Page                string           `json:"page,omitempty"`
	PageAlignment       int              `json:"pageAlignment,omitempty"`
	PageBorder          string           `json:"pageBorder,omitempty"`
	PageMargin          string           `json:"pageMargin,omitempty"`
	Watermark           string           `json:"watermark,omitempty"`
	PDFTitle            string           `json:"pdfTitle,omitempty"`
	ArlingtonCompatible bool             `json:"arlingtonCompatible,omitempty"`
	EmbedFonts          *bool            `json:"embedFonts,omitempty"`
	PDFACompliant       bool             `json:"pdfaCompliant,omitempty"`
	CustomFonts         []CustomFont     `json:"customFonts,omitempty"`
	Security            *SecurityConfig  `json:"security,omitempty"`
	PDFA                *PDFAConfig      `json:"pdfa,omitempty"`
	Signature           *SignatureConfig `json:"signature,omitempty"`
}

// CustomFont references font to be embedded by the generation service.
type CustomFont struct {
	Name     string `json:"name"`
	FilePath string `json:"filePath,omitempty"`
	FontData string `json:"fontData,omitempty"`
}

// SecurityConfig holds encryption and permission settings.
type SecurityConfig struct {
	Enabled               bool   `json:"enabled"`
	UserPassword          string `json:"userPassword,omitempty"`
	OwnerPassword         string `json:"ownerPassword,omitempty"`
	AllowPrinting         bool   `json:"allowPrinting"`
	AllowModifying        bool   `json:"allowModifying"`
	AllowCopying          bool   `json:"allowCopying"`
	AllowAnnotations      bool   `json:"allowAnnotations"`
	AllowFormFilling      bool   `json:"allowFormFilling"`
	AllowAccessibility    bool   `json:"allowAccessibility"`
	AllowAssembly         bool   `json:"allowAssembly"`
	AllowHighQualityPrint bool   `json:"allowHighQualityPrint"`
}

// PDFAConfig holds PDF/A compliance settings.
type PDFAConfig struct {
	Enabled     bool   `json:"enabled"`
	Conformance string `json:"conformance,omitempty"`
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Creator     string `json:"creator,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

// SignatureConfig holds digital signature settings.
type SignatureConfig struct {
	Enabled          bool     `json:"enabled"`
	CertificatePEM   string   `json:"certificatePem,omitempty"`
	PrivateKeyPEM    string   `json:"privateKeyPem,omitempty"`
	CertificateChain []string `json:"certificateChain,omitempty"`
	Visible          bool     `json:"visible"`
	Page             int      `json:"page,omitempty"`
	X                float64  `json:"x"`
	Y                float64  `json:"y"`
	Width            float64  `json:"width,omitempty"`
	Height           float64  `json:"height,omitempty"`
	Reason           string   `json:"reason,omitempty"`
	Location         string   `json:"location,omitempty"`
	ContactInfo      string   `json:"contactInfo,omitempty"`
	Name             string   `json:"name,omitempty"`
}

// Page sizes known to the generation service, in points.
var pageSizes = map[string][2]float64{
	"A4":     {595, 842},
	"LETTER": {612, 792},
	"LEGAL":  {612, 1008},
	"A3":     {842, 1191},
	"A5":     {420, 595},
}

// PageSize returns page dimensions in points taking orientation into account
// (2 - landscape). Unknown sizes fall back to A4, the way generator does.
func (c *Config) PageSize() (width, height float64, known bool) {
	size, known := pageSizes[strings.ToUpper(c.Page)]
	if !known {
		size = pageSizes["A4"]
	}
	width, height = size[0], size[1]
	if c.PageAlignment == 2 {
		width, height = height, width
	}
	return width, height, known
}

// DefaultConfig is page configuration of a brand new document.
func DefaultConfig() Config {
	embed := true
	return Config{
		Page:          "A4",
		PageAlignment: 1,
		PageBorder:    "0:0:0:0",
		PageMargin:    "72:72:72:72",
		EmbedFonts:    &embed,
	}
}
