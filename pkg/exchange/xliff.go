package exchange

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/tree"
)

const (
	// Version is the XLIFF version written by Encode.
	Version = "1.2"
	// Namespace is the XML namespace of XLIFF 1.2 documents.
	Namespace = "urn:oasis:names:tc:xliff:document:1.2"
	// Datatype is the datatype attribute of every exported file element.
	Datatype = "plaintext"
	// OriginalPrefix prefixes the original attribute of exported files.
	OriginalPrefix = "i18n-sherlock-export-for-"
)

// Document is the subset of XLIFF 1.2 used for translation exchange.
type Document struct {
	XMLName xml.Name `xml:"xliff"`
	Version string   `xml:"version,attr"`
	Xmlns   string   `xml:"xmlns,attr,omitempty"`
	Files   []File   `xml:"file"`
}

// File groups the units for one target locale.
type File struct {
	SourceLanguage string `xml:"source-language,attr"`
	TargetLanguage string `xml:"target-language,attr,omitempty"`
	Datatype       string `xml:"datatype,attr,omitempty"`
	Original       string `xml:"original,attr,omitempty"`
	Body           Body   `xml:"body"`
}

// Body holds the translation units of a file.
type Body struct {
	Units []Unit `xml:"trans-unit"`
}

// Unit is one source/target text pair. ID is "<namespace>.<key.path>".
type Unit struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source"`
	Target string `xml:"target"`
}

// Units returns the units of every file in document order.
func (d *Document) Units() []Unit {
	var out []Unit
	for _, f := range d.Files {
		out = append(out, f.Body.Units...)
	}
	return out
}

// NewDocument builds an exchange document from a locale diff whose first
// level names namespaces. Each entry becomes a unit carrying the base text
// as source and as a pre-filled target. Raw values are not translatable and
// are left out.
func NewDocument(d *differ.Node, sourceLocale, targetLocale string) *Document {
	file := File{
		SourceLanguage: sourceLocale,
		TargetLanguage: targetLocale,
		Datatype:       Datatype,
		Original:       OriginalPrefix + targetLocale,
	}
	d.Walk(func(p tree.Path, e differ.Entry) {
		if e.Raw {
			return
		}
		file.Body.Units = append(file.Body.Units, Unit{
			ID:     p.String(),
			Source: e.Value,
			Target: e.Value,
		})
	})
	return &Document{
		Version: Version,
		Xmlns:   Namespace,
		Files:   []File{file},
	}
}

// Encode renders doc as indented XML with a declaration and trailing newline.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	out := *doc
	out.XMLName = xml.Name{} // decoded documents carry the namespace here too
	if err := enc.Encode(&out); err != nil {
		return nil, errors.WrapParse("xliff", "", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapParse("xliff", "", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Decode parses an exchange document. A document without any unit is
// rejected as malformed.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapParse("xliff", "", err)
	}
	if len(doc.Units()) == 0 {
		return nil, errors.NewParseError("xliff", "", "no <trans-unit> elements found", nil)
	}
	return &doc, nil
}
