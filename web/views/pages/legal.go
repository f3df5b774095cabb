package pages

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

//go:embed legal/*.md
var legalFS embed.FS

type legalDoc struct {
	title string
	file  string
}

var (
	termsDoc   = legalDoc{title: "Terms of Service", file: "legal/terms-of-service.md"}
	privacyDoc = legalDoc{title: "Privacy Policy", file: "legal/privacy-policy.md"}
)

// legalHTML is built from the embedded markdown when the package loads. The
// input ships in the binary, so a failure is a build defect and panics.
var legalHTML = mustConvertLegal(legalFS)

func mustConvertLegal(fsys fs.FS) map[string]string {
	out, err := convertLegal(fsys, termsDoc, privacyDoc)
	if err != nil {
		panic(err)
	}
	return out
}

func convertLegal(fsys fs.FS, docs ...legalDoc) (map[string]string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	out := make(map[string]string, len(docs))

	for _, doc := range docs {
		src, err := fs.ReadFile(fsys, doc.file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", doc.file, err)
		}

		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("convert %s: %w", doc.file, err)
		}
		out[doc.file] = buf.String()
	}
	return out, nil
}

func TermsTitle() string   { return title(termsDoc.title) }
func PrivacyTitle() string { return title(privacyDoc.title) }

func Terms() g.Node   { return legalPage(termsDoc) }
func Privacy() g.Node { return legalPage(privacyDoc) }

func legalPage(doc legalDoc) g.Node {
	return h.Section(h.Class("pt-32 pb-20 bg-dark"), h.Data("legal", doc.title),
		h.Article(h.Class("container mx-auto px-6 max-w-3xl prose prose-invert"),
			h.H1(h.Class("text-4xl font-bold text-white mb-8"), g.Text(doc.title)),
			g.Raw(legalHTML[doc.file]),
		),
	)
}
